package stockpilot

type ResponseType string

const (
	ResponseTypeStatus ResponseType = "status"
	ResponseTypeAnswer ResponseType = "answer"
	ResponseTypeEnd    ResponseType = "end"
	ResponseTypeError  ResponseType = "error"
)

// Response represents a communication unit from the Session/Agent to the
// caller/UI.
type Response struct {
	Content string
	Type    ResponseType
}
