package stockpilot

import "github.com/openai/openai-go"

// action is the tagged variant produced from one model completion. The loop
// pattern-matches on the concrete type, keeping the transition logic
// independent of how the model expressed its decision.
type action interface {
	isAction()
}

type toolCallAction struct {
	calls []toolInvocation
}

type toolInvocation struct {
	id        string
	name      string
	arguments string
}

type finalAnswerAction struct {
	text string
}

type malformedAction struct {
	reason string
}

func (toolCallAction) isAction()    {}
func (finalAnswerAction) isAction() {}
func (malformedAction) isAction()   {}

// decide normalizes one completion into an action.
func decide(completion *openai.ChatCompletion) action {
	if completion == nil || len(completion.Choices) == 0 {
		return malformedAction{reason: "completion has no choices"}
	}
	message := completion.Choices[0].Message
	if len(message.ToolCalls) > 0 {
		calls := make([]toolInvocation, 0, len(message.ToolCalls))
		for _, toolCall := range message.ToolCalls {
			calls = append(calls, toolInvocation{
				id:        toolCall.ID,
				name:      toolCall.Function.Name,
				arguments: toolCall.Function.Arguments,
			})
		}
		return toolCallAction{calls: calls}
	}
	if message.Content != "" {
		return finalAnswerAction{text: message.Content}
	}
	return malformedAction{reason: "neither tool call nor content"}
}
