package stockpilot

import "github.com/google/uuid"

// Step records one action/observation pair during a run.
type Step struct {
	Tool        string
	Input       string
	Observation string
	Failed      bool
}

// Transcript is the ordered record of a single Ask: the question, every tool
// step, and the final answer. It is built incrementally and holds no state
// across questions.
type Transcript struct {
	ID          string
	Question    string
	Steps       []Step
	FinalAnswer string
}

func NewTranscript(question string) *Transcript {
	return &Transcript{
		ID:       uuid.NewString(),
		Question: question,
	}
}

func (t *Transcript) addStep(step Step) {
	t.Steps = append(t.Steps, step)
}

// ToolCalls counts how many times the named tool ran in this transcript.
func (t *Transcript) ToolCalls(name string) int {
	count := 0
	for _, step := range t.Steps {
		if step.Tool == name {
			count++
		}
	}
	return count
}
