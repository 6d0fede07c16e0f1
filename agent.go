// Package stockpilot provides the main Agent orchestrator, which uses an LLM
// and registered Tools to answer natural-language questions.
package stockpilot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
)

// DefaultMaxSteps bounds the reasoning loop so a model that never converges
// fails with ErrIterationLimit instead of spinning.
const DefaultMaxSteps = 5

const repromptInstruction = "Your previous reply could not be used. Respond with either a tool call or a final answer for the user."

// Agent orchestrates calls to the LLM, dispatches tool calls, and determines
// when a final answer has been produced. An Agent holds no per-question
// state; concurrent Ask calls are independent.
type Agent struct {
	prompt   string
	tools    []Tool
	maxSteps int
	logger   *slog.Logger
}

// NewAgent creates an Agent with the given system prompt and tools.
func NewAgent(prompt string, tools []Tool) *Agent {
	return &Agent{
		prompt:   prompt,
		tools:    tools,
		maxSteps: DefaultMaxSteps,
		logger:   slog.Default(),
	}
}

func (a *Agent) GetLogger() *slog.Logger {
	return a.logger
}

func (a *Agent) SetLogger(logger *slog.Logger) {
	a.logger = logger
}

// SetMaxSteps overrides the reasoning-step budget for each Ask.
func (a *Agent) SetMaxSteps(n int) {
	if n > 0 {
		a.maxSteps = n
	}
}

func (a *Agent) GetTool(name string) (Tool, error) {
	for _, tool := range a.tools {
		if tool.Name() == name {
			return tool, nil
		}
	}
	return nil, fmt.Errorf("tool %s not found", name)
}

func (a *Agent) toolParams() []openai.ChatCompletionToolParam {
	params := []openai.ChatCompletionToolParam{}
	for _, tool := range a.tools {
		params = append(params, tool.OpenAI()...)
	}
	return params
}

// Ask answers one question. It blocks until the model produces a final
// answer or the run fails, and returns the full transcript either way.
// Callers wanting a timeout wrap ctx.
func (a *Agent) Ask(ctx context.Context, client LLM, model string, question string) (*Transcript, error) {
	return a.run(ctx, client, model, question, nil)
}

// run drives the reason-act-observe cycle. Temperature is pinned to zero so
// repeated questions take the same path. emit, when non-nil, receives status
// responses while tools execute.
func (a *Agent) run(ctx context.Context, client LLM, model string, question string, emit func(Response)) (*Transcript, error) {
	if a.logger == nil {
		panic("logger is not set")
	}

	history := NewMessageList()
	history.Add(UserMessage(question))
	history.AddFirst(a.prompt)

	transcript := NewTranscript(question)
	reprompted := false

	for step := 0; step < a.maxSteps; step++ {
		params := openai.ChatCompletionNewParams{
			Messages:    openai.F(history.All()),
			Model:       openai.F(model),
			Temperature: openai.F(0.0),
		}
		if tools := a.toolParams(); len(tools) > 0 {
			params.Tools = openai.F(tools)
		}

		completion, err := client.New(ctx, params)
		if err != nil {
			return transcript, fmt.Errorf("LLM call failed: %w", err)
		}

		switch act := decide(completion).(type) {
		case finalAnswerAction:
			transcript.FinalAnswer = act.text
			return transcript, nil

		case toolCallAction:
			history.Add(completion.Choices[0].Message)
			for _, call := range act.calls {
				observation := a.invokeTool(ctx, call, transcript, emit)
				history.Add(ToolMessage(observation, call.id))
			}

		case malformedAction:
			if reprompted {
				return transcript, fmt.Errorf("%s: %w", act.reason, ErrMalformedOutput)
			}
			a.logger.Warn("Re-prompting after unparsable model output", "reason", act.reason)
			reprompted = true
			history.Add(DeveloperMessage(repromptInstruction))
		}
	}

	return transcript, ErrIterationLimit
}

// invokeTool runs one tool call and returns the observation string fed back
// into the reasoning context. Failures become observations, never hard
// errors: a fetch that failed is something the model should know about and
// report, not something that aborts the run.
func (a *Agent) invokeTool(ctx context.Context, call toolInvocation, transcript *Transcript, emit func(Response)) string {
	tool, err := a.GetTool(call.name)
	if err != nil {
		a.logger.Error("Error getting tool", "error", err)
		observation := fmt.Sprintf("No tool named %q is available.", call.name)
		transcript.addStep(Step{Tool: call.name, Input: call.arguments, Observation: observation, Failed: true})
		return observation
	}

	if emit != nil {
		emit(Response{Type: ResponseTypeStatus, Content: tool.StatusMessage()})
	}

	arguments := map[string]interface{}{}
	if err := json.Unmarshal([]byte(call.arguments), &arguments); err != nil {
		a.logger.Error("Error unmarshalling tool arguments", "error", err)
		observation := fmt.Sprintf("Error: %s.\nRetry with valid JSON arguments", err)
		transcript.addStep(Step{Tool: call.name, Input: call.arguments, Observation: observation, Failed: true})
		return observation
	}

	a.logger.Info("Running tool", "tool", call.name, "arguments", call.arguments)
	output, err := tool.Execute(ctx, arguments)
	if err != nil {
		a.logger.Error("Error executing tool", "tool", call.name, "error", err)
		var observation string
		if errors.Is(err, ErrDataUnavailable) {
			observation = fmt.Sprintf("Unable to retrieve the price: %s. Tell the user the price could not be retrieved.", err)
		} else {
			observation = "Error occurred while running. Do not retry"
		}
		transcript.addStep(Step{Tool: call.name, Input: call.arguments, Observation: observation, Failed: true})
		return observation
	}

	transcript.addStep(Step{Tool: call.name, Input: call.arguments, Observation: output})
	return output
}
