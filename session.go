// Session provides per-question state, along with methods for submitting a
// question and consuming agent outputs.
package stockpilot

import (
	"context"
	"log/slog"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Session handles a single question. It holds references to shared resources
// (LLM client, agent) but isolated run state, so independent sessions can
// run in parallel.
type Session struct {
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	inUserChannel  chan string
	outUserChannel chan Response

	llm   LLM
	agent *Agent
	model string

	logger *slog.Logger
}

// NewSession constructs a session around shared LLM and agent references.
func NewSession(ctx context.Context, llm LLM, agent *Agent, model string) *Session {
	sessionID, err := gonanoid.New()
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithCancel(ctx)
	ctx = context.WithValue(ctx, ContextKey("sessionID"), sessionID)
	s := &Session{
		ctx:       ctx,
		cancel:    cancel,
		closeOnce: sync.Once{},

		inUserChannel:  make(chan string),
		outUserChannel: make(chan Response),

		llm:   llm,
		agent: agent,
		model: model,

		logger: slog.Default(),
	}
	go s.run()
	return s
}

func (s *Session) ID() string {
	return s.ctx.Value(ContextKey("sessionID")).(string)
}

// In submits the user's question. A session answers exactly one question.
func (s *Session) In(userMessage string) {
	s.inUserChannel <- userMessage
}

// Out retrieves the next response, blocking until one is available.
func (s *Session) Out() Response {
	response := <-s.outUserChannel
	return response
}

// Close ends the session lifecycle and releases its resources.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		close(s.inUserChannel)
		close(s.outUserChannel)
	})
}

// run is the main loop for the session. It waits for the question, drives
// the agent, and forwards status updates and the final answer.
func (s *Session) run() {
	s.logger.Info("Session started", "sessionID", s.ID())
	defer s.Close()
	select {
	case <-s.ctx.Done():
		s.outUserChannel <- Response{Type: ResponseTypeEnd}
	case userMessage, ok := <-s.inUserChannel:
		if !ok {
			s.logger.Error("Session input channel closed")
			s.outUserChannel <- Response{Type: ResponseTypeEnd}
			return
		}

		transcript, err := s.agent.run(s.ctx, s.llm, s.model, userMessage, func(r Response) {
			s.outUserChannel <- r
		})
		if err != nil {
			s.outUserChannel <- Response{
				Content: err.Error(),
				Type:    ResponseTypeError,
			}
		} else {
			s.outUserChannel <- Response{
				Content: transcript.FinalAnswer,
				Type:    ResponseTypeAnswer,
			}
		}

		s.outUserChannel <- Response{
			Type: ResponseTypeEnd,
		}
	}
}
