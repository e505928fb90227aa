// Package session maintains the ordered, append-only transcript of one
// conversation and drives the agent runtime for each exchange.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maliksh/finagent/consts"
	"github.com/maliksh/finagent/models"
)

var (
	// ErrEmptyInput rejects blank submissions before they reach the runtime.
	ErrEmptyInput = errors.New("input must not be empty")
	// ErrRuntime wraps any failure from the underlying agent runtime.
	ErrRuntime = errors.New("agent runtime call failed")
)

// Runtime produces the assistant reply for a user turn given the prior
// transcript.
type Runtime interface {
	Respond(ctx context.Context, history []models.Turn, input string) (string, error)
}

// Recorder receives every stored turn, e.g. for SQLite persistence.
// Recording is best-effort: failures are logged, never surfaced.
type Recorder interface {
	AppendTurn(ctx context.Context, sessionID string, turn models.Turn) error
}

// Session owns one conversation. A session has a single logical thread of
// control; the mutex only guards against concurrent web requests for the
// same session id.
type Session struct {
	id      string
	runtime Runtime

	mu       sync.Mutex
	turns    []models.Turn
	recorder Recorder
}

type Option func(*Session)

// WithRecorder attaches a transcript recorder.
func WithRecorder(rec Recorder) Option {
	return func(s *Session) {
		s.recorder = rec
	}
}

// WithID fixes the session id instead of generating one.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

func New(runtime Runtime, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		runtime: runtime,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Submit runs one exchange: the full prior history plus the new input go to
// the runtime, and on success exactly two turns (user, assistant) are
// appended in order. On any failure nothing is appended.
func (s *Session) Submit(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]models.Turn, len(s.turns))
	copy(history, s.turns)

	reply, err := s.runtime.Respond(ctx, history, input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRuntime, err)
	}

	now := time.Now()
	userTurn := models.Turn{Role: consts.Role_User, Content: input, CreatedAt: now}
	assistantTurn := models.Turn{Role: consts.Role_Assistant, Content: reply, CreatedAt: now}
	s.turns = append(s.turns, userTurn, assistantTurn)

	if s.recorder != nil {
		if err := s.recorder.AppendTurn(ctx, s.id, userTurn); err != nil {
			log.Printf("[session] record user turn: %v", err)
		}
		if err := s.recorder.AppendTurn(ctx, s.id, assistantTurn); err != nil {
			log.Printf("[session] record assistant turn: %v", err)
		}
	}

	return reply, nil
}

// History returns a copy of the stored transcript.
func (s *Session) History() []models.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len reports the number of stored turns.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Reset discards the transcript, keeping the session id and runtime.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}
