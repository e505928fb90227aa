// Package server exposes the chat assistant over HTTP: sessions are created
// via the API and each one keeps its own in-memory transcript.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/maliksh/finagent/internal/session"
	"github.com/maliksh/finagent/models"
)

// Server routes HTTP requests onto per-session chat state. Sessions live in
// memory for their whole life; the optional recorder mirrors turns to disk.
type Server struct {
	runtime  session.Runtime
	recorder session.Recorder

	mu       sync.Mutex
	sessions map[string]*session.Session
}

type Option func(*Server)

// WithRecorder mirrors every stored turn to the given recorder.
func WithRecorder(rec session.Recorder) Option {
	return func(s *Server) {
		s.recorder = rec
	}
}

func New(runtime session.Runtime, opts ...Option) *Server {
	s := &Server{
		runtime:  runtime,
		sessions: make(map[string]*session.Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi handler for the chat API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(api chi.Router) {
		api.Get("/healthz", s.handleHealth)
		api.Post("/sessions", s.handleCreateSession)
		api.Get("/sessions", s.handleListSessions)
		api.Post("/sessions/{sessionID}/messages", s.handleSubmitMessage)
		api.Get("/sessions/{sessionID}/messages", s.handleGetTranscript)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var opts []session.Option
	if s.recorder != nil {
		opts = append(opts, session.WithRecorder(s.recorder))
	}
	sess := session.New(s.runtime, opts...)

	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()

	respondJSON(w, http.StatusCreated, map[string]string{
		"id":        sess.ID(),
		"createdAt": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		ID    string `json:"id"`
		Turns int    `json:"turns"`
	}

	s.mu.Lock()
	entries := make([]entry, 0, len(s.sessions))
	for id, sess := range s.sessions {
		entries = append(entries, entry{ID: id, Turns: sess.Len()})
	}
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(chi.URLParam(r, "sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := sess.Submit(r.Context(), payload.Content)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyInput):
			respondError(w, http.StatusBadRequest, "message must not be empty")
		case errors.Is(err, session.ErrRuntime):
			log.Printf("[server] session %s: %v", sess.ID(), err)
			respondError(w, http.StatusBadGateway, "assistant is unavailable, please retry")
		default:
			respondError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"reply":         reply,
		"historyLength": sess.Len(),
	})
}

func (s *Server) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(chi.URLParam(r, "sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	history := sess.History()
	if history == nil {
		history = []models.Turn{}
	}
	respondJSON(w, http.StatusOK, history)
}

func (s *Server) lookup(id string) (*session.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
