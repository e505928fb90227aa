package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maliksh/finagent/models"
)

type echoRuntime struct {
	err error
}

func (r *echoRuntime) Respond(_ context.Context, _ []models.Turn, input string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return "echo: " + input, nil
}

func newTestServer(t *testing.T, rt *echoRuntime) http.Handler {
	t.Helper()
	return New(rt).Router()
}

func createSession(t *testing.T, handler http.Handler) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create session status = %d, want %d", rec.Code, http.StatusCreated)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if body["id"] == "" {
		t.Fatal("expected a session id")
	}
	return body["id"]
}

func postMessage(handler http.Handler, sessionID, content string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(map[string]string{"content": content})
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestServer(t, &echoRuntime{})

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestSubmitAndTranscript(t *testing.T) {
	handler := newTestServer(t, &echoRuntime{})
	id := createSession(t, handler)

	rec := postMessage(handler, id, "hello")
	if rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d, body %s", rec.Code, rec.Body.String())
	}
	var reply struct {
		Reply         string `json:"reply"`
		HistoryLength int    `json:"historyLength"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&reply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if reply.Reply != "echo: hello" {
		t.Fatalf("reply = %q", reply.Reply)
	}
	if reply.HistoryLength != 2 {
		t.Fatalf("historyLength = %d, want 2", reply.HistoryLength)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+id+"/messages", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("transcript status = %d", rec.Code)
	}
	var history []models.Turn
	if err := json.NewDecoder(rec.Body).Decode(&history); err != nil {
		t.Fatalf("decode transcript: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(history))
	}
	if history[0].Content != "hello" || history[1].Content != "echo: hello" {
		t.Fatalf("unexpected transcript: %+v", history)
	}
}

func TestSubmitEmptyMessage(t *testing.T) {
	handler := newTestServer(t, &echoRuntime{})
	id := createSession(t, handler)

	rec := postMessage(handler, id, "   ")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	// Nothing must be recorded for a rejected submission.
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+id+"/messages", nil)
	trec := httptest.NewRecorder()
	handler.ServeHTTP(trec, req)
	var history []models.Turn
	if err := json.NewDecoder(trec.Body).Decode(&history); err != nil {
		t.Fatalf("decode transcript: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("transcript should be empty, got %d turns", len(history))
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	handler := newTestServer(t, &echoRuntime{})

	rec := postMessage(handler, "no-such-id", "hello")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestSubmitRuntimeFailure(t *testing.T) {
	handler := newTestServer(t, &echoRuntime{err: errors.New("model down")})
	id := createSession(t, handler)

	rec := postMessage(handler, id, "hello")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("model down")) {
		t.Fatalf("internal error leaked to client: %s", rec.Body.String())
	}
}

func TestListSessions(t *testing.T) {
	handler := newTestServer(t, &echoRuntime{})
	createSession(t, handler)
	createSession(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var entries []struct {
		ID    string `json:"id"`
		Turns int    `json:"turns"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
}
