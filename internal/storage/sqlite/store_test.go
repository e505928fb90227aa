package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/maliksh/finagent/consts"
	"github.com/maliksh/finagent/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "finagent.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("   "); err == nil {
		t.Fatal("expected error for empty db path")
	}
}

func TestAppendTurnAndTranscript(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	turns := []models.Turn{
		{Role: consts.Role_User, Content: "What's AAPL at?", CreatedAt: time.Now()},
		{Role: consts.Role_Assistant, Content: "AAPL is trading at $178.52.", CreatedAt: time.Now()},
		{Role: consts.Role_User, Content: "And Tesla?", CreatedAt: time.Now()},
		{Role: consts.Role_Assistant, Content: "TSLA is trading at $242.10.", CreatedAt: time.Now()},
	}
	for _, turn := range turns {
		if err := store.AppendTurn(ctx, "sess-1", turn); err != nil {
			t.Fatalf("AppendTurn: %v", err)
		}
	}

	got, err := store.Transcript(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if len(got) != len(turns) {
		t.Fatalf("transcript length = %d, want %d", len(got), len(turns))
	}
	for i := range turns {
		if got[i].Role != turns[i].Role || got[i].Content != turns[i].Content {
			t.Fatalf("turn %d = %+v, want role %s content %q", i, got[i], turns[i].Role, turns[i].Content)
		}
	}
}

func TestAppendTurnCreatesSessionRow(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	turn := models.Turn{Role: consts.Role_User, Content: "hello", CreatedAt: time.Now()}
	if err := store.AppendTurn(ctx, "sess-auto", turn); err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}

	rec, err := store.GetSession(ctx, "sess-auto")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if rec.Status != consts.State_Active {
		t.Fatalf("status = %s, want %s", rec.Status, consts.State_Active)
	}
}

func TestAppendTurnRejectsMissingFields(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.AppendTurn(ctx, "", models.Turn{Role: consts.Role_User}); err == nil {
		t.Fatal("expected error for empty session id")
	}
	if err := store.AppendTurn(ctx, "sess-1", models.Turn{Content: "no role"}); err == nil {
		t.Fatal("expected error for empty role")
	}
}

func TestTranscriptsAreIsolatedPerSession(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.AppendTurn(ctx, "a", models.Turn{Role: consts.Role_User, Content: "in a"}); err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}
	if err := store.AppendTurn(ctx, "b", models.Turn{Role: consts.Role_User, Content: "in b"}); err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}

	got, err := store.Transcript(ctx, "a")
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if len(got) != 1 || got[0].Content != "in a" {
		t.Fatalf("session a transcript = %+v", got)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetSession(context.Background(), "missing")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestListSessionsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		if err := store.CreateSession(ctx, id, "chat "+id); err != nil {
			t.Fatalf("CreateSession: %v", err)
		}
	}

	sessions, err := store.ListSessions(ctx, 10)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("len = %d, want 3", len(sessions))
	}
	if sessions[0].ID != "third" || sessions[2].ID != "first" {
		t.Fatalf("unexpected order: %s, %s, %s", sessions[0].ID, sessions[1].ID, sessions[2].ID)
	}
}

func TestUpdateSessionStatus(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.CreateSession(ctx, "sess-1", ""); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if err := store.UpdateSessionStatus(ctx, "sess-1", consts.State_Done); err != nil {
		t.Fatalf("UpdateSessionStatus: %v", err)
	}

	rec, err := store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if rec.Status != consts.State_Done {
		t.Fatalf("status = %s, want %s", rec.Status, consts.State_Done)
	}
}
