package session

import (
	"fmt"
	"strings"
	"testing"

	"github.com/krishisahayak/krishibot-api/internal/domain"
)

func TestRegistryResolve_GeneratesID(t *testing.T) {
	reg := NewRegistry()

	id, turns := reg.Resolve("")
	if id == "" {
		t.Fatalf("expected generated session id")
	}
	if !strings.HasPrefix(id, "session_") {
		t.Fatalf("expected session_ prefix, got %q", id)
	}
	if len(turns) != 0 {
		t.Fatalf("expected empty history, got %d turns", len(turns))
	}

	id2, _ := reg.Resolve("   ")
	if id2 == id {
		t.Fatalf("expected distinct ids for distinct blank resolves")
	}
}

func TestRegistryResolve_KeepsClientSuppliedID(t *testing.T) {
	reg := NewRegistry()

	id, turns := reg.Resolve("my-session")
	if id != "my-session" {
		t.Fatalf("expected client id kept, got %q", id)
	}
	if len(turns) != 0 {
		t.Fatalf("expected empty history on first reference")
	}
}

func TestRegistryAppend_VisibleOnResolve(t *testing.T) {
	reg := NewRegistry()
	id, _ := reg.Resolve("")

	reg.Append(id, domain.Turn{Role: domain.RoleUser, Text: "hola"})
	reg.Append(id, domain.Turn{Role: domain.RoleModel, Text: "namaste"})

	_, turns := reg.Resolve(id)
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Role != domain.RoleUser || turns[1].Role != domain.RoleModel {
		t.Fatalf("unexpected roles: %q %q", turns[0].Role, turns[1].Role)
	}
}

func TestRegistryHistory_SnapshotDoesNotAlias(t *testing.T) {
	reg := NewRegistry()
	reg.Append("s1", domain.Turn{Role: domain.RoleUser, Text: "original"})

	snap := reg.History("s1")
	snap[0].Text = "mutated"

	if got := reg.History("s1")[0].Text; got != "original" {
		t.Fatalf("registry state leaked through snapshot, got %q", got)
	}
}

func TestRegistryHistory_UnknownIsEmptyAndDoesNotCreate(t *testing.T) {
	reg := NewRegistry()
	if turns := reg.History("nope"); len(turns) != 0 {
		t.Fatalf("expected empty history for unknown id")
	}
	reg.mu.Lock()
	_, created := reg.sessions["nope"]
	reg.mu.Unlock()
	if created {
		t.Fatalf("History must not create sessions")
	}
}

func TestRegistryClear_Idempotent(t *testing.T) {
	reg := NewRegistry()
	id, _ := reg.Resolve("")
	reg.Append(id, domain.Turn{Role: domain.RoleUser, Text: "hi"})

	reg.Clear(id)
	if turns := reg.History(id); len(turns) != 0 {
		t.Fatalf("expected cleared history")
	}

	// Unknown id is a no-op, not an error.
	reg.Clear(id)
	reg.Clear("never-existed")
}

func TestTrimTurns_Cap(t *testing.T) {
	var turns []domain.Turn
	for i := 0; i < 25; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleModel
		}
		turns = append(turns, domain.Turn{Role: role, Text: fmt.Sprintf("t%d", i)})
	}

	trimmed := TrimTurns(turns)
	if len(trimmed) != MaxTurns {
		t.Fatalf("expected %d turns, got %d", MaxTurns, len(trimmed))
	}
	if trimmed[0].Text != "t5" || trimmed[len(trimmed)-1].Text != "t24" {
		t.Fatalf("expected oldest turns discarded, got first=%q last=%q", trimmed[0].Text, trimmed[len(trimmed)-1].Text)
	}
}

func TestTrimTurns_UnderCapUntouched(t *testing.T) {
	turns := []domain.Turn{{Role: domain.RoleUser, Text: "only"}}
	if got := TrimTurns(turns); len(got) != 1 {
		t.Fatalf("expected untouched history, got %d", len(got))
	}
	if got := TrimTurns(nil); len(got) != 0 {
		t.Fatalf("expected nil-safe trim")
	}
}
