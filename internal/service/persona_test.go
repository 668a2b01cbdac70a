package service

import (
	"strings"
	"testing"

	"github.com/krishisahayak/krishibot-api/internal/domain"
)

func TestBuildContents_OrderAndNewTurn(t *testing.T) {
	history := []domain.Turn{
		{Role: domain.RoleUser, Text: "first"},
		{Role: domain.RoleModel, Text: "second"},
	}

	contents := BuildContents(history, "third")
	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}
	if contents[0].Text != "first" || contents[1].Text != "second" {
		t.Fatalf("history order not preserved: %+v", contents)
	}
	last := contents[2]
	if last.Role != domain.RoleUser || last.Text != "third" {
		t.Fatalf("expected new user turn last, got %+v", last)
	}

	// The input slice must not be mutated.
	if len(history) != 2 {
		t.Fatalf("history mutated, len=%d", len(history))
	}
}

func TestBuildContents_EmptyHistory(t *testing.T) {
	contents := BuildContents(nil, "hello")
	if len(contents) != 1 {
		t.Fatalf("expected single turn, got %d", len(contents))
	}
	if contents[0].Role != domain.RoleUser {
		t.Fatalf("expected user role, got %q", contents[0].Role)
	}
}

func TestSystemInstruction_CoreRules(t *testing.T) {
	for _, want := range []string{
		"Digital Krishi Officer",
		"High / Medium / Low",
		"Integrated Pest Management",
		"Do NOT recommend banned/illegal pesticides",
		"Short answer",
	} {
		if !strings.Contains(SystemInstruction, want) {
			t.Fatalf("system instruction missing %q", want)
		}
	}
}
