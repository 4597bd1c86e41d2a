package tui

import (
	"testing"

	"github.com/verte-zerg/typebench/internal/session"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	target := []rune("ab")
	states := []session.CharState{session.StateCorrect, session.StatePending}

	runes := buildStyledRunes(target, states, 1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected underlined cursor for second rune")
	}
}

func TestBuildStyledRunesIncorrect(t *testing.T) {
	target := []rune("ab")
	states := []session.CharState{session.StateCorrect, session.StateIncorrect}

	runes := buildStyledRunes(target, states, -1)
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style to keep the target rune")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	target := []rune("a b")
	states := []session.CharState{session.StateCorrect, session.StateIncorrect, session.StatePending}

	runes := buildStyledRunes(target, states, 2)
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestBuildStyledRunesSkipped(t *testing.T) {
	target := []rune("cat dog")
	states := []session.CharState{
		session.StateCorrect, session.StateSkipped, session.StateSkipped,
		session.StateSkipped, session.StatePending, session.StatePending, session.StatePending,
	}

	runes := buildStyledRunes(target, states, 4)
	if runes[1].s != skippedStyle.Render("a") {
		t.Fatalf("expected skipped style for skipped char")
	}
	if runes[5].s != currentWordStyle.Render("o") {
		t.Fatalf("expected current word style after skip")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	target := []rune("one two")
	states := make([]session.CharState, len(target))
	runes := buildStyledRunes(target, states, 0)

	wrapped := wrapStyledRunes(runes, 5)
	lines := 1
	for _, r := range wrapped {
		if r == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Fatalf("expected 2 wrapped lines, got %d", lines)
	}
}
