package session

import (
	"testing"
	"time"
)

func typeAll(t *testing.T, tr *Tracker, text string) {
	t.Helper()
	at := time.Unix(0, 0)
	for _, r := range text {
		tr.Type(r, at)
		at = at.Add(100 * time.Millisecond)
	}
}

func nonPending(states []CharState) int {
	n := 0
	for _, s := range states {
		if s != StatePending {
			n++
		}
	}
	return n
}

func TestTrackerJudgesCharacters(t *testing.T) {
	tr := NewTracker("cat", false)
	typeAll(t, tr, "cut")

	states := tr.States()
	if states[0] != StateCorrect || states[1] != StateIncorrect || states[2] != StateCorrect {
		t.Fatalf("unexpected states: %v", states)
	}
	if tr.Cursor() != 3 {
		t.Fatalf("expected cursor 3, got %d", tr.Cursor())
	}
	log := tr.Log()
	if len(log) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(log))
	}
	if log[1].Rune != 'u' || log[1].Result != StateIncorrect {
		t.Fatalf("unexpected log entry: %+v", log[1])
	}
}

func TestTrackerCursorMatchesNonPending(t *testing.T) {
	tr := NewTracker("one two three", true)
	inputs := []Keystroke{
		{Rune: 'o'}, {Rune: 'x'}, {Backspace: true}, {Rune: 'n'}, {Rune: 'e'},
		{Rune: ' '}, {Backspace: true}, {Rune: 't'}, {Rune: ' '}, {Rune: 't'},
	}
	at := time.Unix(0, 0)
	for _, k := range inputs {
		if k.Backspace {
			tr.Backspace()
			continue
		}
		tr.Type(k.Rune, at)
		at = at.Add(50 * time.Millisecond)
	}
	if got := nonPending(tr.States()); got != tr.Cursor() {
		t.Fatalf("cursor %d does not match %d non-pending states", tr.Cursor(), got)
	}
	if tr.Cursor() > len(tr.Target()) {
		t.Fatalf("cursor %d exceeds target length", tr.Cursor())
	}
}

func TestTrackerBackspaceAtZeroIsNoop(t *testing.T) {
	tr := NewTracker("cat", false)
	tr.Backspace()
	tr.Backspace()
	if tr.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", tr.Cursor())
	}
}

func TestTrackerBackspaceFreeWithoutWordLock(t *testing.T) {
	tr := NewTracker("cat dog", false)
	typeAll(t, tr, "cat d")
	tr.Backspace()
	tr.Backspace()
	if tr.Cursor() != 3 {
		t.Fatalf("expected cursor 3 after free correction, got %d", tr.Cursor())
	}
	if tr.States()[3] != StatePending || tr.States()[4] != StatePending {
		t.Fatalf("expected retracted states to be pending: %v", tr.States())
	}
}

func TestTrackerBackspaceLockedAtWordBoundary(t *testing.T) {
	tr := NewTracker("cat dog", true)
	typeAll(t, tr, "cat ")
	tr.Backspace()
	if tr.Cursor() != 4 {
		t.Fatalf("expected locked cursor 4, got %d", tr.Cursor())
	}
	typeAll(t, tr, "d")
	tr.Backspace()
	tr.Backspace()
	if tr.Cursor() != 4 {
		t.Fatalf("expected backspace to stop at lock boundary, got %d", tr.Cursor())
	}
}

func TestTrackerSpaceSkipsRestOfWord(t *testing.T) {
	tr := NewTracker("cat dog", true)
	typeAll(t, tr, "c ")

	states := tr.States()
	if states[0] != StateCorrect {
		t.Fatalf("expected first char correct, got %v", states[0])
	}
	for i := 1; i <= 3; i++ {
		if states[i] != StateSkipped {
			t.Fatalf("expected position %d skipped, got %v", i, states[i])
		}
	}
	if tr.Cursor() != 4 {
		t.Fatalf("expected cursor at next word, got %d", tr.Cursor())
	}
	if got := tr.CompletedWords(); got != 1 {
		t.Fatalf("expected 1 completed word, got %d", got)
	}
	log := tr.Log()
	if log[len(log)-1].Result != StateSkipped {
		t.Fatalf("expected skip keystroke logged as skipped, got %+v", log[len(log)-1])
	}
	tr.Backspace()
	if tr.Cursor() != 4 {
		t.Fatalf("expected skip to lock the boundary, got cursor %d", tr.Cursor())
	}
}

func TestTrackerSpaceSkipsFinalWord(t *testing.T) {
	tr := NewTracker("cat dog", true)
	typeAll(t, tr, "cat d ")
	if !tr.Exhausted() {
		t.Fatalf("expected target exhausted, got cursor %d", tr.Cursor())
	}
	if got := tr.CompletedWords(); got != 2 {
		t.Fatalf("expected 2 completed words, got %d", got)
	}
}

func TestTrackerLeadingSpaceIgnored(t *testing.T) {
	tr := NewTracker("cat dog", true)
	typeAll(t, tr, " ")
	if tr.Cursor() != 0 {
		t.Fatalf("expected leading space ignored, got cursor %d", tr.Cursor())
	}
	if len(tr.Log()) != 0 {
		t.Fatalf("expected no log entries, got %d", len(tr.Log()))
	}
}

func TestTrackerSpaceAtSpaceTargetIsCorrect(t *testing.T) {
	tr := NewTracker("a b", true)
	typeAll(t, tr, "a ")
	if got := tr.States()[1]; got != StateCorrect {
		t.Fatalf("expected space judged correct, got %v", got)
	}
}

func TestTrackerInputExhausted(t *testing.T) {
	tr := NewTracker("ab", false)
	typeAll(t, tr, "ab")
	if tr.Type('c', time.Unix(0, 0)) {
		t.Fatalf("expected keystroke rejected after exhaustion")
	}
	if tr.Cursor() != 2 || len(tr.Log()) != 2 {
		t.Fatalf("expected exhausted tracker unchanged: cursor=%d log=%d", tr.Cursor(), len(tr.Log()))
	}
}

func TestTrackerCompletedWordsCountsFinalPartialWord(t *testing.T) {
	tr := NewTracker("cat dog", true)
	typeAll(t, tr, "cat do")
	if got := tr.CompletedWords(); got != 1 {
		t.Fatalf("expected 1 completed word before final char, got %d", got)
	}
	typeAll(t, tr, "g")
	if got := tr.CompletedWords(); got != 2 {
		t.Fatalf("expected 2 completed words after final char, got %d", got)
	}
}
