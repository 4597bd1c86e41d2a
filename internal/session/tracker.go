package session

import "time"

// CharState is the judgment recorded for one target position.
type CharState uint8

// Judgments for target positions.
const (
	StatePending CharState = iota
	StateCorrect
	StateIncorrect
	StateSkipped
)

// Keystroke is one raw input event: a typed rune or a backspace signal.
type Keystroke struct {
	Rune      rune
	Backspace bool
}

// LogEntry records a processed keystroke and its judgment. Backspaces are not
// logged; the log is the authoritative input for metric computation.
type LogEntry struct {
	Rune   rune
	At     time.Time
	Result CharState
}

// Tracker consumes keystrokes against a fixed target text, maintaining the
// per-character judgment record and the cursor. With word locking enabled
// (Time/Words modes) a crossed word boundary becomes final: backspace cannot
// re-enter a committed word, and a mid-word space skips to the next word.
type Tracker struct {
	target []rune
	states []CharState
	words  []wordRange
	cursor int
	lockAt int
	locked bool

	log []LogEntry
}

type wordRange struct {
	start int
	end   int // exclusive, does not include the separating space
}

// NewTracker builds a tracker for the target text. wordLock enables the
// committed-word policy used by Time and Words modes.
func NewTracker(target string, wordLock bool) *Tracker {
	runes := []rune(target)
	return &Tracker{
		target: runes,
		states: make([]CharState, len(runes)),
		words:  findWords(runes),
		locked: wordLock,
	}
}

func findWords(target []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range target {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(target)})
	}
	return words
}

// Type judges one typed rune against the current cursor position.
// Returns false once the target is exhausted; the keystroke is then ignored.
func (t *Tracker) Type(r rune, at time.Time) bool {
	if t.cursor >= len(t.target) {
		return false
	}
	if t.locked && r == ' ' && t.target[t.cursor] != ' ' {
		t.skipWord(r, at)
		return true
	}
	result := StateIncorrect
	if r == t.target[t.cursor] {
		result = StateCorrect
	}
	t.states[t.cursor] = result
	t.log = append(t.log, LogEntry{Rune: r, At: at, Result: result})
	t.cursor++
	if t.locked && t.target[t.cursor-1] == ' ' {
		// Advanced past a separating space: the previous word is committed.
		t.lockAt = t.cursor
	}
	return true
}

// skipWord handles a space typed strictly inside a word: remaining characters
// of the word (and the separating space) become Skipped and the cursor jumps
// to the next word. A space at the word's first character is ignored.
func (t *Tracker) skipWord(r rune, at time.Time) {
	word, ok := t.wordAt(t.cursor)
	if !ok || t.cursor == word.start {
		return
	}
	for i := t.cursor; i < word.end; i++ {
		t.states[i] = StateSkipped
	}
	if word.end < len(t.target) {
		t.states[word.end] = StateSkipped
		t.cursor = word.end + 1
	} else {
		t.cursor = len(t.target)
	}
	t.log = append(t.log, LogEntry{Rune: r, At: at, Result: StateSkipped})
	t.lockAt = t.cursor
}

func (t *Tracker) wordAt(pos int) (wordRange, bool) {
	for _, w := range t.words {
		if pos >= w.start && pos < w.end {
			return w, true
		}
	}
	return wordRange{}, false
}

// Backspace retracts the most recent judgment unless the position is locked.
// At cursor zero it is always a no-op.
func (t *Tracker) Backspace() {
	if t.cursor == 0 || t.cursor <= t.lockAt {
		return
	}
	t.cursor--
	t.states[t.cursor] = StatePending
}

// Cursor returns the index of the next character to be judged.
func (t *Tracker) Cursor() int {
	return t.cursor
}

// Exhausted reports whether every target position has been consumed.
func (t *Tracker) Exhausted() bool {
	return t.cursor >= len(t.target)
}

// Target returns a copy of the target runes.
func (t *Tracker) Target() []rune {
	out := make([]rune, len(t.target))
	copy(out, t.target)
	return out
}

// States returns a copy of the per-character judgments.
func (t *Tracker) States() []CharState {
	out := make([]CharState, len(t.states))
	copy(out, t.states)
	return out
}

// Log returns a copy of the keystroke log.
func (t *Tracker) Log() []LogEntry {
	out := make([]LogEntry, len(t.log))
	copy(out, t.log)
	return out
}

// CompletedWords counts words whose full range lies behind the cursor,
// including the final word once its last character has been judged.
func (t *Tracker) CompletedWords() int {
	count := 0
	for _, w := range t.words {
		if t.cursor >= w.end {
			count++
		}
	}
	return count
}
