// Package model defines shared data structures.
package model

import "time"

// Mode selects the session completion policy.
type Mode int

// Supported session modes.
const (
	ModeTime Mode = iota
	ModeWords
	ModeQuote
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeTime:
		return "time"
	case ModeWords:
		return "words"
	case ModeQuote:
		return "quote"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name to its Mode value.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "time":
		return ModeTime, true
	case "words":
		return ModeWords, true
	case "quote":
		return ModeQuote, true
	default:
		return 0, false
	}
}

// Difficulty bounds word length during corpus selection.
type Difficulty int

// Supported difficulty levels.
const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// String returns the lowercase difficulty name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a difficulty name to its Difficulty value.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	default:
		return 0, false
	}
}

// Config defines the settings for one benchmark session.
// Immutable once the session is constructed.
type Config struct {
	Mode       Mode
	TimeLimit  time.Duration // ModeTime only
	WordCount  int           // ModeWords only
	Difficulty Difficulty
}

// Quote is a single quote from the corpus store.
type Quote struct {
	Text   string
	Source string
}
