package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/typebench/internal/model"
)

// ErrInvalidConfig reports a malformed session config at construction.
var ErrInvalidConfig = errors.New("invalid session config")

// ErrInvalidTransition reports a lifecycle misuse, such as starting a session
// that is already running.
var ErrInvalidTransition = errors.New("invalid phase transition")

// Phase is the session lifecycle stage.
type Phase int

// Session lifecycle stages. Finished is terminal.
const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseFinished
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Snapshot is the render-ready view of a session. It is plain data,
// reconstructed on every request from the tracker, log, and timer.
type Snapshot struct {
	Phase          Phase
	Target         []rune
	States         []CharState
	Cursor         int
	Elapsed        time.Duration
	Remaining      time.Duration // ModeTime only, zero otherwise
	CompletedWords int
	GrossWPM       float64
	NetWPM         float64
	Accuracy       float64
}

// Session owns the timer and tracker for one benchmark run and decides when
// the run finishes under the configured mode's completion policy. It expects
// serialized calls from a single event loop; it holds no locks.
type Session struct {
	cfg     model.Config
	now     func() time.Time
	timer   *Timer
	tracker *Tracker
	phase   Phase
	frozen  time.Duration // elapsed at the Running->Finished transition
}

// New validates the config and constructs a session over the target text.
func New(cfg model.Config, target string) (*Session, error) {
	return NewWithClock(cfg, target, time.Now)
}

// NewWithClock is New with an injectable clock.
func NewWithClock(cfg model.Config, target string, now func() time.Time) (*Session, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if target == "" {
		return nil, fmt.Errorf("%w: target text is empty", ErrInvalidConfig)
	}
	wordLock := cfg.Mode != model.ModeQuote
	return &Session{
		cfg:     cfg,
		now:     now,
		timer:   newTimer(now),
		tracker: NewTracker(target, wordLock),
	}, nil
}

func validateConfig(cfg model.Config) error {
	switch cfg.Mode {
	case model.ModeTime:
		if cfg.TimeLimit <= 0 {
			return fmt.Errorf("%w: time limit must be positive", ErrInvalidConfig)
		}
	case model.ModeWords:
		if cfg.WordCount <= 0 {
			return fmt.Errorf("%w: word count must be positive", ErrInvalidConfig)
		}
	case model.ModeQuote:
	default:
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, cfg.Mode)
	}
	switch cfg.Difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		return fmt.Errorf("%w: unknown difficulty %d", ErrInvalidConfig, cfg.Difficulty)
	}
	return nil
}

// Config returns the immutable session config.
func (s *Session) Config() model.Config {
	return s.cfg
}

// Phase returns the current lifecycle stage.
func (s *Session) Phase() Phase {
	return s.phase
}

// Start explicitly moves the session to Running and starts the timer. The
// typing screen uses it for its start prompt, so a Time-mode clock runs even
// when no keystroke ever arrives. Apply starts the session implicitly instead
// when fed a character while NotStarted.
func (s *Session) Start() error {
	if s.phase != PhaseNotStarted {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.phase)
	}
	if err := s.timer.Start(); err != nil {
		return err
	}
	s.phase = PhaseRunning
	return nil
}

// Apply processes one keystroke. The first character keystroke starts the
// timer and moves the session to Running; a backspace never does. Once the
// session is Finished every call is a no-op.
func (s *Session) Apply(k Keystroke) {
	if s.phase == PhaseFinished {
		return
	}
	if k.Backspace {
		if s.phase == PhaseRunning {
			s.tracker.Backspace()
		}
		return
	}
	if s.phase == PhaseNotStarted {
		if err := s.timer.Start(); err != nil {
			// The phase guard makes a double start impossible.
			panic(err)
		}
		s.phase = PhaseRunning
	}
	s.tracker.Type(k.Rune, s.now())
	s.checkCompletion()
}

// Tick re-evaluates the time-based completion policy. The event loop calls it
// at its own cadence; the session does no scheduling of its own.
func (s *Session) Tick() {
	if s.phase != PhaseRunning {
		return
	}
	if s.cfg.Mode == model.ModeTime && s.timer.Remaining(s.cfg.TimeLimit) == 0 {
		s.finish(s.cfg.TimeLimit)
	}
}

// Abort force-finishes the session, producing a valid partial snapshot.
func (s *Session) Abort() {
	if s.phase == PhaseFinished {
		return
	}
	s.finish(s.timer.Elapsed())
}

func (s *Session) checkCompletion() {
	switch s.cfg.Mode {
	case model.ModeTime:
		if s.timer.Remaining(s.cfg.TimeLimit) == 0 {
			s.finish(s.cfg.TimeLimit)
		}
	case model.ModeWords:
		if s.tracker.CompletedWords() >= s.cfg.WordCount || s.tracker.Exhausted() {
			s.finish(s.timer.Elapsed())
		}
	case model.ModeQuote:
		if s.tracker.Exhausted() {
			s.finish(s.timer.Elapsed())
		}
	}
}

func (s *Session) finish(elapsed time.Duration) {
	s.phase = PhaseFinished
	s.frozen = elapsed
}

// Snapshot derives the current render-ready view. After Finished the elapsed
// time stays frozen at the transition instant.
func (s *Session) Snapshot() Snapshot {
	elapsed := s.timer.Elapsed()
	if s.phase == PhaseFinished {
		elapsed = s.frozen
	}
	var remaining time.Duration
	if s.cfg.Mode == model.ModeTime {
		remaining = s.cfg.TimeLimit - elapsed
		if remaining < 0 {
			remaining = 0
		}
	}
	m := computeMetrics(s.tracker.Log(), elapsed)
	return Snapshot{
		Phase:          s.phase,
		Target:         s.tracker.Target(),
		States:         s.tracker.States(),
		Cursor:         s.tracker.Cursor(),
		Elapsed:        elapsed,
		Remaining:      remaining,
		CompletedWords: s.tracker.CompletedWords(),
		GrossWPM:       m.GrossWPM,
		NetWPM:         m.NetWPM,
		Accuracy:       m.Accuracy,
	}
}
