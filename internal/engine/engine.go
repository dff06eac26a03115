// Package engine implements the round state machine: prompt comparison,
// timing capture, and phase transitions driven by discrete key events.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidTransition reports a mutation requested in a phase that forbids
// it. It signals a bug in the driving loop, not a user error.
var ErrInvalidTransition = errors.New("invalid transition")

// Phase is the lifecycle state of a round.
type Phase int

const (
	// PhaseNotStarted means a round exists but no keystroke was accepted yet.
	PhaseNotStarted Phase = iota
	// PhaseInProgress means at least one keystroke was accepted.
	PhaseInProgress
	// PhaseCompleted means the typed buffer reached the prompt length.
	PhaseCompleted
	// PhaseCancelled means the round was abandoned before completion.
	PhaseCancelled
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	case PhaseCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Keystroke records one accepted keystroke and whether it matched the
// prompt character at its position.
type Keystroke struct {
	Typed   rune
	Correct bool
}

// Round is a read-only copy of the active round's recorded data.
type Round struct {
	Phase      Phase
	Prompt     []rune
	Typed      []Keystroke
	StartedAt  time.Time
	FinishedAt time.Time
}

// Snapshot is the render-facing view of the engine state.
type Snapshot struct {
	Active  bool
	Phase   Phase
	Prompt  []rune
	Typed   []Keystroke
	Elapsed time.Duration
}

type round struct {
	phase      Phase
	prompt     []rune
	typed      []Keystroke
	startedAt  time.Time
	finishedAt time.Time
}

// Engine owns the active round and serializes all mutations. Timestamps
// come from a single clock; time.Now carries a monotonic reading, so
// elapsed durations are immune to wall-clock adjustments.
type Engine struct {
	mu    sync.Mutex
	clock func() time.Time
	round *round
}

// New returns an Engine using the system clock.
func New() *Engine {
	return NewWithClock(time.Now)
}

// NewWithClock returns an Engine reading timestamps from the given clock.
func NewWithClock(clock func() time.Time) *Engine {
	return &Engine{clock: clock}
}

// Begin starts a fresh round for the given prompt. It is valid with no
// active round or after the previous round completed or was cancelled.
func (e *Engine) Begin(prompt string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.round != nil {
		switch e.round.phase {
		case PhaseNotStarted, PhaseInProgress:
			return fmt.Errorf("begin while round %s: %w", e.round.phase, ErrInvalidTransition)
		}
	}
	runes := []rune(prompt)
	if len(runes) == 0 {
		return fmt.Errorf("begin with empty prompt: %w", ErrInvalidTransition)
	}
	e.round = &round{
		phase:  PhaseNotStarted,
		prompt: runes,
		typed:  make([]Keystroke, 0, len(runes)),
	}
	return nil
}

// TypeChar accepts one keystroke. The first keystroke of a round sets the
// start timestamp; filling the buffer sets the finish timestamp and moves
// the round to PhaseCompleted. Comparison is exact, with no normalization.
func (e *Engine) TypeChar(r rune) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rd := e.round
	if rd == nil {
		return fmt.Errorf("type with no round: %w", ErrInvalidTransition)
	}
	switch rd.phase {
	case PhaseNotStarted:
		rd.startedAt = e.clock()
		rd.phase = PhaseInProgress
	case PhaseInProgress:
	default:
		return fmt.Errorf("type while round %s: %w", rd.phase, ErrInvalidTransition)
	}

	pos := len(rd.typed)
	rd.typed = append(rd.typed, Keystroke{Typed: r, Correct: r == rd.prompt[pos]})
	if len(rd.typed) == len(rd.prompt) {
		rd.finishedAt = e.clock()
		rd.phase = PhaseCompleted
	}
	return nil
}

// Backspace removes the last accepted keystroke. An already-empty buffer is
// a no-op: the round stays InProgress and keeps its start timestamp, since
// a round, once started, is never un-started.
func (e *Engine) Backspace() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rd := e.round
	if rd == nil {
		return fmt.Errorf("backspace with no round: %w", ErrInvalidTransition)
	}
	if rd.phase != PhaseInProgress {
		return fmt.Errorf("backspace while round %s: %w", rd.phase, ErrInvalidTransition)
	}
	if len(rd.typed) == 0 {
		return nil
	}
	rd.typed = rd.typed[:len(rd.typed)-1]
	return nil
}

// Cancel abandons the active round. No summary is ever produced for a
// cancelled round.
func (e *Engine) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rd := e.round
	if rd == nil {
		return fmt.Errorf("cancel with no round: %w", ErrInvalidTransition)
	}
	switch rd.phase {
	case PhaseNotStarted, PhaseInProgress:
		rd.phase = PhaseCancelled
		return nil
	default:
		return fmt.Errorf("cancel while round %s: %w", rd.phase, ErrInvalidTransition)
	}
}

// Snapshot returns a read-only copy of the engine state. It never mutates
// the round and is safe to call concurrently with the driving loop.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	rd := e.round
	if rd == nil {
		return Snapshot{}
	}
	return Snapshot{
		Active:  true,
		Phase:   rd.phase,
		Prompt:  append([]rune(nil), rd.prompt...),
		Typed:   append([]Keystroke(nil), rd.typed...),
		Elapsed: e.elapsedLocked(rd),
	}
}

// Round returns a copy of the active round's recorded data. The second
// result is false when no round exists.
func (e *Engine) Round() (Round, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rd := e.round
	if rd == nil {
		return Round{}, false
	}
	return Round{
		Phase:      rd.phase,
		Prompt:     append([]rune(nil), rd.prompt...),
		Typed:      append([]Keystroke(nil), rd.typed...),
		StartedAt:  rd.startedAt,
		FinishedAt: rd.finishedAt,
	}, true
}

func (e *Engine) elapsedLocked(rd *round) time.Duration {
	if rd.startedAt.IsZero() {
		return 0
	}
	if !rd.finishedAt.IsZero() {
		return rd.finishedAt.Sub(rd.startedAt)
	}
	return e.clock().Sub(rd.startedAt)
}
