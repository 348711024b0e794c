package timer

import (
	"time"

	"github.com/ayoisaiah/focusring/internal/phase"
)

// EventKind identifies a timer transition.
type EventKind int

const (
	EventStarted EventKind = iota + 1
	EventPaused
	EventReset
	EventTicked
	EventPhaseSwitched
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventReset:
		return "reset"
	case EventTicked:
		return "ticked"
	case EventPhaseSwitched:
		return "phase_switched"
	}

	return "unknown"
}

// Snapshot is a read-only view of the timer at an instant. It is derived from
// the timer state every time it is needed and never stored by the timer.
type Snapshot struct {
	Phase     phase.Phase
	Elapsed   time.Duration
	Duration  time.Duration
	Remaining time.Duration
	Fraction  float64 // fraction of the phase remaining, in [0, 1]
	Running   bool
}

// Span describes a phase that ran to completion.
type Span struct {
	// Began is when the phase was first started.
	Began time.Time
	// Ended is when the countdown reached zero, which may be earlier than the
	// tick that noticed it.
	Ended time.Time
	Phase phase.Phase
}

// Event is emitted by every timer transition.
type Event struct {
	At        time.Time
	Completed *Span // set on EventPhaseSwitched only
	Snapshot  Snapshot
	Kind      EventKind
}

// TickMsg is delivered by the command returned from Next. It is only honoured
// when it carries the timer's ID and current generation.
type TickMsg struct {
	ID  int
	Gen int
}
