// Package timer owns the work/rest phase state machine. All methods must be
// called from a single goroutine (the bubbletea update loop); the tick is a
// tea.Cmd whose message is routed back through Tick.
package timer

import (
	"log/slog"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/focusring/internal/clock"
	"github.com/ayoisaiah/focusring/internal/phase"
	"github.com/ayoisaiah/focusring/internal/timeutil"
)

const (
	DefaultTickInterval = 50 * time.Millisecond
	DefaultDebounce     = 300 * time.Millisecond
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Options are fixed when the timer is constructed.
type Options struct {
	Durations    phase.Durations
	TickInterval time.Duration
	// Debounce is the window after an accepted Toggle during which further
	// toggles are ignored.
	Debounce time.Duration
}

type state struct {
	// anchor is the instant elapsed is measured from while running. It is
	// zero when the timer is stopped.
	anchor  time.Time
	// began is when the phase was first started. It is zero until then.
	began   time.Time
	elapsed time.Duration
	phase   phase.Phase
	running bool
}

// Timer alternates between work and rest phases.
type Timer struct {
	clock      clock.Clock
	lastToggle time.Time
	state      state
	opts       Options
	id         int
	gen        int
}

// New creates a stopped timer at the start of the work phase.
func New(opts Options, clk clock.Clock) *Timer {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}

	if opts.Debounce < 0 {
		opts.Debounce = 0
	}

	if clk == nil {
		clk = clock.Real{}
	}

	return &Timer{
		clock: clk,
		opts:  opts,
		id:    nextID(),
		state: state{phase: phase.Work},
	}
}

// ID identifies the timer in tick messages.
func (t *Timer) ID() int {
	return t.id
}

// Running reports whether the countdown is advancing.
func (t *Timer) Running() bool {
	return t.state.running
}

// Phase returns the active phase.
func (t *Timer) Phase() phase.Phase {
	return t.state.phase
}

// Snapshot returns the timer state as of now without mutating it.
func (t *Timer) Snapshot() Snapshot {
	return t.snapshotAt(t.clock.Now())
}

func (t *Timer) duration() time.Duration {
	return t.opts.Durations.Of(t.state.phase)
}

func (t *Timer) snapshotAt(now time.Time) Snapshot {
	total := t.duration()
	elapsed := t.state.elapsed

	if t.state.running {
		elapsed = timeutil.Clamp(now.Sub(t.state.anchor), 0, total)
	}

	return Snapshot{
		Phase:     t.state.phase,
		Elapsed:   elapsed,
		Duration:  total,
		Remaining: total - elapsed,
		Fraction:  timeutil.FractionRemaining(elapsed, total),
		Running:   t.state.running,
	}
}

func (t *Timer) switched(now, boundary time.Time) Event {
	done := t.switchPhase(now, boundary)

	ev := t.event(EventPhaseSwitched, now)
	ev.Completed = done

	return ev
}

func (t *Timer) event(kind EventKind, now time.Time) Event {
	return Event{
		Kind:     kind,
		Snapshot: t.snapshotAt(now),
		At:       now,
	}
}

// measure recomputes elapsed from the anchor, clamped to the phase duration.
// A clock behind the anchor reads as no time elapsed; the anchor is kept so
// that the phase resumes counting from where it was once the clock catches up.
func (t *Timer) measure(now time.Time) {
	d := now.Sub(t.state.anchor)
	if d < 0 {
		slog.Debug(
			"clock behind phase anchor",
			slog.Duration("skew", d),
			slog.String("phase", t.state.phase.String()),
		)
	}

	t.state.elapsed = timeutil.Clamp(d, 0, t.duration())
}

// switchPhase moves to the next phase and returns the span of the one that
// ended at boundary.
func (t *Timer) switchPhase(now, boundary time.Time) *Span {
	from := t.state.phase

	done := &Span{
		Phase: from,
		Began: t.state.began,
		Ended: boundary,
	}

	t.state.phase = from.Next()
	t.state.elapsed = 0

	if t.state.running {
		t.state.anchor = now
		t.state.began = now
	} else {
		t.state.anchor = time.Time{}
		t.state.began = time.Time{}
	}

	slog.Debug(
		"phase switched",
		slog.String("from", from.String()),
		slog.String("to", t.state.phase.String()),
		slog.Bool("running", t.state.running),
		slog.Time("boundary", boundary),
	)

	return done
}

// Start begins or resumes the countdown. It is a no-op if the timer is already
// running. Starting with the phase fully elapsed is allowed; the next tick
// switches the phase.
func (t *Timer) Start() (Event, bool) {
	if t.state.running {
		return Event{}, false
	}

	now := t.clock.Now()

	t.state.anchor = now.Add(-t.state.elapsed)
	t.state.running = true
	t.gen++

	if t.state.began.IsZero() {
		t.state.began = now
	}

	slog.Debug(
		"timer started",
		slog.String("phase", t.state.phase.String()),
		slog.Duration("elapsed", t.state.elapsed),
	)

	return t.event(EventStarted, now), true
}

// Pause stops the countdown, keeping the time elapsed in the phase. It is a
// no-op if the timer is not running. If the phase ran out since the last tick,
// the phase is switched and the timer stays stopped at the start of the next
// phase.
func (t *Timer) Pause() (Event, bool) {
	if !t.state.running {
		return Event{}, false
	}

	now := t.clock.Now()

	t.measure(now)

	boundary := t.state.anchor.Add(t.duration())

	t.state.running = false
	t.state.anchor = time.Time{}
	t.gen++

	if t.state.elapsed >= t.duration() {
		return t.switched(now, boundary), true
	}

	slog.Debug(
		"timer paused",
		slog.String("phase", t.state.phase.String()),
		slog.Duration("elapsed", t.state.elapsed),
	)

	return t.event(EventPaused, now), true
}

// Reset stops the timer and returns it to the start of the work phase.
func (t *Timer) Reset() Event {
	now := t.clock.Now()

	t.state = state{phase: phase.Work}
	t.gen++

	slog.Debug("timer reset")

	return t.event(EventReset, now)
}

// Tick advances the countdown. Messages from an earlier generation, from
// another timer, or received while stopped are ignored. At most one phase
// switch happens per tick no matter how far elapsed overshoots.
func (t *Timer) Tick(msg TickMsg) (Event, bool) {
	if msg.ID != t.id || msg.Gen != t.gen || !t.state.running {
		return Event{}, false
	}

	// only the tick scheduled next by Next is live from here on
	t.gen++

	now := t.clock.Now()

	t.measure(now)

	if t.state.elapsed >= t.duration() {
		return t.switched(now, t.state.anchor.Add(t.duration())), true
	}

	return t.event(EventTicked, now), true
}

// Toggle pauses a running timer or starts a stopped one. Toggles within the
// debounce window of the last accepted toggle are ignored.
func (t *Timer) Toggle() (Event, bool) {
	now := t.clock.Now()

	if !t.lastToggle.IsZero() {
		since := now.Sub(t.lastToggle)
		if since >= 0 && since < t.opts.Debounce {
			slog.Debug("toggle debounced", slog.Duration("since", since))

			return Event{}, false
		}
	}

	t.lastToggle = now

	if t.state.running {
		return t.Pause()
	}

	return t.Start()
}

// Next returns the command that delivers the next tick, or nil when the timer
// is stopped.
func (t *Timer) Next() tea.Cmd {
	if !t.state.running {
		return nil
	}

	msg := TickMsg{ID: t.id, Gen: t.gen}

	return tea.Tick(t.opts.TickInterval, func(time.Time) tea.Msg {
		return msg
	})
}
