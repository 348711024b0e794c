// Package presenter keeps a progress indicator, a countdown label, and a
// play/pause glyph consistent with the events emitted by the phase timer.
package presenter

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/focusring/internal/clock"
	"github.com/ayoisaiah/focusring/internal/phase"
	"github.com/ayoisaiah/focusring/internal/timer"
	"github.com/ayoisaiah/focusring/internal/timeutil"
)

const (
	PlayGlyph  = "▶"
	PauseGlyph = "⏸"
)

// Sink is a rendering backend for the progress indicator. Values are the
// fraction of the phase remaining, so a full indicator is 1.
type Sink interface {
	// BeginAnimation discards any animation in flight and animates linearly
	// from `from` down to 0 over d, holding 0 afterwards.
	BeginAnimation(from float64, d time.Duration)
	// Freeze stops the animation at its current value without discarding it.
	Freeze()
	// Resume continues a frozen animation, shifting its time base forward by
	// offset.
	Resume(offset time.Duration)
	// SetColor cross-fades the indicator to the hex colour over fade.
	SetColor(hex string, fade time.Duration)
	// SnapToFull cancels any animation and shows a full indicator.
	SnapToFull()
}

// Options configure the presenter.
type Options struct {
	Colors    map[phase.Phase]string
	ColorFade time.Duration
}

type animState int

const (
	animIdle animState = iota
	animRunning
	animFrozen
)

// Presenter translates timer events into sink commands and label text. It owns
// no timer state.
type Presenter struct {
	sink     Sink
	clock    clock.Clock
	frozenAt time.Time
	opts     Options
	label    string
	phase    phase.Phase
	anim     animState
	running  bool
}

// New creates a presenter that drives sink.
func New(sink Sink, opts Options, clk clock.Clock) *Presenter {
	if clk == nil {
		clk = clock.Real{}
	}

	return &Presenter{
		sink:  sink,
		opts:  opts,
		clock: clk,
		label: timeutil.MMSS(0),
	}
}

// Label returns the countdown text.
func (p *Presenter) Label() string {
	return p.label
}

// Color returns the hex colour of the current phase.
func (p *Presenter) Color() string {
	return p.opts.Colors[p.phase]
}

// Phase returns the phase last reported by the timer.
func (p *Presenter) Phase() phase.Phase {
	return p.phase
}

// Button returns the glyph for the play/pause control: play while stopped,
// pause while running.
func (p *Presenter) Button() string {
	if p.running {
		return PauseGlyph
	}

	return PlayGlyph
}

// Handle applies a timer event.
func (p *Presenter) Handle(ev timer.Event) {
	s := ev.Snapshot

	p.running = s.Running
	p.phase = s.Phase

	switch ev.Kind {
	case timer.EventStarted:
		p.started(s)
	case timer.EventPaused:
		p.paused()
	case timer.EventTicked:
		// the indicator animates on its own once started
	case timer.EventPhaseSwitched:
		p.phaseSwitched(s)
	case timer.EventReset:
		p.reset(s)
	}

	p.label = timeutil.MMSS(s.Remaining)
}

func (p *Presenter) started(s timer.Snapshot) {
	if p.anim == animFrozen {
		offset := p.clock.Now().Sub(p.frozenAt)
		if offset < 0 {
			offset = 0
		}

		p.sink.Resume(offset)
		p.anim = animRunning

		slog.Debug("progress resumed", slog.Duration("offset", offset))

		return
	}

	p.begin(s)
}

func (p *Presenter) begin(s timer.Snapshot) {
	p.sink.BeginAnimation(s.Fraction, s.Remaining)
	p.anim = animRunning

	slog.Debug(
		"progress animation began",
		slog.Float64("from", s.Fraction),
		slog.Duration("over", s.Remaining),
	)
}

func (p *Presenter) paused() {
	if p.anim != animRunning {
		return
	}

	p.sink.Freeze()
	p.anim = animFrozen
	p.frozenAt = p.clock.Now()
}

func (p *Presenter) phaseSwitched(s timer.Snapshot) {
	p.sink.SnapToFull()
	p.sink.SetColor(p.opts.Colors[s.Phase], p.opts.ColorFade)
	p.anim = animIdle

	if s.Running {
		p.begin(s)
	}
}

func (p *Presenter) reset(s timer.Snapshot) {
	p.sink.SnapToFull()
	p.sink.SetColor(p.opts.Colors[s.Phase], 0)
	p.anim = animIdle
	p.frozenAt = time.Time{}
}
