// Package ring renders the phase progress indicator in the terminal. It
// implements presenter.Sink: a linear countdown animation that can be frozen
// and resumed, and a colour that cross-fades between phases.
package ring

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ayoisaiah/focusring/internal/clock"
)

const frameRate = time.Second / 60

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg asks the ring to redraw while it is moving.
type FrameMsg struct {
	id  int
	tag int
}

type animation struct {
	begin  time.Time
	span   time.Duration
	from   float64
	frozen float64
	active bool
	paused bool
}

type fade struct {
	start    time.Time
	from     colorful.Color
	to       colorful.Color
	span     time.Duration
	hasColor bool
}

// Model is the progress indicator.
type Model struct {
	clock clock.Clock
	bar   progress.Model
	anim  animation
	color fade
	id    int
	tag   int
}

// New creates a full indicator of the given width.
func New(clk clock.Clock, width int) *Model {
	if clk == nil {
		clk = clock.Real{}
	}

	return &Model{
		clock: clk,
		id:    nextID(),
		bar: progress.New(
			progress.WithSolidFill("#FFFFFF"),
			progress.WithoutPercentage(),
			progress.WithWidth(width),
		),
	}
}

// BeginAnimation replaces any animation with one that runs linearly from `from`
// to 0 over d and then holds 0.
func (m *Model) BeginAnimation(from float64, d time.Duration) {
	m.anim = animation{
		begin:  m.clock.Now(),
		span:   d,
		from:   from,
		active: true,
	}
}

// Freeze captures the live value and stops the animation clock.
func (m *Model) Freeze() {
	if !m.anim.active || m.anim.paused {
		return
	}

	m.anim.frozen = m.valueAt(m.clock.Now())
	m.anim.paused = true
}

// Resume restarts a frozen animation after shifting its start by offset, so it
// continues from exactly the frozen value.
func (m *Model) Resume(offset time.Duration) {
	if !m.anim.active || !m.anim.paused {
		return
	}

	m.anim.begin = m.anim.begin.Add(offset)
	m.anim.paused = false
}

// SnapToFull cancels the animation and shows a full indicator.
func (m *Model) SnapToFull() {
	m.anim = animation{}
}

// SetColor cross-fades from the colour on screen to hex over d.
func (m *Model) SetColor(hex string, d time.Duration) {
	target, err := colorful.Hex(hex)
	if err != nil {
		slog.Warn("invalid ring colour", slog.String("color", hex), slog.Any("err", err))
		return
	}

	now := m.clock.Now()

	from := target
	if m.color.hasColor {
		from = m.colorAt(now)
	}

	m.color = fade{
		start:    now,
		from:     from,
		to:       target,
		span:     d,
		hasColor: true,
	}
}

func (m *Model) valueAt(now time.Time) float64 {
	a := m.anim

	switch {
	case !a.active:
		return 1
	case a.paused:
		return a.frozen
	case a.span <= 0:
		return 0
	}

	p := float64(now.Sub(a.begin)) / float64(a.span)

	switch {
	case p <= 0:
		return a.from
	case p >= 1:
		return 0
	}

	return a.from * (1 - p)
}

func (m *Model) colorAt(now time.Time) colorful.Color {
	f := m.color

	if f.span <= 0 {
		return f.to
	}

	p := float64(now.Sub(f.start)) / float64(f.span)

	switch {
	case p <= 0:
		return f.from
	case p >= 1:
		return f.to
	}

	return f.from.BlendLab(f.to, p).Clamped()
}

// Value returns the fraction of the phase the indicator shows as remaining.
func (m *Model) Value() float64 {
	return m.valueAt(m.clock.Now())
}

// Color returns the hex colour currently on screen.
func (m *Model) Color() string {
	return m.colorAt(m.clock.Now()).Hex()
}

// Moving reports whether the indicator changes without further commands.
func (m *Model) Moving() bool {
	now := m.clock.Now()

	if m.anim.active && !m.anim.paused && m.valueAt(now) > 0 {
		return true
	}

	return m.color.span > 0 && now.Sub(m.color.start) < m.color.span
}

// Frame starts the redraw loop if the indicator is moving. Any earlier loop is
// superseded.
func (m *Model) Frame() tea.Cmd {
	if !m.Moving() {
		return nil
	}

	m.tag++

	msg := FrameMsg{id: m.id, tag: m.tag}

	return tea.Tick(frameRate, func(time.Time) tea.Msg {
		return msg
	})
}

// Update continues the redraw loop.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.id != m.id || frame.tag != m.tag {
		return nil
	}

	return m.Frame()
}

// SetWidth sets the rendered width in cells.
func (m *Model) SetWidth(w int) {
	m.bar.Width = w
}

// Width returns the rendered width in cells.
func (m *Model) Width() int {
	return m.bar.Width
}

// View renders the indicator.
func (m *Model) View() string {
	m.bar.FullColor = m.Color()

	return m.bar.ViewAs(m.Value())
}
