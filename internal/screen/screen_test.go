package screen

import (
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focusring/internal/clock"
	"github.com/ayoisaiah/focusring/internal/config"
	"github.com/ayoisaiah/focusring/internal/models"
	"github.com/ayoisaiah/focusring/internal/phase"
	"github.com/ayoisaiah/focusring/internal/presenter"
	"github.com/ayoisaiah/focusring/internal/timer"
)

var epoch = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

type memRecorder struct {
	records []models.Record
	mu      sync.Mutex
}

func (r *memRecorder) AddRecord(rec *models.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, *rec)

	return nil
}

type alertFunc func(ended, next phase.Phase) error

func (f alertFunc) PhaseEnded(ended, next phase.Phase) error {
	return f(ended, next)
}

func testConfig() *config.Config {
	return &config.Config{
		Work: config.PhaseConfig{Color: "#FF3B30", Message: "Focus on your task"},
		Rest: config.PhaseConfig{Color: "#34C759", Message: "Take a breather"},
		Timer: config.TimerConfig{
			TickInterval: time.Millisecond,
			Debounce:     300 * time.Millisecond,
		},
	}
}

// collect runs cmd and every command batched inside it, returning the
// resulting messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()

	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg

		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}

		return msgs
	}

	return []tea.Msg{msg}
}

func space() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func TestInitialState(t *testing.T) {
	m := New(testConfig(), WithClock(clock.NewFake(epoch)))

	assert.Equal(t, "00:06", m.presenter.Label())
	assert.Equal(t, presenter.PlayGlyph, m.presenter.Button())
	assert.Equal(t, phase.Work, m.presenter.Phase())
	assert.InDelta(t, 1.0, m.ring.Value(), 1e-9)
	assert.False(t, m.timer.Running())
	assert.Contains(t, m.View(), "Work")
	assert.Contains(t, m.View(), "[Paused]")
}

func TestToggleAndDebounce(t *testing.T) {
	clk := clock.NewFake(epoch)
	m := New(testConfig(), WithClock(clk))

	_, cmd := m.Update(space())
	assert.NotNil(t, cmd)
	assert.True(t, m.timer.Running())
	assert.Equal(t, presenter.PauseGlyph, m.presenter.Button())

	clk.Advance(100 * time.Millisecond)

	_, cmd = m.Update(space())
	assert.Nil(t, cmd)
	assert.True(t, m.timer.Running(), "second press within the debounce window is ignored")

	clk.Advance(400 * time.Millisecond)

	m.Update(space())
	assert.False(t, m.timer.Running())
	assert.Equal(t, presenter.PlayGlyph, m.presenter.Button())
	assert.Equal(t, "00:06", m.presenter.Label())
}

func TestPhaseSwitchRecordsAndAlerts(t *testing.T) {
	clk := clock.NewFake(epoch)
	rec := &memRecorder{}

	var alerts [][2]phase.Phase

	m := New(
		testConfig(),
		WithClock(clk),
		WithRecorder(rec),
		WithAlerter(alertFunc(func(ended, next phase.Phase) error {
			alerts = append(alerts, [2]phase.Phase{ended, next})
			return nil
		})),
	)

	m.Update(space())

	clk.Advance(2 * time.Second)

	m.Update(m.timer.Next()())
	assert.Equal(t, "00:04", m.presenter.Label())

	clk.Advance(4 * time.Second)

	tick := m.timer.Next()()

	_, cmd := m.Update(tick)
	assert.Equal(t, phase.Rest, m.presenter.Phase())
	assert.Equal(t, "00:03", m.presenter.Label())

	var ended *phaseEndedMsg

	for _, msg := range collect(cmd) {
		if pe, ok := msg.(phaseEndedMsg); ok {
			ended = &pe
		}
	}

	if assert.NotNil(t, ended) {
		assert.NoError(t, ended.err)
		assert.Equal(t, phase.Work, ended.record.Phase)
		assert.Equal(t, 6*time.Second, ended.record.Duration)
		assert.True(t, ended.record.CompletedAt.Equal(epoch.Add(6*time.Second)))
		assert.True(t, ended.record.StartedAt.Equal(epoch))
	}

	assert.Len(t, rec.records, 1)
	assert.Equal(t, [][2]phase.Phase{{phase.Work, phase.Rest}}, alerts)

	_, cmd = m.Update(tick)
	assert.Nil(t, cmd, "a tick is only honoured once")

	_, cmd = m.Update(*ended)
	assert.Nil(t, cmd)
}

func TestPhaseEndedReportsFailure(t *testing.T) {
	fail := errors.New("disk full")

	m := New(testConfig(), WithClock(clock.NewFake(epoch)), WithAlerter(alertFunc(
		func(phase.Phase, phase.Phase) error { return fail },
	)))

	msg := m.phaseEnded(timer.Span{
		Phase: phase.Rest,
		Began: epoch.Add(-3 * time.Second),
		Ended: epoch,
	}, phase.Work)()

	pe, ok := msg.(phaseEndedMsg)
	if assert.True(t, ok) {
		assert.ErrorIs(t, pe.err, fail)
		assert.Equal(t, phase.Rest, pe.record.Phase)
		assert.Equal(t, 3*time.Second, pe.record.Duration)
	}
}

func TestStaleTickMessage(t *testing.T) {
	m := New(testConfig(), WithClock(clock.NewFake(epoch)))

	_, cmd := m.Update(timer.TickMsg{ID: m.timer.ID() + 1})
	assert.Nil(t, cmd)
}

func TestWindowSize(t *testing.T) {
	m := New(testConfig(), WithClock(clock.NewFake(epoch)))

	m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxWidth, m.ring.Width())

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 40})
	assert.Equal(t, 32, m.ring.Width())
}

func TestQuit(t *testing.T) {
	m := New(testConfig(), WithClock(clock.NewFake(epoch)))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.Contains(t, collect(cmd), tea.Msg(tea.QuitMsg{}))
}

func TestRecordKeepsPausesAndLateTicks(t *testing.T) {
	clk := clock.NewFake(epoch)
	rec := &memRecorder{}

	m := New(testConfig(), WithClock(clk), WithRecorder(rec))

	m.Update(space())

	clk.Advance(2 * time.Second)
	m.Update(space())

	clk.Advance(time.Minute)
	m.Update(space())

	// the tick arrives long after the boundary, as after a system sleep
	clk.Advance(time.Hour)

	_, cmd := m.Update(m.timer.Next()())
	collect(cmd)

	if assert.Len(t, rec.records, 1) {
		r := rec.records[0]

		assert.Equal(t, phase.Work, r.Phase)
		assert.Equal(t, 6*time.Second, r.Duration)
		assert.True(t, r.StartedAt.Equal(epoch), "started at %v", r.StartedAt)
		assert.True(
			t,
			r.CompletedAt.Equal(epoch.Add(time.Minute+6*time.Second)),
			"completed at %v",
			r.CompletedAt,
		)
	}
}
