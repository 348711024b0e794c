package screen

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/focusring/internal/models"
	"github.com/ayoisaiah/focusring/internal/phase"
	"github.com/ayoisaiah/focusring/internal/ring"
	"github.com/ayoisaiah/focusring/internal/timer"
)

// phaseEndedMsg reports the outcome of the side effects of a completed phase.
type phaseEndedMsg struct {
	record *models.Record
	err    error
}

// handleEvent forwards a timer event to the presenter and schedules whatever
// follows from it.
func (m *Model) handleEvent(ev timer.Event) tea.Cmd {
	m.presenter.Handle(ev)

	cmds := []tea.Cmd{m.timer.Next()}

	switch ev.Kind {
	case timer.EventStarted, timer.EventReset:
		cmds = append(cmds, m.ring.Frame())
	case timer.EventPhaseSwitched:
		cmds = append(cmds, m.ring.Frame())

		if ev.Completed != nil {
			cmds = append(cmds, m.phaseEnded(*ev.Completed, ev.Snapshot.Phase))
		}
	}

	return tea.Batch(cmds...)
}

// phaseEnded records the completed phase and fires alerts off the update
// loop.
func (m *Model) phaseEnded(done timer.Span, next phase.Phase) tea.Cmd {
	ended := done.Phase
	record := models.NewRecord(ended, m.durations.Of(ended), done.Began, done.Ended)
	recorder, alerter := m.recorder, m.alerter

	return func() tea.Msg {
		msg := phaseEndedMsg{record: record}

		if recorder != nil {
			msg.err = recorder.AddRecord(record)
		}

		if alerter != nil {
			if err := alerter.PhaseEnded(ended, next); err != nil && msg.err == nil {
				msg.err = err
			}
		}

		return msg
	}
}

func (m *Model) handleTick(msg timer.TickMsg) (tea.Model, tea.Cmd) {
	ev, ok := m.timer.Tick(msg)
	if !ok {
		return m, nil
	}

	return m, m.handleEvent(ev)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		ev, ok := m.timer.Toggle()
		if !ok {
			return m, nil
		}

		return m, m.handleEvent(ev)

	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		return m.handleTick(msg)

	case ring.FrameMsg:
		return m, m.ring.Update(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		width := msg.Width - padding*2 - 4
		if width > maxWidth {
			width = maxWidth
		}

		m.ring.SetWidth(max(width, 1))
		m.help.Width = msg.Width

		return m, nil

	case phaseEndedMsg:
		if msg.err != nil {
			slog.Error(
				"phase end handling failed",
				slog.String("phase", msg.record.Phase.String()),
				slog.Any("error", msg.err),
			)

			return m, nil
		}

		slog.Info(
			"phase completed",
			slog.String("id", msg.record.ID),
			slog.String("phase", msg.record.Phase.String()),
			slog.Duration("duration", msg.record.Duration),
		)

		return m, nil
	}

	slog.Debug("unhandled message", slog.String("msg", spew.Sdump(msg)))

	return m, nil
}
