// Package screen is the interactive timer screen. It owns the phase timer and
// its presenter, and routes keys, ticks and frames to them from bubbletea's
// update loop.
package screen

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/focusring/internal/clock"
	"github.com/ayoisaiah/focusring/internal/config"
	"github.com/ayoisaiah/focusring/internal/models"
	"github.com/ayoisaiah/focusring/internal/phase"
	"github.com/ayoisaiah/focusring/internal/presenter"
	"github.com/ayoisaiah/focusring/internal/ring"
	"github.com/ayoisaiah/focusring/internal/timer"
)

const (
	padding      = 2
	maxWidth     = 80
	initialWidth = 40
)

// Recorder stores completed phases.
type Recorder interface {
	AddRecord(r *models.Record) error
}

// Alerter announces the end of a phase.
type Alerter interface {
	PhaseEnded(ended, next phase.Phase) error
}

// Option configures a Model.
type Option func(*Model)

// WithRecorder records every completed phase to r.
func WithRecorder(r Recorder) Option {
	return func(m *Model) {
		m.recorder = r
	}
}

// WithAlerter fires a on every completed phase.
func WithAlerter(a Alerter) Option {
	return func(m *Model) {
		m.alerter = a
	}
}

// WithClock replaces the wall clock.
func WithClock(c clock.Clock) Option {
	return func(m *Model) {
		m.clock = c
	}
}

type style struct {
	base  lipgloss.Style
	label lipgloss.Style
	hint  lipgloss.Style
}

// Model is the bubbletea model for the timer screen.
type Model struct {
	clock     clock.Clock
	recorder  Recorder
	alerter   Alerter
	timer     *timer.Timer
	ring      *ring.Model
	presenter *presenter.Presenter
	messages  map[phase.Phase]string
	durations phase.Durations
	help      help.Model
	style     style
}

// New builds the screen in its initial state: Work, stopped, indicator full.
func New(cfg *config.Config, opts ...Option) *Model {
	m := &Model{
		clock:     clock.Real{},
		messages:  cfg.Messages(),
		durations: cfg.Durations(),
		help:      help.New(),
		style: style{
			base:  lipgloss.NewStyle().Padding(1, padding),
			label: lipgloss.NewStyle().Bold(true),
			hint:  lipgloss.NewStyle().Faint(true),
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	m.timer = timer.New(timer.Options{
		Durations:    m.durations,
		TickInterval: cfg.Timer.TickInterval,
		Debounce:     cfg.Timer.Debounce,
	}, m.clock)

	m.ring = ring.New(m.clock, initialWidth)

	m.presenter = presenter.New(m.ring, presenter.Options{
		Colors:    cfg.Colors(),
		ColorFade: cfg.Timer.ColorFade,
	}, m.clock)

	m.presenter.Handle(m.timer.Reset())

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("focusring")
}
