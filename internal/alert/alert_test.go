package alert

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focusring/internal/phase"
)

type calls struct {
	notified []string
	chimes   int
	commands [][]string
}

func newTestNotifier(opts Options, c *calls, fail error) *Notifier {
	n := New(opts)

	n.notify = func(title, msg string) error {
		c.notified = append(c.notified, title+": "+msg)
		return fail
	}

	n.chime = func() error {
		c.chimes++
		return fail
	}

	n.run = func(name string, args ...string) error {
		c.commands = append(c.commands, append([]string{name}, args...))
		return fail
	}

	return n
}

func TestPhaseEnded(t *testing.T) {
	messages := map[phase.Phase]string{
		phase.Work: "Focus on your task",
		phase.Rest: "Take a breather",
	}

	testCases := []struct {
		name     string
		opts     Options
		expected calls
	}{
		{
			name: "all alerts",
			opts: Options{
				Notify:   true,
				Sound:    true,
				Cmd:      `notify-send "phase over"`,
				Messages: messages,
			},
			expected: calls{
				notified: []string{"Work complete: Take a breather"},
				chimes:   1,
				commands: [][]string{{"notify-send", "phase over"}},
			},
		},
		{
			name:     "disabled",
			opts:     Options{Messages: messages},
			expected: calls{},
		},
		{
			name: "command only",
			opts: Options{Cmd: "echo 'done'"},
			expected: calls{
				commands: [][]string{{"echo", "done"}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got calls

			n := newTestNotifier(tc.opts, &got, nil)

			err := n.PhaseEnded(phase.Work, phase.Rest)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPhaseEndedReportsFirstFailure(t *testing.T) {
	var got calls

	fail := errors.New("no display")

	n := newTestNotifier(Options{Notify: true, Sound: true, Cmd: "true"}, &got, fail)

	err := n.PhaseEnded(phase.Rest, phase.Work)

	assert.ErrorIs(t, err, errNotify)
	assert.ErrorIs(t, err, fail)
	assert.Equal(t, 1, got.chimes)
	assert.Len(t, got.commands, 1)
}

func TestUnparsableCommand(t *testing.T) {
	var got calls

	n := newTestNotifier(Options{Cmd: `echo "unterminated`}, &got, nil)

	err := n.PhaseEnded(phase.Work, phase.Rest)

	assert.ErrorIs(t, err, errParseCmd)
	assert.True(t, strings.Contains(err.Error(), "unterminated"))
	assert.Empty(t, got.commands)
}

func TestWaitChime(t *testing.T) {
	done := make(chan struct{})
	close(done)

	assert.NoError(t, waitChime(done, time.Second))

	stuck := make(chan struct{})

	start := time.Now()
	err := waitChime(stuck, 20*time.Millisecond)

	assert.ErrorIs(t, err, errChimeTimeout)
	assert.True(t, time.Since(start) < time.Second)
}
