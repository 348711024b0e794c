// Package alert signals the end of a phase with a desktop notification, a
// short chime and an optional user command.
package alert

import (
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/focusring/internal/apperr"
	"github.com/ayoisaiah/focusring/internal/phase"
)

const (
	sampleRate    beep.SampleRate = 44100
	chimeFreq                     = 880.0
	chimeDuration                 = 250 * time.Millisecond
	chimeTimeout                  = 4 * chimeDuration
)

var (
	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}

	errSound = &apperr.Error{
		Message: "unable to play sound",
	}

	errChimeTimeout = &apperr.Error{
		Message: "chime did not finish within %s",
	}

	errParseCmd = &apperr.Error{
		Message: "unable to parse session command %q",
	}

	errRunCmd = &apperr.Error{
		Message: "session command failed",
	}
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Options selects which alerts fire when a phase ends.
type Options struct {
	Messages map[phase.Phase]string
	Cmd      string
	Notify   bool
	Sound    bool
}

// Notifier fires the configured alerts.
type Notifier struct {
	notify func(title, msg string) error
	chime  func() error
	run    func(name string, args ...string) error
	opts   Options
}

// New returns a Notifier that uses the desktop notification service, the
// default audio device and the host shell environment.
func New(opts Options) *Notifier {
	return &Notifier{
		opts: opts,
		notify: func(title, msg string) error {
			return beeep.Notify(title, msg, "")
		},
		chime: playChime,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// PhaseEnded is called when ended has completed and next has begun. All
// enabled alerts are attempted. The first failure is returned.
func (n *Notifier) PhaseEnded(ended, next phase.Phase) error {
	var first error

	keep := func(err error) {
		if err == nil {
			return
		}

		slog.Warn("alert failed", slog.Any("error", err))

		if first == nil {
			first = err
		}
	}

	if n.opts.Notify {
		title := ended.Title() + " complete"

		if err := n.notify(title, n.opts.Messages[next]); err != nil {
			keep(errNotify.Wrap(err))
		}
	}

	if n.opts.Sound {
		if err := n.chime(); err != nil {
			keep(errSound.Wrap(err))
		}
	}

	keep(n.runCmd())

	return first
}

func (n *Notifier) runCmd() error {
	if n.opts.Cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(n.opts.Cmd)
	if err != nil {
		return errParseCmd.Fmt(n.opts.Cmd).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	if err := n.run(cmdSlice[0], cmdSlice[1:]...); err != nil {
		return errRunCmd.Wrap(err)
	}

	return nil
}

// playChime plays a short sine tone and blocks until it finishes.
func playChime() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})

	if speakerErr != nil {
		return speakerErr
	}

	tone, err := generators.SineTone(sampleRate, chimeFreq)
	if err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(beep.Take(sampleRate.N(chimeDuration), tone), beep.Callback(func() {
		close(done)
	})))

	if err := waitChime(done, chimeTimeout); err != nil {
		speaker.Clear()
		return err
	}

	return nil
}

// waitChime blocks until done is closed or timeout passes. The speaker never
// finishes a sequence while audio output is suspended.
func waitChime(done <-chan struct{}, timeout time.Duration) error {
	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return errChimeTimeout.Fmt(timeout)
	}
}
