// Package phase defines the two alternating intervals of the timer
package phase

import (
	"fmt"
	"strings"
	"time"
)

// Phase identifies the interval the timer is counting down.
type Phase int

const (
	Work Phase = iota
	Rest
)

var names = map[Phase]string{
	Work: "work",
	Rest: "rest",
}

func (p Phase) String() string {
	if s, ok := names[p]; ok {
		return s
	}

	return fmt.Sprintf("phase(%d)", int(p))
}

// Title returns the display name of the phase.
func (p Phase) Title() string {
	s := p.String()

	return strings.ToUpper(s[:1]) + s[1:]
}

// Next returns the phase that follows p.
func (p Phase) Next() Phase {
	if p == Work {
		return Rest
	}

	return Work
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	if _, ok := names[p]; !ok {
		return nil, fmt.Errorf("unknown phase: %d", int(p))
	}

	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name.
func (p *Phase) UnmarshalText(b []byte) error {
	for k, v := range names {
		if v == string(b) {
			*p = k
			return nil
		}
	}

	return fmt.Errorf("unknown phase: %q", string(b))
}

// Durations holds the nominal length of each phase. Durations are looked up by
// phase identity and never stored on a running timer.
type Durations struct {
	Work time.Duration
	Rest time.Duration
}

// Of returns the duration of p.
func (d Durations) Of(p Phase) time.Duration {
	if p == Rest {
		return d.Rest
	}

	return d.Work
}
