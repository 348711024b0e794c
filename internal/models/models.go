// Package models defines the values persisted by focusring.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/focusring/internal/phase"
)

// Record is one completed work or rest phase.
type Record struct {
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
	ID          string        `json:"id"`
	Phase       phase.Phase   `json:"phase"`
	Duration    time.Duration `json:"duration"`
}

// NewRecord describes a phase of length d that was first started at began
// and reached zero at ended. Pauses make ended - began longer than d. A zero
// began is taken to mean the phase ran without pausing.
func NewRecord(p phase.Phase, d time.Duration, began, ended time.Time) *Record {
	if began.IsZero() {
		began = ended.Add(-d)
	}

	return &Record{
		ID:          uuid.NewString(),
		Phase:       p,
		Duration:    d,
		StartedAt:   began,
		CompletedAt: ended,
	}
}
