package store

import "github.com/ayoisaiah/focusring/internal/apperr"

var (
	errFocusRunning = &apperr.Error{
		Message: "is focusring already running? Only one instance can be active at a time",
	}

	errCorruptRecord = &apperr.Error{
		Message: "unable to decode history record %s",
	}
)
