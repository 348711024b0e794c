package config

import "github.com/ayoisaiah/focusring/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config failed",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errEmptyMsg = &apperr.Error{
		Message: "%s message cannot be empty",
	}

	errInvalidTiming = &apperr.Error{
		Message: "%s must be between %v and %v, got %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s",
	}
)
