package config

import "github.com/ayoisaiah/rep/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownMode = &apperr.Error{
		Message: "gateway mode must be 'local' or 'remote', got %q",
	}

	errMissingGatewayURL = &apperr.Error{
		Message: "gateway.url must be set when gateway.mode is 'remote'",
	}

	errInvalidRestDuration = &apperr.Error{
		Message: "rest duration must be positive, got %v",
	}

	errInvalidDuration = &apperr.Error{
		Message: "invalid duration format: %s",
	}
)
