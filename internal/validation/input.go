package validation

import (
	"fmt"
	"strings"

	"clipboard/internal/config"
	clipErrors "clipboard/internal/errors"
)

// ValidateEndpoints checks that at least one side of the transfer is a file.
// Clipboard to clipboard is rejected.
func ValidateEndpoints(input, output string) error {
	if input == "" && output == "" {
		return clipErrors.NewUsageError(clipErrors.MsgMissingEndpoint, nil)
	}
	return nil
}

// ValidateBackend validates a clipboard backend name
func ValidateBackend(backend string) error {
	return oneOf("backend", backend, config.Backends())
}

// ValidateLogLevel validates a diagnostic log level
func ValidateLogLevel(level string) error {
	return oneOf("log level", strings.ToLower(level), config.LogLevels())
}

func oneOf(what, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	err := fmt.Errorf("invalid %s %q: must be one of %s", what, value, strings.Join(allowed, ", "))
	return clipErrors.NewUsageError(err.Error(), err)
}
