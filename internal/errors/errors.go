package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrorTypeUsage ErrorType = iota
	ErrorTypeSource
	ErrorTypeSink
	ErrorTypeUnknown
)

// User-facing messages
const (
	MsgMissingEndpoint = "You must specify either input and output file."
	MsgFileNotOpened   = "File could not be opened"
	MsgFileNotRead     = "Could not copy file contents"
	MsgClipboardNoText = "Clipboard doesn't contain text"
	MsgClipboardNotSet = "Could not copy to clipboard"
	MsgFileNotWritten  = "Could not write to file"
)

// String returns the taxonomy name of the error type
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeUsage:
		return "UsageError"
	case ErrorTypeSource:
		return "SourceError"
	case ErrorTypeSink:
		return "SinkError"
	default:
		return "UnknownError"
	}
}

// ClipError represents a transfer failure with context and exit information
type ClipError struct {
	Type       ErrorType
	Message    string
	Underlying error
	Fatal      bool
	Context    map[string]string
}

// Error implements the error interface
func (e *ClipError) Error() string {
	msg := e.Message
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
		msg = fmt.Sprintf("%s (%s)", msg, strings.Join(parts, ", "))
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *ClipError) Unwrap() error {
	return e.Underlying
}

// ExitCode returns the process exit code for this error
func (e *ClipError) ExitCode() int {
	if e.Fatal {
		return 1
	}
	return 0
}

// NewUsageError creates a fatal usage error
func NewUsageError(message string, err error) *ClipError {
	return &ClipError{
		Type:       ErrorTypeUsage,
		Message:    message,
		Underlying: err,
		Fatal:      true,
	}
}

// WrapSourceError wraps a failure to read the transfer source
func WrapSourceError(err error, message, path string) *ClipError {
	return &ClipError{
		Type:       ErrorTypeSource,
		Message:    message,
		Underlying: err,
		Fatal:      true,
		Context:    pathContext(path),
	}
}

// WrapSinkError wraps a failure to write the transfer destination.
// Non-fatal sink errors are reported but leave the exit code at 0.
func WrapSinkError(err error, message, path string, fatal bool) *ClipError {
	return &ClipError{
		Type:       ErrorTypeSink,
		Message:    message,
		Underlying: err,
		Fatal:      fatal,
		Context:    pathContext(path),
	}
}

// AsClipError converts any error into a ClipError. Errors that are not
// already a ClipError become fatal usage errors carrying err's text.
func AsClipError(err error) *ClipError {
	if err == nil {
		return nil
	}
	var ce *ClipError
	if errors.As(err, &ce) {
		return ce
	}
	return NewUsageError(err.Error(), err)
}

// pathContext returns a context map for a file path, or nil for the clipboard
func pathContext(path string) map[string]string {
	if path == "" {
		return map[string]string{"endpoint": "clipboard"}
	}
	return map[string]string{"path": path}
}
