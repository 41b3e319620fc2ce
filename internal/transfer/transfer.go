// Package transfer moves one payload from a source endpoint to a destination
// endpoint, where each endpoint is either a file or the clipboard.
package transfer

import (
	"log/slog"

	"github.com/dustin/go-humanize"

	"clipboard/internal/clipboard"
)

// Transferer performs transfers against a clipboard backend
type Transferer struct {
	clip   clipboard.Service
	logger *slog.Logger
	strict bool
}

// Option configures a Transferer
type Option func(*Transferer)

// WithStrict makes every destination failure fatal
func WithStrict(strict bool) Option {
	return func(t *Transferer) {
		t.strict = strict
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transferer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a Transferer using clip for clipboard endpoints
func New(clip clipboard.Service, opts ...Option) *Transferer {
	t := &Transferer{
		clip:   clip,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Result is the outcome of a transfer that reached the destination stage
type Result struct {
	Message string
	Bytes   int
}

// Run reads the source and writes the destination. A non-nil error is either
// fatal, or a non-fatal destination failure returned alongside a Result.
func (t *Transferer) Run(req Request) (*Result, error) {
	t.logger.Debug("Transfer started.", "source", req.Source.String(), "dest", req.Dest.String())

	payload, err := t.Read(req.Source)
	if err != nil {
		return nil, err
	}
	t.logger.Debug("Payload read.", "source", req.Source.String(), "size", humanize.Bytes(uint64(len(payload))))

	msg, err := t.Write(req, payload)
	result := &Result{Message: msg, Bytes: len(payload)}
	if err != nil {
		return result, err
	}

	t.logger.Debug("Payload written.", "dest", req.Dest.String(), "size", humanize.Bytes(uint64(len(payload))))
	return result, nil
}
