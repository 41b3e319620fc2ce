// Package clipboard provides access to the system clipboard's text format
// behind a small interface so the transfer pipeline can run against a fake.
package clipboard

import (
	"fmt"

	"clipboard/internal/config"
)

// Service defines the interface for clipboard text operations
type Service interface {
	HasText() bool
	ReadText() ([]byte, error)
	WriteText(data []byte) error
}

// Ensure implementations satisfy Service
var (
	_ Service = (*System)(nil)
	_ Service = (*Exec)(nil)
	_ Service = (*Memory)(nil)
)

// Common clipboard errors
var (
	ErrUnavailable = fmt.Errorf("clipboard unavailable")
	ErrNoText      = fmt.Errorf("clipboard doesn't contain text")
)

// New returns the clipboard backend registered under name
func New(name string) (Service, error) {
	switch name {
	case config.BackendSystem:
		return NewSystem(), nil
	case config.BackendExec:
		return NewExec(), nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend: %s (supported: system, exec)", name)
	}
}
