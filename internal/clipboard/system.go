package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// System is the clipboard of the host desktop, accessed through atotto/clipboard
type System struct{}

// NewSystem creates a system clipboard backend
func NewSystem() *System {
	return &System{}
}

// HasText reports whether the clipboard currently holds non-empty text
func (s *System) HasText() bool {
	if atotto.Unsupported {
		return false
	}
	text, err := atotto.ReadAll()
	return err == nil && text != ""
}

// ReadText returns the clipboard text unmodified
func (s *System) ReadText() ([]byte, error) {
	if atotto.Unsupported {
		return nil, ErrUnavailable
	}
	text, err := atotto.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read clipboard: %w", err)
	}
	if text == "" {
		return nil, ErrNoText
	}
	return []byte(text), nil
}

// WriteText replaces the clipboard text with data
func (s *System) WriteText(data []byte) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	if err := atotto.WriteAll(string(data)); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
