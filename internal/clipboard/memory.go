package clipboard

import (
	"sync"
)

// Memory is an in-memory clipboard for testing
type Memory struct {
	mu       sync.RWMutex
	data     []byte
	hasText  bool
	writeErr error
	reads    int
	writes   int
}

// NewMemory creates an empty in-memory clipboard
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWithText creates an in-memory clipboard holding text
func NewMemoryWithText(text string) *Memory {
	return &Memory{data: []byte(text), hasText: true}
}

// FailWrites makes every subsequent WriteText return err
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

func (m *Memory) HasText() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reads++
	return m.hasText && len(m.data) > 0
}

func (m *Memory) ReadText() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reads++
	if !m.hasText || len(m.data) == 0 {
		return nil, ErrNoText
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *Memory) WriteText(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.hasText = true
	return nil
}

// Text returns the current clipboard contents
func (m *Memory) Text() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return string(m.data)
}

// Touched reports whether any read or write reached the clipboard
func (m *Memory) Touched() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reads > 0 || m.writes > 0
}
