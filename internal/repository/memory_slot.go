package repository

import (
	"context"
	"sync"
)

// MemorySlot is an in-memory StateSlot used in tests.
type MemorySlot struct {
	mu      sync.Mutex
	payload []byte
	saveErr error
}

// NewMemorySlot returns an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// FailSaves makes every subsequent Save return err.
func (m *MemorySlot) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *MemorySlot) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.payload == nil {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), m.payload...), nil
}

func (m *MemorySlot) Save(ctx context.Context, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.payload = append([]byte(nil), payload...)
	return nil
}
