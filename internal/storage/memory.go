package storage

import (
	"context"
	"sync"
)

// MemoryBackend holds the snapshot in process memory. Nothing survives a
// restart; it exists for tests and for running with persistence disabled.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
	ok   bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(ctx context.Context) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.ok {
		return nil, false, nil
	}
	return append([]byte(nil), b.data...), true, nil
}

func (b *MemoryBackend) Store(ctx context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	b.ok = true
	return nil
}

func (b *MemoryBackend) Clear(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
	b.ok = false
	return nil
}

// Seed pre-populates the slot, bypassing Store. Test helper.
func (b *MemoryBackend) Seed(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	b.ok = true
}
