package testutils

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrInjected is returned by MemoryBlobStore when a failure is switched on.
	ErrInjected = errors.New("injected storage failure")
	// ErrMissingBlob is returned by MemoryBlobStore.Read for unknown names.
	ErrMissingBlob = errors.New("blob not found")
)

// MemoryBlobStore keeps blobs in a map and can be told to fail.
type MemoryBlobStore struct {
	mu         sync.Mutex
	blobs      map[string][]byte
	puts       int
	FailPut    bool
	FailDelete bool
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: map[string][]byte{}}
}

func (m *MemoryBlobStore) Put(ctx context.Context, name string, data []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPut {
		return ErrInjected
	}
	m.blobs[name] = append([]byte(nil), data...)
	m.puts++
	return nil
}

func (m *MemoryBlobStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailDelete {
		return ErrInjected
	}
	delete(m.blobs, name)
	return nil
}

func (m *MemoryBlobStore) URL(name string) string {
	return "/media/" + name
}

// Read returns a stored blob or ErrMissingBlob.
func (m *MemoryBlobStore) Read(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[name]
	if !ok {
		return nil, ErrMissingBlob
	}
	return data, nil
}

func (m *MemoryBlobStore) Has(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.blobs[name]
	return ok
}

func (m *MemoryBlobStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blobs)
}

// Puts counts successful writes.
func (m *MemoryBlobStore) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}
