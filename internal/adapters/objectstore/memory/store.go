// Package memory es un object store en memoria para dev y tests.
package memory

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewStore() *Store {
	return &Store{objects: map[string][]byte{}}
}

func (s *Store) Upload(ctx context.Context, bucket, key string, body io.Reader, _ int64, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+key] = b
	return nil
}

// Get devuelve el objeto guardado, si existe.
func (s *Store) Get(bucket, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.objects[bucket+"/"+key]
	return b, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
