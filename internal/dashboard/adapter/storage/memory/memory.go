package memory

import (
	"context"
	"github.com/langowen/fxdash/internal/entities"
	"sync"
)

// Storage keeps preferences in process memory. Values are lost on restart.
type Storage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewStorage() *Storage {
	return &Storage{
		values: make(map[string]string),
	}
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", entities.ErrNotFound
	}

	return value, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}
