// Package jsonstore persists one entity type's full collection as a flat
// JSON array on disk. One Store instance owns one file for the process
// lifetime; all access to that file must go through the same instance.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrSave wraps every write failure so callers can tell a durability fault
// apart from domain errors without knowing the storage mechanism.
var ErrSave = errors.New("jsonstore: save failed")

type Store[T any] struct {
	path   string
	mu     chan struct{} // capacity-1 semaphore, held for each file op
	logger *zap.Logger
}

func New[T any](path string, logger ...*zap.Logger) *Store[T] {
	l := zap.L().Named("jsonstore")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("jsonstore")
	}
	mu := make(chan struct{}, 1)
	return &Store[T]{path: path, mu: mu, logger: l.With(zap.String("file", filepath.Base(path)))}
}

func (s *Store[T]) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s.mu <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store[T]) release() {
	<-s.mu
}

// Load returns the full collection. A missing file means an empty
// collection; an unreadable or corrupt file is logged and also degrades to
// empty rather than failing the request.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()

	return s.loadLocked()
}

// Save overwrites the backing file with the given collection. The write
// goes through a temp file plus rename so a later Load can never observe a
// partially written array.
func (s *Store[T]) Save(ctx context.Context, records []T) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	return s.saveLocked(records)
}

// Update runs fn under the store's exclusive section with the freshly
// loaded collection and persists whatever fn returns. Holding the lock
// across the whole load-mutate-save cycle is what prevents two concurrent
// writers from silently discarding each other's changes.
func (s *Store[T]) Update(ctx context.Context, fn func(records []T) ([]T, error)) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	records, err := s.loadLocked()
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return s.saveLocked(updated)
}

// EnsureSeed writes the given records if no backing file exists yet. Used
// once at startup; a no-op when the file is already there.
func (s *Store[T]) EnsureSeed(ctx context.Context, seed []T) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("jsonstore: stat %s: %w", s.path, err)
	}

	s.logger.Info("seeding new collection", zap.Int("records", len(seed)))
	return s.saveLocked(seed)
}

func (s *Store[T]) loadLocked() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		s.logger.Warn("failed to read collection, treating as empty", zap.Error(err))
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("corrupt collection file, treating as empty", zap.Error(err))
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (s *Store[T]) saveLocked(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrSave, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: mkdir: %v", ErrSave, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp: %v", ErrSave, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write: %v", ErrSave, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close: %v", ErrSave, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename: %v", ErrSave, err)
	}
	return nil
}
