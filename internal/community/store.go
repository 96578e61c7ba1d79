package community

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/breakloop/community-backend/pkg/errors"
	"github.com/breakloop/community-backend/pkg/kv"
	"github.com/breakloop/community-backend/pkg/logger"
)

// Store owns the cached snapshot and its durable copy. All reads and
// writes go through the cache; the durable backend only sees full
// serialized snapshots.
type Store struct {
	mu        sync.RWMutex
	logg      *logger.Logger
	durable   kv.Store
	key       string
	ephemeral bool
	cached    Snapshot
	loaded    bool
}

// StoreParams configures a snapshot store. Ephemeral mode (demo mode)
// never reads from or writes to the durable backend.
type StoreParams struct {
	Logger    *logger.Logger
	Durable   kv.Store
	Key       string
	Ephemeral bool
}

func NewStore(params StoreParams) (*Store, error) {
	if params.Logger == nil {
		return nil, errors.New(errors.CodeDependency, "community store requires a logger")
	}
	if params.Durable == nil && !params.Ephemeral {
		return nil, errors.New(errors.CodeDependency, "community store requires a durable backend")
	}
	if params.Key == "" {
		return nil, errors.New(errors.CodeDependency, "community store requires a storage key")
	}
	return &Store{
		logg:      params.Logger,
		durable:   params.Durable,
		key:       params.Key,
		ephemeral: params.Ephemeral,
	}, nil
}

// Load initializes the cache. The seed patch is laid over the built-in
// defaults and wins for every field it touches. In ephemeral mode the
// durable backend is never consulted; otherwise a stored snapshot takes
// precedence over the seed, a missing key writes the seeded defaults
// through, and an unreadable payload is replaced by the seeded defaults
// with a warning.
func (s *Store) Load(ctx context.Context, seed Patch) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded := Merge(DefaultSnapshot(), seed)

	if s.ephemeral {
		s.cached = seeded
		s.loaded = true
		s.logg.Info(ctx, "community store loaded in ephemeral mode")
		return s.cached.Clone(), nil
	}

	raw, err := s.durable.Get(ctx, s.key)
	if err != nil {
		if !kv.IsNotFound(err) {
			return Snapshot{}, errors.Wrap(errors.CodeDependency, err, "failed to read stored snapshot")
		}
		s.cached = seeded
		s.loaded = true
		if err := s.writeThrough(ctx); err != nil {
			return Snapshot{}, err
		}
		s.logg.Info(ctx, "community store seeded with defaults")
		return s.cached.Clone(), nil
	}

	var stored Patch
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logg.Warn(ctx, "stored snapshot is unreadable, resetting to defaults")
		s.cached = seeded
		s.loaded = true
		if err := s.writeThrough(ctx); err != nil {
			return Snapshot{}, err
		}
		return s.cached.Clone(), nil
	}

	s.cached = Merge(DefaultSnapshot(), stored)
	s.loaded = true
	s.logg.Info(ctx, "community store loaded from durable backend")
	return s.cached.Clone(), nil
}

// Persist merges the patch over the cached snapshot, writes the result
// through unless the store is ephemeral, and returns the merged snapshot.
func (s *Store) Persist(ctx context.Context, patch Patch) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.cached = DefaultSnapshot()
		s.loaded = true
	}

	s.cached = Merge(s.cached, patch)

	if !s.ephemeral {
		if err := s.writeThrough(ctx); err != nil {
			return Snapshot{}, err
		}
	}
	return s.cached.Clone(), nil
}

// Current returns a copy of the cached snapshot without touching the
// durable backend.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return DefaultSnapshot()
	}
	return s.cached.Clone()
}

func (s *Store) writeThrough(ctx context.Context) error {
	payload, err := json.Marshal(s.cached)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "failed to serialize snapshot")
	}
	if err := s.durable.Set(ctx, s.key, string(payload)); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "failed to write snapshot")
	}
	return nil
}
