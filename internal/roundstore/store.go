// Package roundstore persists round collections through a kv.Store.
//
// Each owner's collection is one JSON array stored under "rounds:<owner>".
// Every save rewrites the whole array; there is no incremental append at the
// storage layer. A stored value that does not decode as an array of rounds is
// treated as an empty collection and is overwritten by the next save.
// Elements without a positive slope rating are dropped on read, and the next
// save rewrites the collection without them.
package roundstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/internal/handicap"
	"github.com/pkordes/golf-trips/internal/kv"
)

const keyPrefix = "rounds:"

// Store is the owner-keyed round store. It never validates round contents.
type Store struct {
	kv    kv.Store
	log   *slog.Logger
	locks keyLocks
}

// New constructs a Store over the given backend. A nil logger discards
// corrupt-data warnings.
func New(backend kv.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{kv: backend, log: logger}
}

// Key returns the storage key for owner's collection.
func Key(owner domain.OwnerKey) string {
	return keyPrefix + string(owner)
}

// Save appends round to owner's collection and rewrites it.
// Saves for the same owner are serialized so concurrent appends are not lost.
func (s *Store) Save(ctx context.Context, owner domain.OwnerKey, round domain.Round) error {
	unlock := s.locks.lock(string(owner))
	defer unlock()

	rounds, err := s.load(ctx, owner)
	if err != nil {
		return fmt.Errorf("roundstore.Store.Save: %w", err)
	}
	rounds = append(rounds, round)

	raw, err := json.Marshal(rounds)
	if err != nil {
		return fmt.Errorf("roundstore.Store.Save: encode: %w", err)
	}
	if err := s.kv.Set(ctx, Key(owner), string(raw)); err != nil {
		return fmt.Errorf("roundstore.Store.Save: %w", err)
	}
	return nil
}

// GetAll returns owner's rounds in insertion order.
// Always returns a non-nil slice. Missing or undecodable data yields an empty
// slice; only backend failures are returned as errors.
func (s *Store) GetAll(ctx context.Context, owner domain.OwnerKey) ([]domain.Round, error) {
	rounds, err := s.load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("roundstore.Store.GetAll: %w", err)
	}
	return rounds, nil
}

// Clear removes owner's whole collection. Clearing an empty owner is a no-op.
func (s *Store) Clear(ctx context.Context, owner domain.OwnerKey) error {
	unlock := s.locks.lock(string(owner))
	defer unlock()

	if err := s.kv.Remove(ctx, Key(owner)); err != nil {
		return fmt.Errorf("roundstore.Store.Clear: %w", err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, owner domain.OwnerKey) ([]domain.Round, error) {
	raw, ok, err := s.kv.Get(ctx, Key(owner))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Round{}, nil
	}

	var rounds []domain.Round
	if err := json.Unmarshal([]byte(raw), &rounds); err != nil {
		s.log.WarnContext(ctx, "discarding unreadable round collection",
			"owner", string(owner),
			"error", err,
		)
		return []domain.Round{}, nil
	}
	if rounds == nil {
		// A stored JSON null decodes without error.
		return []domain.Round{}, nil
	}

	kept := rounds[:0]
	for _, r := range rounds {
		if handicap.Scorable(r) {
			kept = append(kept, r)
		}
	}
	if dropped := len(rounds) - len(kept); dropped > 0 {
		s.log.WarnContext(ctx, "discarding unscorable rounds",
			"owner", string(owner),
			"dropped", dropped,
			"kept", len(kept),
		)
	}
	return kept, nil
}
