package service

import (
	"context"
	"fmt"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/internal/handicap"
	"github.com/pkordes/golf-trips/internal/metrics"
	"github.com/pkordes/golf-trips/internal/repo"
)

// RoundStore is the owner-keyed round persistence the services depend on.
// *roundstore.Store satisfies it.
type RoundStore interface {
	Save(ctx context.Context, owner domain.OwnerKey, round domain.Round) error
	GetAll(ctx context.Context, owner domain.OwnerKey) ([]domain.Round, error)
	Clear(ctx context.Context, owner domain.OwnerKey) error
}

// RoundService validates rounds before they reach the store and recomputes
// handicap indexes from whatever the store holds.
type RoundService struct {
	trips   repo.TripRepo
	rounds  RoundStore
	metrics *metrics.Metrics
}

// NewRoundService constructs a RoundService. m may be nil.
func NewRoundService(trips repo.TripRepo, rounds RoundStore, m *metrics.Metrics) *RoundService {
	return &RoundService{trips: trips, rounds: rounds, metrics: m}
}

// Save validates round and appends it to owner's collection.
// Returns domain.ErrValidation for a bad round (nothing is written) and
// domain.ErrNotFound when owner is a trip that does not exist.
func (s *RoundService) Save(ctx context.Context, owner domain.OwnerKey, round domain.Round) error {
	if err := round.Validate(); err != nil {
		return fmt.Errorf("service.RoundService.Save: %w", err)
	}
	if err := s.requireOwner(ctx, owner); err != nil {
		return fmt.Errorf("service.RoundService.Save: %w", err)
	}
	if err := s.rounds.Save(ctx, owner, round); err != nil {
		return fmt.Errorf("service.RoundService.Save: %w", err)
	}
	s.metrics.RoundSaved(owner.Kind())
	return nil
}

// List returns owner's rounds in insertion order. Always non-nil.
func (s *RoundService) List(ctx context.Context, owner domain.OwnerKey) ([]domain.Round, error) {
	if err := s.requireOwner(ctx, owner); err != nil {
		return nil, fmt.Errorf("service.RoundService.List: %w", err)
	}
	rounds, err := s.rounds.GetAll(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("service.RoundService.List: %w", err)
	}
	return rounds, nil
}

// Clear removes owner's whole collection. It is idempotent and deliberately
// skips the trip-exists check so rounds left behind by a deleted trip can
// still be cleared.
func (s *RoundService) Clear(ctx context.Context, owner domain.OwnerKey) error {
	if err := s.rounds.Clear(ctx, owner); err != nil {
		return fmt.Errorf("service.RoundService.Clear: %w", err)
	}
	s.metrics.RoundsCleared(owner.Kind())
	return nil
}

// HandicapIndex recomputes owner's index from the full stored collection.
// An owner with no rounds gets an index whose Value is nil.
func (s *RoundService) HandicapIndex(ctx context.Context, owner domain.OwnerKey) (domain.HandicapIndex, error) {
	rounds, err := s.List(ctx, owner)
	if err != nil {
		return domain.HandicapIndex{}, fmt.Errorf("service.RoundService.HandicapIndex: %w", err)
	}

	idx := indexFor(owner, rounds)
	s.metrics.IndexComputed(idx.Value != nil)
	return idx, nil
}

// requireOwner checks that a trip owner refers to an existing trip.
// Player owners have no backing row and always pass.
func (s *RoundService) requireOwner(ctx context.Context, owner domain.OwnerKey) error {
	tripID, ok := owner.TripID()
	if !ok {
		return nil
	}
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return err
	}
	return nil
}

func indexFor(owner domain.OwnerKey, rounds []domain.Round) domain.HandicapIndex {
	scorable := 0
	for _, r := range rounds {
		if handicap.Scorable(r) {
			scorable++
		}
	}
	idx := domain.HandicapIndex{
		Owner:        owner,
		RoundsStored: len(rounds),
		RoundsUsed:   handicap.Counted(scorable),
	}
	if v, ok := handicap.Index(rounds); ok {
		idx.Value = &v
	}
	return idx
}
