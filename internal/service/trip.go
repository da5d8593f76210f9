// Package service contains the business logic for the golf trips API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// round-store calls. No SQL lives here.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo   repo.TripRepo
	rounds RoundStore
}

// NewTripService constructs a TripService. rounds may be nil; when set,
// deleting a trip also clears the trip's round collection.
func NewTripService(r repo.TripRepo, rounds RoundStore) *TripService {
	return &TripService{repo: r, rounds: rounds}
}

// Create validates and persists a new trip.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	trip.Name = strings.TrimSpace(trip.Name)

	created, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// ListPaged returns one page of trips and the total count. Always non-nil.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and updates an existing trip.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	trip.Name = strings.TrimSpace(trip.Name)

	updated, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip by ID, then clears its round collection.
// The trip row goes first: if clearing fails, the orphaned rounds can be
// cleared again through the rounds endpoint, which does not require the trip.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if s.rounds != nil {
		if err := s.rounds.Clear(ctx, domain.TripOwner(id)); err != nil {
			return fmt.Errorf("service.TripService.Delete: clear rounds: %w", err)
		}
	}
	return nil
}

// validateTrip enforces rules common to Create and Update:
//   - Name must be non-empty after trimming.
//   - StartDate must be set.
//   - EndDate, if set, must not be before StartDate.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", domain.ErrValidation)
	}
	if trip.EndDate != nil && trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}
