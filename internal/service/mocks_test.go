package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/internal/repo"
	"github.com/pkordes/golf-trips/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones the test needs.
type mockTripRepo struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list      func(ctx context.Context) ([]domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

// existingTrips returns a mockTripRepo whose GetByID succeeds for every id.
func existingTrips() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return domain.Trip{ID: id}, nil
		},
	}
}

// missingTrips returns a mockTripRepo whose GetByID always reports ErrNotFound.
func missingTrips() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
}

// mockCourseRepo is a hand-written test double for repo.CourseRepo.
type mockCourseRepo struct {
	create            func(ctx context.Context, c domain.Course) (domain.Course, error)
	getByID           func(ctx context.Context, tripID, courseID uuid.UUID) (domain.Course, error)
	listByTripID      func(ctx context.Context, tripID uuid.UUID) ([]domain.Course, error)
	listByTripIDPaged func(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Course, int64, error)
	update            func(ctx context.Context, c domain.Course) (domain.Course, error)
	delete            func(ctx context.Context, tripID, courseID uuid.UUID) error
}

func (m *mockCourseRepo) Create(ctx context.Context, c domain.Course) (domain.Course, error) {
	return m.create(ctx, c)
}
func (m *mockCourseRepo) GetByID(ctx context.Context, tripID, courseID uuid.UUID) (domain.Course, error) {
	return m.getByID(ctx, tripID, courseID)
}
func (m *mockCourseRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Course, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockCourseRepo) ListByTripIDPaged(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Course, int64, error) {
	return m.listByTripIDPaged(ctx, tripID, p)
}
func (m *mockCourseRepo) Update(ctx context.Context, c domain.Course) (domain.Course, error) {
	return m.update(ctx, c)
}
func (m *mockCourseRepo) Delete(ctx context.Context, tripID, courseID uuid.UUID) error {
	return m.delete(ctx, tripID, courseID)
}

var _ repo.CourseRepo = (*mockCourseRepo)(nil)

// fakeRoundStore is an in-memory service.RoundStore that records calls.
type fakeRoundStore struct {
	mu      sync.Mutex
	rounds  map[domain.OwnerKey][]domain.Round
	cleared []domain.OwnerKey
	err     error
}

func newFakeRoundStore() *fakeRoundStore {
	return &fakeRoundStore{rounds: make(map[domain.OwnerKey][]domain.Round)}
}

func (f *fakeRoundStore) Save(_ context.Context, owner domain.OwnerKey, r domain.Round) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.rounds[owner] = append(f.rounds[owner], r)
	return nil
}

func (f *fakeRoundStore) GetAll(_ context.Context, owner domain.OwnerKey) ([]domain.Round, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Round{}, f.rounds[owner]...), nil
}

func (f *fakeRoundStore) Clear(_ context.Context, owner domain.OwnerKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.rounds, owner)
	f.cleared = append(f.cleared, owner)
	return nil
}

var _ service.RoundStore = (*fakeRoundStore)(nil)

func ptr[T any](v T) *T { return &v }
