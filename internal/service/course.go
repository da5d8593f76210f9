package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/internal/repo"
)

// Par bounds cover a nine-hole executive course up to the longest
// championship layouts.
const (
	minPar = 27
	maxPar = 80
)

// CourseService implements business logic for courses attached to trips.
// It holds the trips repo because attaching a course requires the parent
// trip to exist.
type CourseService struct {
	trips   repo.TripRepo
	courses repo.CourseRepo
}

// NewCourseService constructs a CourseService backed by the provided repos.
func NewCourseService(trips repo.TripRepo, courses repo.CourseRepo) *CourseService {
	return &CourseService{trips: trips, courses: courses}
}

// Create verifies the parent trip exists, validates the course, then persists.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrValidation if the course breaks a rule.
func (s *CourseService) Create(ctx context.Context, course domain.Course) (domain.Course, error) {
	if _, err := s.trips.GetByID(ctx, course.TripID); err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.Create: %w", err)
	}
	if err := validateCourse(course); err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.Create: %w", err)
	}
	course.Name = strings.TrimSpace(course.Name)

	created, err := s.courses.Create(ctx, course)
	if err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single course scoped to tripID.
func (s *CourseService) GetByID(ctx context.Context, tripID, courseID uuid.UUID) (domain.Course, error) {
	course, err := s.courses.GetByID(ctx, tripID, courseID)
	if err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.GetByID: %w", err)
	}
	return course, nil
}

// ListByTripIDPaged returns one page of a trip's courses and the total count.
// Returns domain.ErrNotFound when the trip itself does not exist, so an empty
// page always means "trip with no courses".
func (s *CourseService) ListByTripIDPaged(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Course, int64, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, 0, fmt.Errorf("service.CourseService.ListByTripIDPaged: %w", err)
	}
	courses, total, err := s.courses.ListByTripIDPaged(ctx, tripID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.CourseService.ListByTripIDPaged: %w", err)
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, total, nil
}

// Update validates and persists changes to an existing course.
func (s *CourseService) Update(ctx context.Context, course domain.Course) (domain.Course, error) {
	if err := validateCourse(course); err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.Update: %w", err)
	}
	course.Name = strings.TrimSpace(course.Name)

	updated, err := s.courses.Update(ctx, course)
	if err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a course scoped to tripID.
func (s *CourseService) Delete(ctx context.Context, tripID, courseID uuid.UUID) error {
	if err := s.courses.Delete(ctx, tripID, courseID); err != nil {
		return fmt.Errorf("service.CourseService.Delete: %w", err)
	}
	return nil
}

func validateCourse(c domain.Course) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if c.Par != nil && (*c.Par < minPar || *c.Par > maxPar) {
		return fmt.Errorf("%w: par must be between %d and %d", domain.ErrValidation, minPar, maxPar)
	}
	if c.CourseRating != nil && *c.CourseRating <= 0 {
		return fmt.Errorf("%w: course_rating must be positive", domain.ErrValidation)
	}
	if c.SlopeRating != nil && (*c.SlopeRating < domain.MinSlopeRating || *c.SlopeRating > domain.MaxSlopeRating) {
		return fmt.Errorf("%w: slope_rating must be between %d and %d",
			domain.ErrValidation, domain.MinSlopeRating, domain.MaxSlopeRating)
	}
	return nil
}
