package service

import (
	"context"
	"fmt"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/internal/repo"
)

// ExportService assembles a flat export of all trips and their courses,
// annotated with each trip's handicap index.
type ExportService struct {
	trips   repo.TripRepo
	courses repo.CourseRepo
	rounds  RoundStore
}

// NewExportService constructs an ExportService backed by the provided stores.
func NewExportService(trips repo.TripRepo, courses repo.CourseRepo, rounds RoundStore) *ExportService {
	return &ExportService{trips: trips, courses: courses, rounds: rounds}
}

// Export returns one row per course across all trips, trips in List order.
// Trips with no courses contribute one row with empty course fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, trip := range trips {
		courses, err := s.courses.ListByTripID(ctx, trip.ID)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: courses for %s: %w", trip.ID, err)
		}
		rounds, err := s.rounds.GetAll(ctx, domain.TripOwner(trip.ID))
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: rounds for %s: %w", trip.ID, err)
		}

		base := tripExportRow(trip, indexFor(domain.TripOwner(trip.ID), rounds))
		if len(courses) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, c := range courses {
			row := base
			row.CourseName = c.Name
			row.CourseLocation = c.Location
			row.TeeTime = c.TeeTime
			row.Par = c.Par
			row.CourseRating = c.CourseRating
			row.SlopeRating = c.SlopeRating
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func tripExportRow(trip domain.Trip, idx domain.HandicapIndex) domain.ExportRow {
	row := domain.ExportRow{
		TripID:        trip.ID.String(),
		TripName:      trip.Name,
		TripStartDate: trip.StartDate.Format(domain.DateLayout),
		TripHandicap:  idx.Value,
		TripRounds:    idx.RoundsStored,
	}
	if trip.EndDate != nil {
		row.TripEndDate = trip.EndDate.Format(domain.DateLayout)
	}
	return row
}
