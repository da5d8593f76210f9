package domain

import (
	"time"

	"github.com/google/uuid"
)

// Course is a golf course attached to a trip.
// PlaceID is the identifier handed out by the place-search provider the client
// used to discover the course; the backend stores it verbatim and never calls
// the provider itself.
//
// Par, CourseRating and SlopeRating are optional. When set, they describe the
// tees the group plans to play and can be copied into rounds by the client.
type Course struct {
	ID           uuid.UUID
	TripID       uuid.UUID
	Name         string
	Location     string
	PlaceID      string
	TeeTime      *time.Time
	Par          *int
	CourseRating *float64
	SlopeRating  *int
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
