package domain

import "time"

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per course, with trip fields
// repeated for every course on that trip. Trips with no courses yield one row
// with zero values for all course fields.
type ExportRow struct {
	// Trip fields, repeated for every course on the trip.
	TripID        string
	TripName      string
	TripStartDate string // "2006-01-02" formatted date
	TripEndDate   string // empty string when nil

	// TripHandicap is the handicap index over the trip's own round
	// collection. Nil when the trip has no rounds.
	TripHandicap *float64
	TripRounds   int

	// Course fields, zero values when the trip has no courses.
	CourseName     string
	CourseLocation string
	TeeTime        *time.Time
	Par            *int
	CourseRating   *float64
	SlopeRating    *int
}
