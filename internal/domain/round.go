package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for round dates.
const DateLayout = "2006-01-02"

// Slope ratings outside this range are not issued by any rating authority.
const (
	MinSlopeRating = 55
	MaxSlopeRating = 155
)

// Round is one played round of golf.
// The JSON field names are the stored wire format: collections are persisted
// as JSON arrays of Round, so renaming a tag orphans existing data.
//
// AdjustedGrossScore is already capped per hole by the caller; this package
// never recomputes it.
type Round struct {
	AdjustedGrossScore float64 `json:"adjustedGrossScore"`
	CourseRating       float64 `json:"courseRating"`
	SlopeRating        int     `json:"slopeRating"`
	Date               string  `json:"date"`
}

// Validate enforces the rules a round must pass before it is persisted.
// The returned error wraps ErrValidation and names the first offending field.
//
// The store itself never calls Validate: data already persisted is read back
// as-is, so the calculator must tolerate anything that predates these rules.
func (r Round) Validate() error {
	if r.AdjustedGrossScore <= 0 {
		return fmt.Errorf("%w: adjustedGrossScore must be positive", ErrValidation)
	}
	if r.CourseRating <= 0 {
		return fmt.Errorf("%w: courseRating must be positive", ErrValidation)
	}
	if r.SlopeRating < MinSlopeRating || r.SlopeRating > MaxSlopeRating {
		return fmt.Errorf("%w: slopeRating must be between %d and %d", ErrValidation, MinSlopeRating, MaxSlopeRating)
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", ErrValidation)
	}
	return nil
}

// HandicapIndex is the result of recomputing an owner's index.
// Value is nil when the owner has no rounds; a nil index is "unavailable",
// which is different from an index of 0.0.
type HandicapIndex struct {
	Owner        OwnerKey
	Value        *float64
	RoundsStored int
	RoundsUsed   int
}
