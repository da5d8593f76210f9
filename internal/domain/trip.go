// Package domain contains the core data types for the golf trips application.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (kv, roundstore, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single golf trip from start to finish.
// A trip is the top-level aggregate; courses belong to a trip, and the trip
// can own its own round collection under the "trip:<id>" owner key.
type Trip struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"` // nil when the trip is open-ended
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
