package domain

import "errors"

// Sentinel errors shared by repos and services. Wrap them with
// fmt.Errorf("...: %w", err); handlers match with errors.Is.
var (
	// ErrNotFound means the trip, course or trip owner does not exist (404).
	ErrNotFound = errors.New("not found")

	// ErrValidation means input broke a business rule (422). The wrapping
	// message names the offending field.
	ErrValidation = errors.New("validation error")
)
