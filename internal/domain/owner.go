package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OwnerKey identifies a round collection.
// It is always "<kind>:<id>", where kind is "player" or "trip".
type OwnerKey string

const (
	OwnerKindPlayer = "player"
	OwnerKindTrip   = "trip"
)

const maxPlayerIDLen = 128

// PlayerOwner returns the owner key for a player's personal collection.
func PlayerOwner(playerID string) OwnerKey {
	return OwnerKey(OwnerKindPlayer + ":" + playerID)
}

// TripOwner returns the owner key for a trip's shared collection.
func TripOwner(tripID uuid.UUID) OwnerKey {
	return OwnerKey(OwnerKindTrip + ":" + tripID.String())
}

// ParseOwnerKey validates s and returns it as an OwnerKey.
// Trip ids must be UUIDs; player ids are free-form but limited to letters,
// digits, and . _ - @ so they are safe inside storage keys and URLs.
// Trip keys are normalised to the canonical lowercase UUID form.
func ParseOwnerKey(s string) (OwnerKey, error) {
	kind, id, ok := strings.Cut(s, ":")
	if !ok || id == "" {
		return "", fmt.Errorf("%w: owner must be formatted as player:<id> or trip:<uuid>", ErrValidation)
	}

	switch kind {
	case OwnerKindTrip:
		tripID, err := uuid.Parse(id)
		if err != nil {
			return "", fmt.Errorf("%w: trip owner id must be a UUID", ErrValidation)
		}
		return TripOwner(tripID), nil
	case OwnerKindPlayer:
		if len(id) > maxPlayerIDLen {
			return "", fmt.Errorf("%w: player id must be at most %d characters", ErrValidation, maxPlayerIDLen)
		}
		for _, c := range id {
			if !isPlayerIDRune(c) {
				return "", fmt.Errorf("%w: player id contains invalid character %q", ErrValidation, c)
			}
		}
		return PlayerOwner(id), nil
	default:
		return "", fmt.Errorf("%w: unknown owner kind %q", ErrValidation, kind)
	}
}

// Kind returns "player" or "trip".
func (k OwnerKey) Kind() string {
	kind, _, _ := strings.Cut(string(k), ":")
	return kind
}

// TripID returns the trip UUID for trip owners. ok is false for any other kind.
func (k OwnerKey) TripID() (id uuid.UUID, ok bool) {
	kind, rest, _ := strings.Cut(string(k), ":")
	if kind != OwnerKindTrip {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(rest)
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

func (k OwnerKey) String() string { return string(k) }

func isPlayerIDRune(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.', c == '_', c == '-', c == '@':
		return true
	}
	return false
}
