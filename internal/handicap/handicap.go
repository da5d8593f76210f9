// Package handicap computes handicap differentials and indexes from rounds.
// Everything here is pure arithmetic: no I/O, no logging, no validation.
// Callers validate rounds before they are stored (see domain.Round.Validate);
// this package accepts whatever history it is handed.
package handicap

import (
	"math"
	"sort"

	"github.com/pkordes/golf-trips/internal/domain"
)

// standardSlope is the slope rating of a course of average difficulty.
const standardSlope = 113

// MaxCounted is the largest number of differentials averaged into an index.
const MaxCounted = 8

// Differential normalises a round's score against the difficulty of the tees
// it was played from. Negative values mean the player beat the course rating.
// The result is only finite for Scorable rounds.
func Differential(r domain.Round) float64 {
	return ((r.AdjustedGrossScore - r.CourseRating) * standardSlope) / float64(r.SlopeRating)
}

// Scorable reports whether r has a differential at all. A round with no
// positive slope rating would divide by zero.
func Scorable(r domain.Round) bool {
	return r.SlopeRating > 0
}

// Index averages the lowest min(MaxCounted, n) differentials of the n
// scorable rounds and rounds the result half-up to one decimal place.
// Unscorable rounds are skipped. ok is false when nothing is left: an index
// is unavailable, not zero.
//
// Ties between equal differentials keep their insertion order.
func Index(rounds []domain.Round) (index float64, ok bool) {
	diffs := make([]float64, 0, len(rounds))
	for _, r := range rounds {
		if Scorable(r) {
			diffs = append(diffs, Differential(r))
		}
	}
	if len(diffs) == 0 {
		return 0, false
	}
	sort.SliceStable(diffs, func(i, j int) bool { return diffs[i] < diffs[j] })

	n := Counted(len(diffs))
	var sum float64
	for _, d := range diffs[:n] {
		sum += d
	}
	return RoundTenth(sum / float64(n)), true
}

// Counted returns how many differentials contribute to an index computed
// from total rounds.
func Counted(total int) int {
	return min(total, MaxCounted)
}

// RoundTenth rounds x half-up at the tenths digit.
func RoundTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
