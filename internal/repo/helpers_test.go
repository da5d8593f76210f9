package repo_test

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/testutil"
)

// newTestTx returns a transaction rolled back when the test finishes.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	return testutil.NewTx(t)
}

func tripFixture() domain.Trip {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		Name:      "Pinehurst Weekend",
		StartDate: start,
		EndDate:   &end,
		Notes:     "Bring rain gear",
	}
}

func ptr[T any](v T) *T { return &v }
