package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/internal/repo"
)

type courseRepos struct {
	trips   repo.TripRepo
	courses repo.CourseRepo
}

func newCourseRepos(t *testing.T) courseRepos {
	t.Helper()
	tx := newTestTx(t)
	return courseRepos{trips: repo.NewTripRepo(tx), courses: repo.NewCourseRepo(tx)}
}

func (r courseRepos) seedTrip(t *testing.T) domain.Trip {
	t.Helper()
	trip, err := r.trips.Create(context.Background(), tripFixture())
	require.NoError(t, err)
	return trip
}

func courseFixture(tripID uuid.UUID) domain.Course {
	tee := time.Date(2025, 6, 2, 8, 10, 0, 0, time.UTC)
	return domain.Course{
		TripID:       tripID,
		Name:         "Pinehurst No. 2",
		Location:     "Pinehurst, NC",
		PlaceID:      "ChIJ-pinehurst",
		TeeTime:      &tee,
		Par:          ptr(72),
		CourseRating: ptr(76.0),
		SlopeRating:  ptr(145),
	}
}

func TestCourseRepo_Create(t *testing.T) {
	r := newCourseRepos(t)
	trip := r.seedTrip(t)

	input := courseFixture(trip.ID)
	got, err := r.courses.Create(context.Background(), input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.PlaceID, got.PlaceID)
	require.NotNil(t, got.TeeTime)
	assert.True(t, got.TeeTime.Equal(*input.TeeTime))
	assert.Equal(t, input.Par, got.Par)
	assert.Equal(t, input.CourseRating, got.CourseRating)
	assert.Equal(t, input.SlopeRating, got.SlopeRating)
}

func TestCourseRepo_Create_OptionalFieldsNull(t *testing.T) {
	r := newCourseRepos(t)
	trip := r.seedTrip(t)

	got, err := r.courses.Create(context.Background(), domain.Course{TripID: trip.ID, Name: "Muni"})

	require.NoError(t, err)
	assert.Nil(t, got.TeeTime)
	assert.Nil(t, got.Par)
	assert.Nil(t, got.CourseRating)
	assert.Nil(t, got.SlopeRating)
}

func TestCourseRepo_GetByID_WrongTrip(t *testing.T) {
	r := newCourseRepos(t)
	ctx := context.Background()
	trip := r.seedTrip(t)
	other := r.seedTrip(t)

	created, err := r.courses.Create(ctx, courseFixture(trip.ID))
	require.NoError(t, err)

	_, err = r.courses.GetByID(ctx, other.ID, created.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCourseRepo_ListByTripID_TeeTimeOrder(t *testing.T) {
	r := newCourseRepos(t)
	ctx := context.Background()
	trip := r.seedTrip(t)

	late := courseFixture(trip.ID)
	late.Name = "Afternoon"
	late.TeeTime = ptr(late.TeeTime.Add(6 * time.Hour))
	early := courseFixture(trip.ID)
	early.Name = "Morning"
	unscheduled := courseFixture(trip.ID)
	unscheduled.Name = "Maybe"
	unscheduled.TeeTime = nil

	for _, c := range []domain.Course{unscheduled, late, early} {
		_, err := r.courses.Create(ctx, c)
		require.NoError(t, err)
	}

	got, err := r.courses.ListByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Morning", "Afternoon", "Maybe"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestCourseRepo_ListByTripIDPaged(t *testing.T) {
	r := newCourseRepos(t)
	ctx := context.Background()
	trip := r.seedTrip(t)
	for range 3 {
		_, err := r.courses.Create(ctx, courseFixture(trip.ID))
		require.NoError(t, err)
	}

	got, total, err := r.courses.ListByTripIDPaged(ctx, trip.ID, domain.PaginationParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, got, 1)
}

func TestCourseRepo_Update(t *testing.T) {
	r := newCourseRepos(t)
	ctx := context.Background()
	trip := r.seedTrip(t)

	created, err := r.courses.Create(ctx, courseFixture(trip.ID))
	require.NoError(t, err)

	created.Name = "Pinehurst No. 4"
	created.SlopeRating = nil

	updated, err := r.courses.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, "Pinehurst No. 4", updated.Name)
	assert.Nil(t, updated.SlopeRating)
}

func TestCourseRepo_Delete(t *testing.T) {
	r := newCourseRepos(t)
	ctx := context.Background()
	trip := r.seedTrip(t)

	created, err := r.courses.Create(ctx, courseFixture(trip.ID))
	require.NoError(t, err)

	require.NoError(t, r.courses.Delete(ctx, trip.ID, created.ID))
	assert.ErrorIs(t, r.courses.Delete(ctx, trip.ID, created.ID), domain.ErrNotFound)
}

func TestCourseRepo_DeletedWithTrip(t *testing.T) {
	r := newCourseRepos(t)
	ctx := context.Background()
	trip := r.seedTrip(t)

	created, err := r.courses.Create(ctx, courseFixture(trip.ID))
	require.NoError(t, err)

	require.NoError(t, r.trips.Delete(ctx, trip.ID))

	_, err = r.courses.GetByID(ctx, trip.ID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
