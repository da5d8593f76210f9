package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/internal/handler"
)

func tripFixture() domain.Trip {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:        uuid.New(),
		Name:      "Pinehurst Weekend",
		StartDate: start,
		EndDate:   &end,
		Notes:     "bring rain gear",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func tripHandler(svc *mockTripServicer) http.Handler {
	return newHTTPHandler(handler.Deps{Trips: svc})
}

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	var got domain.Trip
	svc := &mockTripServicer{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			got = trip
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"name":       "Pinehurst Weekend",
		"start_date": "2025-06-01",
		"end_date":   "2025-06-05",
		"notes":      "bring rain gear",
	})
	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	rec := httptest.NewRecorder()

	tripHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Pinehurst Weekend", got.Name)
	assert.Equal(t, fixture.StartDate, got.StartDate)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, *fixture.EndDate, *got.EndDate)

	var resp handler.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.Id)
	assert.Equal(t, "2025-06-01", resp.StartDate.String())
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "bring rain gear", *resp.Notes)
}

func TestCreateTrip_422_ValidationError(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: name is required", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips", jsonBody(t, map[string]any{"start_date": "2025-06-01"}))
	rec := httptest.NewRecorder()

	tripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeError(t, rec.Body)
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Equal(t, "name is required", resp.Error.Message)
}

func TestCreateTrip_400_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()

	tripHandler(&mockTripServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec.Body).Error.Code)
}

func TestCreateTrip_400_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(""))
	rec := httptest.NewRecorder()

	tripHandler(&mockTripServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "request body is required", decodeError(t, rec.Body).Error.Message)
}

func TestCreateTrip_413_BodyTooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(`{"name":"`+strings.Repeat("x", 64)+`"}`))
	rec := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rec, req.Body, 16)

	tripHandler(&mockTripServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "payload_too_large", decodeError(t, rec.Body).Error.Code)
}

func TestCreateTrip_500_HidesDetail(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, errors.New("connection refused")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips", jsonBody(t, map[string]any{"name": "x", "start_date": "2025-06-01"}))
	rec := httptest.NewRecorder()

	tripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec.Body)
	assert.Equal(t, "internal_error", resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "connection refused")
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200_WithPagination(t *testing.T) {
	fixture := tripFixture()
	var gotParams domain.PaginationParams
	svc := &mockTripServicer{
		listPaged: func(_ context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			gotParams = p
			return []domain.Trip{fixture}, 41, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips?page=2&limit=20", nil)
	rec := httptest.NewRecorder()

	tripHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 20}, gotParams)

	var resp handler.TripList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, fixture.ID, resp.Data[0].Id)
	assert.Equal(t, handler.Pagination{Page: 2, Limit: 20, Total: 41}, resp.Pagination)
}

func TestListTrips_200_EmptyIsArray(t *testing.T) {
	svc := &mockTripServicer{
		listPaged: func(_ context.Context, _ domain.PaginationParams) ([]domain.Trip, int64, error) {
			return []domain.Trip{}, 0, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	tripHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListTrips_400_BadLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trips?limit=ten", nil)
	rec := httptest.NewRecorder()

	tripHandler(&mockTripServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "limit must be an integer", decodeError(t, rec.Body).Error.Message)
}

// ---- GET /trips/{tripId} ---------------------------------------------------

func TestGetTrip_200(t *testing.T) {
	fixture := tripFixture()
	svc := &mockTripServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			require.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()

	tripHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.Name, resp.Name)
	require.NotNil(t, resp.EndDate)
	assert.Equal(t, "2025-06-05", resp.EndDate.String())
}

func TestGetTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	tripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip not found", decodeError(t, rec.Body).Error.Message)
}

func TestGetTrip_400_InvalidUUID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trips/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	tripHandler(&mockTripServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- PUT /trips/{tripId} ---------------------------------------------------

func TestUpdateTrip_200_UsesPathID(t *testing.T) {
	fixture := tripFixture()
	svc := &mockTripServicer{
		update: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			assert.Equal(t, fixture.ID, trip.ID)
			assert.Nil(t, trip.EndDate)
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{"name": "Renamed", "start_date": "2025-06-01"})
	req := httptest.NewRequest(http.MethodPut, "/trips/"+fixture.ID.String(), body)
	rec := httptest.NewRecorder()

	tripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ---- DELETE /trips/{tripId} ------------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	id := uuid.New()
	svc := &mockTripServicer{
		delete: func(_ context.Context, got uuid.UUID) error {
			assert.Equal(t, id, got)
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+id.String(), nil)
	rec := httptest.NewRecorder()

	tripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	tripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
