package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

// mockCourseServicer is a test double for handler.CourseServicer.
type mockCourseServicer struct {
	create    func(ctx context.Context, c domain.Course) (domain.Course, error)
	getByID   func(ctx context.Context, tripID, courseID uuid.UUID) (domain.Course, error)
	listPaged func(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Course, int64, error)
	update    func(ctx context.Context, c domain.Course) (domain.Course, error)
	delete    func(ctx context.Context, tripID, courseID uuid.UUID) error
}

func (m *mockCourseServicer) Create(ctx context.Context, c domain.Course) (domain.Course, error) {
	return m.create(ctx, c)
}
func (m *mockCourseServicer) GetByID(ctx context.Context, tripID, courseID uuid.UUID) (domain.Course, error) {
	return m.getByID(ctx, tripID, courseID)
}
func (m *mockCourseServicer) ListByTripIDPaged(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Course, int64, error) {
	return m.listPaged(ctx, tripID, p)
}
func (m *mockCourseServicer) Update(ctx context.Context, c domain.Course) (domain.Course, error) {
	return m.update(ctx, c)
}
func (m *mockCourseServicer) Delete(ctx context.Context, tripID, courseID uuid.UUID) error {
	return m.delete(ctx, tripID, courseID)
}

var _ handler.CourseServicer = (*mockCourseServicer)(nil)

// mockRoundServicer is a test double for handler.RoundServicer.
type mockRoundServicer struct {
	save          func(ctx context.Context, owner domain.OwnerKey, r domain.Round) error
	list          func(ctx context.Context, owner domain.OwnerKey) ([]domain.Round, error)
	clear         func(ctx context.Context, owner domain.OwnerKey) error
	handicapIndex func(ctx context.Context, owner domain.OwnerKey) (domain.HandicapIndex, error)
}

func (m *mockRoundServicer) Save(ctx context.Context, owner domain.OwnerKey, r domain.Round) error {
	return m.save(ctx, owner, r)
}
func (m *mockRoundServicer) List(ctx context.Context, owner domain.OwnerKey) ([]domain.Round, error) {
	return m.list(ctx, owner)
}
func (m *mockRoundServicer) Clear(ctx context.Context, owner domain.OwnerKey) error {
	return m.clear(ctx, owner)
}
func (m *mockRoundServicer) HandicapIndex(ctx context.Context, owner domain.OwnerKey) (domain.HandicapIndex, error) {
	return m.handicapIndex(ctx, owner)
}

var _ handler.RoundServicer = (*mockRoundServicer)(nil)

// mockExporter is a test double for handler.Exporter.
type mockExporter struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExporter) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.Exporter = (*mockExporter)(nil)

// newHTTPHandler wires a Server with the given deps into its router,
// the same way main.go does in production minus the middleware stack.
func newHTTPHandler(d handler.Deps) http.Handler {
	return handler.NewServer(d).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body *bytes.Buffer) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func ptr[T any](v T) *T { return &v }
