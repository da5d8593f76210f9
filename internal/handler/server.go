// Package handler implements the HTTP handlers for the golf trips API.
// All handlers are methods on Server. They are split into resource files
// (trip.go, course.go, round.go, ...) but share the Server's dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/golf-trips/internal/domain"
)

// TripServicer defines the trip operations the handlers depend on.
// Interfaces live here, in the consumer, so tests can inject function-field
// mocks without a database.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CourseServicer defines the course operations the handlers depend on.
type CourseServicer interface {
	Create(ctx context.Context, course domain.Course) (domain.Course, error)
	GetByID(ctx context.Context, tripID, courseID uuid.UUID) (domain.Course, error)
	ListByTripIDPaged(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Course, int64, error)
	Update(ctx context.Context, course domain.Course) (domain.Course, error)
	Delete(ctx context.Context, tripID, courseID uuid.UUID) error
}

// RoundServicer defines the round and handicap operations.
type RoundServicer interface {
	Save(ctx context.Context, owner domain.OwnerKey, round domain.Round) error
	List(ctx context.Context, owner domain.OwnerKey) ([]domain.Round, error)
	Clear(ctx context.Context, owner domain.OwnerKey) error
	HandicapIndex(ctx context.Context, owner domain.OwnerKey) (domain.HandicapIndex, error)
}

// Exporter builds the flat export.
type Exporter interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Deps carries the Server's collaborators. Any service may be nil when the
// caller only exercises the other routes (health checks, focused tests).
type Deps struct {
	Trips   TripServicer
	Courses CourseServicer
	Rounds  RoundServicer
	Export  Exporter
	Logger  *slog.Logger
}

// Server serves every API endpoint.
type Server struct {
	trips   TripServicer
	courses CourseServicer
	rounds  RoundServicer
	export  Exporter
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		trips:   d.Trips,
		courses: d.Courses,
		rounds:  d.Rounds,
		export:  d.Export,
		log:     logger,
	}
}

// Routes returns the API router. Mount it at "/"; cross-cutting middleware
// (request IDs, logging, CORS) is the caller's job.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/export", s.GetExport)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)
		r.Route("/{tripId}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Route("/courses", func(r chi.Router) {
				r.Post("/", s.CreateCourse)
				r.Get("/", s.ListCourses)
				r.Get("/{courseId}", s.GetCourse)
				r.Put("/{courseId}", s.UpdateCourse)
				r.Delete("/{courseId}", s.DeleteCourse)
			})
		})
	})

	r.Route("/owners/{owner}", func(r chi.Router) {
		r.Post("/rounds", s.SaveRound)
		r.Get("/rounds", s.ListRounds)
		r.Delete("/rounds", s.ClearRounds)
		r.Get("/handicap", s.GetHandicap)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", r.Method+" not allowed"))
	})
	return r
}
