package handler

import (
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/golf-trips/internal/domain"
)

// CourseRequest is the body of POST and PUT on courses.
// PlaceId is whatever id the client's place-search provider returned.
type CourseRequest struct {
	Name         string     `json:"name"`
	Location     *string    `json:"location,omitempty"`
	PlaceId      *string    `json:"place_id,omitempty"`
	TeeTime      *time.Time `json:"tee_time,omitempty"`
	Par          *int       `json:"par,omitempty"`
	CourseRating *float64   `json:"course_rating,omitempty"`
	SlopeRating  *int       `json:"slope_rating,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// Course is the API representation of a course attached to a trip.
type Course struct {
	Id           openapi_types.UUID `json:"id"`
	TripId       openapi_types.UUID `json:"trip_id"`
	Name         string             `json:"name"`
	Location     *string            `json:"location,omitempty"`
	PlaceId      *string            `json:"place_id,omitempty"`
	TeeTime      *time.Time         `json:"tee_time,omitempty"`
	Par          *int               `json:"par,omitempty"`
	CourseRating *float64           `json:"course_rating,omitempty"`
	SlopeRating  *int               `json:"slope_rating,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// CourseList is the body of GET /trips/{tripId}/courses.
type CourseList struct {
	Data       []Course   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CreateCourse handles POST /trips/{tripId}/courses.
func (s *Server) CreateCourse(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripId")
	if !ok {
		return
	}
	var body CourseRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	course := requestToCourse(body)
	course.TripID = tripID

	created, err := s.courses.Create(r.Context(), course)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, courseToResponse(created))
}

// ListCourses handles GET /trips/{tripId}/courses?page=&limit=.
func (s *Server) ListCourses(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripId")
	if !ok {
		return
	}
	params, ok := paginationParams(w, r)
	if !ok {
		return
	}

	courses, total, err := s.courses.ListByTripIDPaged(r.Context(), tripID, params)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	data := make([]Course, len(courses))
	for i, c := range courses {
		data[i] = courseToResponse(c)
	}
	writeJSON(w, http.StatusOK, CourseList{
		Data:       data,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: int(total)},
	})
}

// GetCourse handles GET /trips/{tripId}/courses/{courseId}.
func (s *Server) GetCourse(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripId")
	if !ok {
		return
	}
	courseID, ok := uuidParam(w, r, "courseId")
	if !ok {
		return
	}

	course, err := s.courses.GetByID(r.Context(), tripID, courseID)
	if err != nil {
		s.writeServiceError(w, r, err, "course not found")
		return
	}
	writeJSON(w, http.StatusOK, courseToResponse(course))
}

// UpdateCourse handles PUT /trips/{tripId}/courses/{courseId}.
func (s *Server) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripId")
	if !ok {
		return
	}
	courseID, ok := uuidParam(w, r, "courseId")
	if !ok {
		return
	}
	var body CourseRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	course := requestToCourse(body)
	course.ID = courseID
	course.TripID = tripID

	updated, err := s.courses.Update(r.Context(), course)
	if err != nil {
		s.writeServiceError(w, r, err, "course not found")
		return
	}
	writeJSON(w, http.StatusOK, courseToResponse(updated))
}

// DeleteCourse handles DELETE /trips/{tripId}/courses/{courseId}.
func (s *Server) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripId")
	if !ok {
		return
	}
	courseID, ok := uuidParam(w, r, "courseId")
	if !ok {
		return
	}

	if err := s.courses.Delete(r.Context(), tripID, courseID); err != nil {
		s.writeServiceError(w, r, err, "course not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func requestToCourse(body CourseRequest) domain.Course {
	return domain.Course{
		Name:         body.Name,
		Location:     derefString(body.Location),
		PlaceID:      derefString(body.PlaceId),
		TeeTime:      body.TeeTime,
		Par:          body.Par,
		CourseRating: body.CourseRating,
		SlopeRating:  body.SlopeRating,
		Notes:        derefString(body.Notes),
	}
}

func courseToResponse(c domain.Course) Course {
	return Course{
		Id:           c.ID,
		TripId:       c.TripID,
		Name:         c.Name,
		Location:     nilIfEmpty(c.Location),
		PlaceId:      nilIfEmpty(c.PlaceID),
		TeeTime:      c.TeeTime,
		Par:          c.Par,
		CourseRating: c.CourseRating,
		SlopeRating:  c.SlopeRating,
		Notes:        nilIfEmpty(c.Notes),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
