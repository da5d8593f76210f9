package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/golf-trips/internal/domain"
)

// CourseRepo defines the persistence operations for Courses.
// Every single-course operation is scoped by tripID so one trip can never
// read or modify another trip's courses.
type CourseRepo interface {
	// Create inserts a new course and returns the persisted record.
	Create(ctx context.Context, course domain.Course) (domain.Course, error)

	// GetByID returns domain.ErrNotFound if no course with that ID exists
	// under tripID.
	GetByID(ctx context.Context, tripID, courseID uuid.UUID) (domain.Course, error)

	// ListByTripID returns all courses for a trip, earliest tee time first.
	// Courses without a tee time sort last, in creation order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Course, error)

	// ListByTripIDPaged returns one page of ListByTripID plus the total count.
	ListByTripIDPaged(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Course, int64, error)

	// Update overwrites the mutable fields of a course scoped to its TripID.
	// Returns domain.ErrNotFound if no such course exists under that trip.
	Update(ctx context.Context, course domain.Course) (domain.Course, error)

	// Delete returns domain.ErrNotFound if no such course exists under tripID.
	Delete(ctx context.Context, tripID, courseID uuid.UUID) error
}

const courseColumns = `id, trip_id, name, location, place_id, tee_time, par,
	course_rating, slope_rating, notes, created_at, updated_at`

const courseOrder = `ORDER BY tee_time ASC NULLS LAST, created_at, id`

type pgCourseRepo struct {
	db db
}

// NewCourseRepo constructs a CourseRepo backed by the provided db connection.
func NewCourseRepo(db db) CourseRepo {
	return &pgCourseRepo{db: db}
}

func (r *pgCourseRepo) Create(ctx context.Context, course domain.Course) (domain.Course, error) {
	q := `
		INSERT INTO courses (trip_id, name, location, place_id, tee_time, par, course_rating, slope_rating, notes)
		VALUES (@trip_id, @name, @location, @place_id, @tee_time, @par, @course_rating, @slope_rating, @notes)
		RETURNING ` + courseColumns

	got, err := scanCourse(r.db.QueryRow(ctx, q, courseArgs(course)))
	if err != nil {
		return domain.Course{}, fmt.Errorf("repo.CourseRepo.Create: %w", err)
	}
	return got, nil
}

func (r *pgCourseRepo) GetByID(ctx context.Context, tripID, courseID uuid.UUID) (domain.Course, error) {
	q := `SELECT ` + courseColumns + ` FROM courses WHERE id = @id AND trip_id = @trip_id`

	got, err := scanCourse(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": courseID, "trip_id": tripID}))
	if err != nil {
		return domain.Course{}, fmt.Errorf("repo.CourseRepo.GetByID: %w", err)
	}
	return got, nil
}

func (r *pgCourseRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Course, error) {
	q := `SELECT ` + courseColumns + ` FROM courses WHERE trip_id = @trip_id ` + courseOrder

	courses, err := r.queryCourses(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.CourseRepo.ListByTripID: %w", err)
	}
	return courses, nil
}

func (r *pgCourseRepo) ListByTripIDPaged(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Course, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM courses WHERE trip_id = @trip_id`,
		pgx.NamedArgs{"trip_id": tripID}).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.CourseRepo.ListByTripIDPaged: count: %w", err)
	}

	q := `SELECT ` + courseColumns + ` FROM courses WHERE trip_id = @trip_id ` + courseOrder + `
		LIMIT @limit OFFSET @offset`

	courses, err := r.queryCourses(ctx, q, pgx.NamedArgs{
		"trip_id": tripID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.CourseRepo.ListByTripIDPaged: %w", err)
	}
	return courses, total, nil
}

func (r *pgCourseRepo) Update(ctx context.Context, course domain.Course) (domain.Course, error) {
	q := `
		UPDATE courses
		SET name          = @name,
		    location      = @location,
		    place_id      = @place_id,
		    tee_time      = @tee_time,
		    par           = @par,
		    course_rating = @course_rating,
		    slope_rating  = @slope_rating,
		    notes         = @notes,
		    updated_at    = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + courseColumns

	args := courseArgs(course)
	args["id"] = course.ID

	got, err := scanCourse(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Course{}, fmt.Errorf("repo.CourseRepo.Update: %w", err)
	}
	return got, nil
}

func (r *pgCourseRepo) Delete(ctx context.Context, tripID, courseID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = @id AND trip_id = @trip_id`,
		pgx.NamedArgs{"id": courseID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.CourseRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CourseRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgCourseRepo) queryCourses(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Course, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return courses, nil
}

func courseArgs(c domain.Course) pgx.NamedArgs {
	return pgx.NamedArgs{
		"trip_id":       c.TripID,
		"name":          c.Name,
		"location":      c.Location,
		"place_id":      c.PlaceID,
		"tee_time":      c.TeeTime,
		"par":           c.Par,
		"course_rating": c.CourseRating,
		"slope_rating":  c.SlopeRating,
		"notes":         c.Notes,
	}
}

func scanCourse(s scanner) (domain.Course, error) {
	var (
		c            domain.Course
		id, tripID   pgtype.UUID
		teeTime      pgtype.Timestamptz
		par          pgtype.Int4
		courseRating pgtype.Float8
		slopeRating  pgtype.Int4
	)

	err := s.Scan(&id, &tripID, &c.Name, &c.Location, &c.PlaceID, &teeTime, &par,
		&courseRating, &slopeRating, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Course{}, domain.ErrNotFound
		}
		return domain.Course{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.TripID = uuid.UUID(tripID.Bytes)
	if teeTime.Valid {
		tt := teeTime.Time
		c.TeeTime = &tt
	}
	if par.Valid {
		v := int(par.Int32)
		c.Par = &v
	}
	if courseRating.Valid {
		v := courseRating.Float64
		c.CourseRating = &v
	}
	if slopeRating.Valid {
		v := int(slopeRating.Int32)
		c.SlopeRating = &v
	}
	return c, nil
}
