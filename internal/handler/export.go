package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/pkordes/golf-trips/internal/domain"
)

// csvHeaders is the first row of every CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "trip_start_date", "trip_end_date",
	"trip_handicap_index", "trip_rounds",
	"course_name", "course_location", "tee_time", "par",
	"course_rating", "slope_rating",
}

// ExportRow is one row of the JSON export.
type ExportRow struct {
	TripId            string     `json:"trip_id"`
	TripName          string     `json:"trip_name"`
	TripStartDate     string     `json:"trip_start_date"`
	TripEndDate       *string    `json:"trip_end_date,omitempty"`
	TripHandicapIndex *float64   `json:"trip_handicap_index"`
	TripRounds        int        `json:"trip_rounds"`
	CourseName        *string    `json:"course_name,omitempty"`
	CourseLocation    *string    `json:"course_location,omitempty"`
	TeeTime           *time.Time `json:"tee_time,omitempty"`
	Par               *int       `json:"par,omitempty"`
	CourseRating      *float64   `json:"course_rating,omitempty"`
	SlopeRating       *int       `json:"slope_rating,omitempty"`
}

// GetExport handles GET /export. ?format=csv returns text/csv; JSON otherwise.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", "format must be json or csv"))
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "not found")
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]ExportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, exportRowToResponse(row))
	}
	writeJSON(w, http.StatusOK, out)
}

func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	_ = cw.Write(csvHeaders)
	for _, row := range rows {
		_ = cw.Write(exportRowToRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="golf-trips.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func exportRowToResponse(r domain.ExportRow) ExportRow {
	return ExportRow{
		TripId:            r.TripID,
		TripName:          r.TripName,
		TripStartDate:     r.TripStartDate,
		TripEndDate:       nilIfEmpty(r.TripEndDate),
		TripHandicapIndex: r.TripHandicap,
		TripRounds:        r.TripRounds,
		CourseName:        nilIfEmpty(r.CourseName),
		CourseLocation:    nilIfEmpty(r.CourseLocation),
		TeeTime:           r.TeeTime,
		Par:               r.Par,
		CourseRating:      r.CourseRating,
		SlopeRating:       r.SlopeRating,
	}
}

// exportRowToRecord flattens a row for CSV. Absent optional values are empty
// strings; times are RFC 3339 in UTC.
func exportRowToRecord(r domain.ExportRow) []string {
	return []string{
		r.TripID,
		r.TripName,
		r.TripStartDate,
		r.TripEndDate,
		formatOptionalFloat(r.TripHandicap),
		strconv.Itoa(r.TripRounds),
		r.CourseName,
		r.CourseLocation,
		formatOptionalTime(r.TeeTime),
		formatOptionalInt(r.Par),
		formatOptionalFloat(r.CourseRating),
		formatOptionalInt(r.SlopeRating),
	}
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
