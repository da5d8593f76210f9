package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/golf-trips/internal/domain"
)

// writeJSON encodes v as the response body with the given status.
// v is marshalled before the status line goes out, so a value that cannot be
// encoded (a non-finite float) becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorBody("internal_error", "internal server error"))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// decodeJSON reads exactly one JSON value from the request body into dst.
// On failure it writes the error response itself and returns false:
// 413 for oversize bodies, 422 naming the field for type mismatches, and
// 400 for anything else unparsable.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errors.New("body must contain a single JSON value")
	}
	if err == nil {
		return true
	}

	var (
		maxErr  *http.MaxBytesError
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &maxErr):
		writeJSON(w, http.StatusRequestEntityTooLarge,
			errorBody("payload_too_large", fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit)))
	case errors.As(err, &typeErr) && typeErr.Field != "":
		writeJSON(w, http.StatusUnprocessableEntity,
			errorBody("validation_error", fmt.Sprintf("%s must be %s", typeErr.Field, jsonKind(typeErr.Type.Kind().String()))))
	case errors.Is(err, io.EOF):
		writeJSON(w, http.StatusBadRequest, badRequestBody("request body is required"))
	default:
		writeJSON(w, http.StatusBadRequest, badRequestBody("malformed JSON body: "+err.Error()))
	}
	return false
}

// jsonKind names a Go kind the way a JSON client thinks of it.
func jsonKind(goKind string) string {
	switch goKind {
	case "int", "int32", "int64":
		return "an integer"
	case "float32", "float64":
		return "a number"
	case "string":
		return "a string"
	default:
		return "a " + goKind
	}
}

// uuidParam parses the named chi path parameter. On failure it writes a 400
// and returns false.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, badRequestBody(name+" must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// paginationParams reads ?page= and ?limit=. Absent values fall back to the
// domain defaults; non-integers are a 400.
func paginationParams(w http.ResponseWriter, r *http.Request) (domain.PaginationParams, bool) {
	q := r.URL.Query()
	var ints [2]*int
	for i, name := range []string{"page", "limit"} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, badRequestBody(name+" must be an integer"))
			return domain.PaginationParams{}, false
		}
		ints[i] = &v
	}
	return domain.NewPaginationParams(ints[0], ints[1]), true
}

// derefString safely dereferences a *string, returning "" when nil.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nilIfEmpty maps "" to nil so optional response fields are omitted.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
