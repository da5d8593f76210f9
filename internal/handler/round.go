package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/internal/handicap"
)

// RoundRequest is the body of POST /owners/{owner}/rounds.
// Every field is a pointer so a missing field can be told apart from zero.
type RoundRequest struct {
	AdjustedGrossScore *float64 `json:"adjustedGrossScore"`
	CourseRating       *float64 `json:"courseRating"`
	SlopeRating        *int     `json:"slopeRating"`
	Date               *string  `json:"date"`
}

// Round is a stored round plus its computed differential.
type Round struct {
	AdjustedGrossScore float64 `json:"adjustedGrossScore"`
	CourseRating       float64 `json:"courseRating"`
	SlopeRating        int     `json:"slopeRating"`
	Date               string  `json:"date"`
	Differential       float64 `json:"differential"`
}

// RoundList is the body of GET /owners/{owner}/rounds, in insertion order.
type RoundList struct {
	Owner string  `json:"owner"`
	Data  []Round `json:"data"`
}

// Handicap is the body of GET /owners/{owner}/handicap.
// HandicapIndex is null when the owner has no rounds.
type Handicap struct {
	Owner         string   `json:"owner"`
	HandicapIndex *float64 `json:"handicapIndex"`
	RoundsStored  int      `json:"roundsStored"`
	RoundsUsed    int      `json:"roundsUsed"`
}

// SaveRound handles POST /owners/{owner}/rounds.
// Responds 201 with the saved round and its differential.
func (s *Server) SaveRound(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerParam(w, r)
	if !ok {
		return
	}
	var body RoundRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	round, err := requestToRound(body)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}

	if err := s.rounds.Save(r.Context(), owner, round); err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, roundToResponse(round))
}

// ListRounds handles GET /owners/{owner}/rounds.
func (s *Server) ListRounds(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerParam(w, r)
	if !ok {
		return
	}

	rounds, err := s.rounds.List(r.Context(), owner)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	data := make([]Round, len(rounds))
	for i, rd := range rounds {
		data[i] = roundToResponse(rd)
	}
	writeJSON(w, http.StatusOK, RoundList{Owner: owner.String(), Data: data})
}

// ClearRounds handles DELETE /owners/{owner}/rounds. Always 204, even when
// there was nothing to clear.
func (s *Server) ClearRounds(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerParam(w, r)
	if !ok {
		return
	}

	if err := s.rounds.Clear(r.Context(), owner); err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetHandicap handles GET /owners/{owner}/handicap.
func (s *Server) GetHandicap(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerParam(w, r)
	if !ok {
		return
	}

	idx, err := s.rounds.HandicapIndex(r.Context(), owner)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, Handicap{
		Owner:         idx.Owner.String(),
		HandicapIndex: idx.Value,
		RoundsStored:  idx.RoundsStored,
		RoundsUsed:    idx.RoundsUsed,
	})
}

// ownerParam parses the {owner} path parameter. A malformed key is a 422,
// the same as any other validation failure.
func ownerParam(w http.ResponseWriter, r *http.Request) (domain.OwnerKey, bool) {
	owner, err := domain.ParseOwnerKey(chi.URLParam(r, "owner"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return "", false
	}
	return owner, true
}

// requestToRound rejects a body with any required field missing, naming the
// first one. Range checks are left to domain.Round.Validate.
func requestToRound(body RoundRequest) (domain.Round, error) {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	switch {
	case body.AdjustedGrossScore == nil:
		return domain.Round{}, missing("adjustedGrossScore")
	case body.CourseRating == nil:
		return domain.Round{}, missing("courseRating")
	case body.SlopeRating == nil:
		return domain.Round{}, missing("slopeRating")
	case body.Date == nil:
		return domain.Round{}, missing("date")
	}
	return domain.Round{
		AdjustedGrossScore: *body.AdjustedGrossScore,
		CourseRating:       *body.CourseRating,
		SlopeRating:        *body.SlopeRating,
		Date:               *body.Date,
	}, nil
}

// roundToResponse reports the differential rounded to one decimal, the
// precision the index itself is shown at.
func roundToResponse(r domain.Round) Round {
	return Round{
		AdjustedGrossScore: r.AdjustedGrossScore,
		CourseRating:       r.CourseRating,
		SlopeRating:        r.SlopeRating,
		Date:               r.Date,
		Differential:       handicap.RoundTenth(handicap.Differential(r)),
	}
}
