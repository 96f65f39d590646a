package api

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/fullstack-suite-backend/database"
	"github.com/rpupo63/fullstack-suite-backend/errs"
)

// routeHandlers contains all the handlers for the four route groups
type routeHandlers struct {
	venueHandler  venueHandler
	artistHandler artistHandler
	showHandler   showHandler
	triviaHandler triviaHandler
	drinkHandler  drinkHandler
	examHandler   examHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, rng *rand.Rand) *routeHandlers {
	return &routeHandlers{
		venueHandler:  newVenueHandler(database.VenueRepo()),
		artistHandler: newArtistHandler(database.ArtistRepo()),
		showHandler:   newShowHandler(database.ShowRepo(), database.ArtistRepo(), database.VenueRepo()),
		triviaHandler: newTriviaHandler(database.QuestionRepo(), database.CategoryRepo(), rng),
		drinkHandler:  newDrinkHandler(database.DrinkRepo()),
		examHandler:   newExamHandler(database.ExamQuestionRepo(), database.ExamAnswerRepo()),
	}
}

// parseIDParam reads an integer id from the named chi URL parameter
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}

// decodeJSONBody decodes the request body into dst, returning a
// structured bad-request error on malformed input.
func decodeJSONBody(r *http.Request, dst any) error {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewBadRequestError("failed to read request body")
	}
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(dst); err != nil {
		return errs.Malformed("request body")
	}
	return nil
}
