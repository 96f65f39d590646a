package api

import (
	"net/http"

	"github.com/rpupo63/fullstack-suite-backend/errs"
	"github.com/rpupo63/fullstack-suite-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type venueHandler struct {
	responder  Responder
	logger     zerolog.Logger
	venueStore VenueStore
}

func newVenueHandler(venueStore VenueStore) venueHandler {
	logger := log.With().Str("handlerName", "venueHandler").Logger()

	return venueHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		venueStore: venueStore,
	}
}

// VenueSummary is the listing projection of a venue
type VenueSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

func summarizeVenue(venue *models.Venue) VenueSummary {
	return VenueSummary{ID: venue.ID, Name: venue.Name, City: venue.City, State: venue.State}
}

// listVenues retrieves all venues in insertion order
func (h venueHandler) listVenues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venues, err := h.venueStore.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "venues", err))
			return
		}

		summaries := make([]VenueSummary, 0, len(venues))
		for _, venue := range venues {
			summaries = append(summaries, summarizeVenue(venue))
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"venues":  summaries,
		})
	}
}

// getVenue retrieves a single venue by ID
func (h venueHandler) getVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := parseIDParam(r, "venueID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		venue, err := h.venueStore.FindByID(venueID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "venue", err))
			return
		}
		if venue == nil {
			h.responder.WriteError(w, errs.NewNotFound("venue"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"venue":   venue,
		})
	}
}

// createVenue creates a new venue, rejecting duplicate names
func (h venueHandler) createVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var venue models.Venue
		if err := decodeJSONBody(r, &venue); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if venue.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		// Advisory pre-check; the unique constraint is the authoritative
		// duplicate signal under concurrent creates.
		existing, err := h.venueStore.FindByName(venue.Name)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "venue", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewAlreadyExists("venue"))
			return
		}

		venue.ID = 0
		if err := h.venueStore.Add(&venue); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "venue", err))
			return
		}

		h.responder.WriteCreated(w, map[string]any{
			"success": true,
			"venue":   venue,
		})
	}
}

// editVenue overwrites every field of an existing venue from the payload
func (h venueHandler) editVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := parseIDParam(r, "venueID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.venueStore.FindByID(venueID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "venue", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("venue"))
			return
		}

		var venue models.Venue
		if err := decodeJSONBody(r, &venue); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if venue.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		venue.ID = venueID
		if err := h.venueStore.Update(&venue); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "venue", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"venue":   venue,
		})
	}
}

// deleteVenue deletes a venue and its shows
func (h venueHandler) deleteVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := parseIDParam(r, "venueID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.venueStore.FindByID(venueID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "venue", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("venue"))
			return
		}

		if err := h.venueStore.Delete(venueID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "venue", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "deleted",
		})
	}
}

// searchVenues runs a tokenized-contains search over venue names
func (h venueHandler) searchVenues() http.HandlerFunc {
	type searchRequest struct {
		SearchTerm string `json:"search_term"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		venues, err := h.venueStore.Search(req.SearchTerm)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("search", "venues", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"count":   len(venues),
			"venues":  venues,
		})
	}
}
