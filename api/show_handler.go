package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/fullstack-suite-backend/errs"
	"github.com/rpupo63/fullstack-suite-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type showHandler struct {
	responder   Responder
	logger      zerolog.Logger
	showStore   ShowStore
	artistStore ArtistStore
	venueStore  VenueStore
}

func newShowHandler(showStore ShowStore, artistStore ArtistStore, venueStore VenueStore) showHandler {
	logger := log.With().Str("handlerName", "showHandler").Logger()

	return showHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		showStore:   showStore,
		artistStore: artistStore,
		venueStore:  venueStore,
	}
}

// ShowWithHosts is a show annotated with its artist and venue
type ShowWithHosts struct {
	models.Show
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	VenueName       string `json:"venue_name"`
}

// listShows retrieves shows dated today or later, with artist and venue info
func (h showHandler) listShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		shows, err := h.showStore.FindUpcoming(today)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "shows", err))
			return
		}

		annotated := make([]ShowWithHosts, 0, len(shows))
		for _, show := range shows {
			entry := ShowWithHosts{Show: *show}
			if artist, err := h.artistStore.FindByID(show.ArtistID); err == nil && artist != nil {
				entry.ArtistName = artist.Name
				entry.ArtistImageLink = artist.ImageLink
			}
			if venue, err := h.venueStore.FindByID(show.VenueID); err == nil && venue != nil {
				entry.VenueName = venue.Name
			}
			annotated = append(annotated, entry)
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"shows":   annotated,
		})
	}
}

type createShowRequest struct {
	Name      string `json:"name"`
	ArtistID  uint   `json:"artist_id"`
	VenueID   uint   `json:"venue_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Fee       string `json:"fee"`
}

// createShow books an artist at a venue. The artist must exist and be
// seeking a venue, the venue must exist, and the (name, venue) pair must
// be unused.
func (h showHandler) createShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createShowRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		switch {
		case req.Name == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		case req.ArtistID == 0:
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("artist_id"))
			return
		case req.VenueID == 0:
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("venue_id"))
			return
		case req.Date == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("date"))
			return
		}

		date, err := parseShowDate(req.Date)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("date", "expected YYYY-MM-DD or RFC 3339"))
			return
		}

		artist, err := h.artistStore.FindByID(req.ArtistID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "artist", err))
			return
		}
		if artist == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("artist does not exist"))
			return
		}
		if !artist.SeekingVenue {
			h.responder.WriteError(w, errs.NewBadRequestError("artist is not available for booking"))
			return
		}

		venue, err := h.venueStore.FindByID(req.VenueID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "venue", err))
			return
		}
		if venue == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("venue does not exist"))
			return
		}

		existing, err := h.showStore.FindByNameAndVenue(req.Name, req.VenueID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "show", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewAlreadyExists("show"))
			return
		}

		show := models.Show{
			Name:      req.Name,
			ArtistID:  req.ArtistID,
			VenueID:   req.VenueID,
			Date:      date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Fee:       req.Fee,
		}
		if err := h.showStore.Add(&show); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "show", err))
			return
		}

		h.responder.WriteCreated(w, map[string]any{
			"success": true,
			"show":    show,
		})
	}
}

func parseShowDate(raw string) (time.Time, error) {
	if date, err := time.Parse(time.RFC3339, raw); err == nil {
		return date, nil
	}
	return time.Parse("2006-01-02", raw)
}
