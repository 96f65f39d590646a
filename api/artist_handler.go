package api

import (
	"net/http"

	"github.com/rpupo63/fullstack-suite-backend/errs"
	"github.com/rpupo63/fullstack-suite-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type artistHandler struct {
	responder   Responder
	logger      zerolog.Logger
	artistStore ArtistStore
}

func newArtistHandler(artistStore ArtistStore) artistHandler {
	logger := log.With().Str("handlerName", "artistHandler").Logger()

	return artistHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		artistStore: artistStore,
	}
}

// listArtists retrieves all artists in insertion order
func (h artistHandler) listArtists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artists, err := h.artistStore.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "artists", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"artists": artists,
		})
	}
}

// getArtist retrieves a single artist by ID
func (h artistHandler) getArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := parseIDParam(r, "artistID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		artist, err := h.artistStore.FindByID(artistID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "artist", err))
			return
		}
		if artist == nil {
			h.responder.WriteError(w, errs.NewNotFound("artist"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"artist":  artist,
		})
	}
}

// createArtist creates a new artist, rejecting duplicate names
func (h artistHandler) createArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var artist models.Artist
		if err := decodeJSONBody(r, &artist); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if artist.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		existing, err := h.artistStore.FindByName(artist.Name)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "artist", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewAlreadyExists("artist"))
			return
		}

		artist.ID = 0
		if err := h.artistStore.Add(&artist); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "artist", err))
			return
		}

		h.responder.WriteCreated(w, map[string]any{
			"success": true,
			"artist":  artist,
		})
	}
}

// editArtist overwrites every field of an existing artist from the payload
func (h artistHandler) editArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := parseIDParam(r, "artistID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.artistStore.FindByID(artistID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "artist", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("artist"))
			return
		}

		var artist models.Artist
		if err := decodeJSONBody(r, &artist); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if artist.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		artist.ID = artistID
		if err := h.artistStore.Update(&artist); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "artist", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"artist":  artist,
		})
	}
}

// searchArtists runs a tokenized-contains search over artist names
func (h artistHandler) searchArtists() http.HandlerFunc {
	type searchRequest struct {
		SearchTerm string `json:"search_term"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		artists, err := h.artistStore.Search(req.SearchTerm)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("search", "artists", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"count":   len(artists),
			"artists": artists,
		})
	}
}
