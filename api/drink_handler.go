package api

import (
	"encoding/json"
	"net/http"

	"github.com/rpupo63/fullstack-suite-backend/errs"
	"github.com/rpupo63/fullstack-suite-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type drinkHandler struct {
	responder  Responder
	logger     zerolog.Logger
	drinkStore DrinkStore
}

func newDrinkHandler(drinkStore DrinkStore) drinkHandler {
	logger := log.With().Str("handlerName", "drinkHandler").Logger()

	return drinkHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		drinkStore: drinkStore,
	}
}

// listDrinks retrieves all drinks in their public short representation
func (h drinkHandler) listDrinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drinks, err := h.drinkStore.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "drinks", err))
			return
		}

		shorts := make([]models.DrinkShort, 0, len(drinks))
		for _, drink := range drinks {
			shorts = append(shorts, drink.Short())
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"drinks":  shorts,
		})
	}
}

// listDrinksDetail retrieves all drinks in their long representation,
// including recipe quantities.
func (h drinkHandler) listDrinksDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drinks, err := h.drinkStore.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "drinks", err))
			return
		}

		longs := make([]models.DrinkLong, 0, len(drinks))
		for _, drink := range drinks {
			longs = append(longs, drink.Long())
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"drinks":  longs,
		})
	}
}

type createDrinkRequest struct {
	Title string `json:"title"`
	// Raw so a non-list recipe yields a 400 rather than a decode panic
	Recipe json.RawMessage `json:"recipe"`
}

// createDrink creates a new drink, rejecting duplicate titles
func (h drinkHandler) createDrink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDrinkRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		var recipe []models.RecipeIngredient
		if len(req.Recipe) == 0 || json.Unmarshal(req.Recipe, &recipe) != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("recipe",
				"must contain a list of recipe objects e.g [{\"color\": \"blue\", \"name\": \"syrup\", \"parts\": 1}]"))
			return
		}

		existing, err := h.drinkStore.FindByTitle(req.Title)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "drink", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewAlreadyExists("drink"))
			return
		}

		drink := models.Drink{Title: req.Title, Recipe: recipe}
		if err := h.drinkStore.Add(&drink); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "drink", err))
			return
		}

		h.responder.WriteCreated(w, map[string]any{
			"success": true,
			"drink":   drink.Long(),
		})
	}
}

type patchDrinkRequest struct {
	Title  *string                    `json:"title"`
	Recipe *[]models.RecipeIngredient `json:"recipe"`
}

// patchDrink updates only the fields present in the payload
func (h drinkHandler) patchDrink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drinkID, err := parseIDParam(r, "drinkID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		drink, err := h.drinkStore.FindByID(drinkID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "drink", err))
			return
		}
		if drink == nil {
			h.responder.WriteError(w, errs.NewNotFound("drink"))
			return
		}

		var req patchDrinkRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Title != nil {
			drink.Title = *req.Title
		}
		if req.Recipe != nil {
			drink.Recipe = *req.Recipe
		}

		if err := h.drinkStore.Update(drink); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "drink", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"drink":   drink.Long(),
		})
	}
}

// deleteDrink deletes a drink, returning the deleted id for client-side
// cache invalidation.
func (h drinkHandler) deleteDrink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drinkID, err := parseIDParam(r, "drinkID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		drink, err := h.drinkStore.FindByID(drinkID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "drink", err))
			return
		}
		if drink == nil {
			h.responder.WriteError(w, errs.NewNotFound("drink"))
			return
		}

		if err := h.drinkStore.Delete(drinkID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "drink", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"delete":  drinkID,
		})
	}
}
