package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/fullstack-suite-backend/models"
)

func newDrinkRouter(store *fakeDrinkStore) *chi.Mux {
	h := newDrinkHandler(store)
	r := chi.NewRouter()
	r.Get("/drinks", h.listDrinks())
	r.Get("/drinks-detail", h.listDrinksDetail())
	r.Post("/drinks", h.createDrink())
	r.Patch("/drinks/{drinkID}", h.patchDrink())
	r.Delete("/drinks/{drinkID}", h.deleteDrink())
	return r
}

func TestCreateDrink(t *testing.T) {
	store := &fakeDrinkStore{}
	router := newDrinkRouter(store)

	body := `{"title":"spiced cider","recipe":[{"color":"amber","name":"cider","parts":3},{"color":"brown","name":"cinnamon","parts":1}]}`
	req := httptest.NewRequest("POST", "/drinks", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	response := decodeBody(t, rr)
	drink := response["drink"].(map[string]any)
	if drink["title"] != "spiced cider" {
		t.Errorf("expected created drink in response, got %v", drink)
	}
	if len(drink["recipe"].([]any)) != 2 {
		t.Errorf("expected full recipe in response, got %v", drink["recipe"])
	}
	if len(store.drinks) != 1 {
		t.Fatalf("expected drink stored, have %d", len(store.drinks))
	}
}

func TestCreateDrinkDuplicateTitleRejected(t *testing.T) {
	store := &fakeDrinkStore{}
	store.Add(&models.Drink{Title: "flat white", Recipe: []models.RecipeIngredient{{Color: "white", Name: "milk", Parts: 1}}})
	router := newDrinkRouter(store)

	body := `{"title":"flat white","recipe":[{"color":"white","name":"milk","parts":2}]}`
	req := httptest.NewRequest("POST", "/drinks", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(store.drinks) != 1 {
		t.Errorf("duplicate create must not add a drink, have %d", len(store.drinks))
	}
}

func TestCreateDrinkRecipeMustBeList(t *testing.T) {
	router := newDrinkRouter(&fakeDrinkStore{})

	for _, body := range []string{
		`{"title":"odd","recipe":{"color":"red","name":"syrup","parts":1}}`,
		`{"title":"odd","recipe":"not a list"}`,
		`{"title":"odd"}`,
	} {
		req := httptest.NewRequest("POST", "/drinks", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rr.Code)
		}
		response := decodeBody(t, rr)
		if response["field"] != "recipe" {
			t.Errorf("body %s: expected recipe field flagged, got %v", body, response["field"])
		}
	}
}

func TestCreateDrinkMissingTitle(t *testing.T) {
	router := newDrinkRouter(&fakeDrinkStore{})

	req := httptest.NewRequest("POST", "/drinks", strings.NewReader(`{"recipe":[{"color":"red","name":"syrup","parts":1}]}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if decodeBody(t, rr)["field"] != "title" {
		t.Error("expected title field flagged")
	}
}

func TestPatchDrinkTitleOnlyKeepsRecipe(t *testing.T) {
	store := &fakeDrinkStore{}
	store.Add(&models.Drink{Title: "water", Recipe: []models.RecipeIngredient{{Color: "blue", Name: "water", Parts: 1}}})
	router := newDrinkRouter(store)

	req := httptest.NewRequest("PATCH", "/drinks/1", strings.NewReader(`{"title":"sparkling water"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	drink := decodeBody(t, rr)["drink"].(map[string]any)
	if drink["title"] != "sparkling water" {
		t.Errorf("title not updated: %v", drink["title"])
	}
	recipe := drink["recipe"].([]any)
	if len(recipe) != 1 || recipe[0].(map[string]any)["name"] != "water" {
		t.Errorf("recipe must survive a title-only patch, got %v", recipe)
	}
}

func TestPatchDrinkRecipeOnlyKeepsTitle(t *testing.T) {
	store := &fakeDrinkStore{}
	store.Add(&models.Drink{Title: "mocha", Recipe: []models.RecipeIngredient{{Color: "brown", Name: "coffee", Parts: 2}}})
	router := newDrinkRouter(store)

	body := `{"recipe":[{"color":"brown","name":"coffee","parts":1},{"color":"dark","name":"chocolate","parts":1}]}`
	req := httptest.NewRequest("PATCH", "/drinks/1", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	drink := decodeBody(t, rr)["drink"].(map[string]any)
	if drink["title"] != "mocha" {
		t.Errorf("title must survive a recipe-only patch, got %v", drink["title"])
	}
	if len(drink["recipe"].([]any)) != 2 {
		t.Errorf("recipe not replaced, got %v", drink["recipe"])
	}
}

func TestPatchDrinkNotFound(t *testing.T) {
	router := newDrinkRouter(&fakeDrinkStore{})

	req := httptest.NewRequest("PATCH", "/drinks/99", strings.NewReader(`{"title":"ghost"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestDeleteDrinkReturnsID(t *testing.T) {
	store := &fakeDrinkStore{}
	store.Add(&models.Drink{Title: "espresso", Recipe: []models.RecipeIngredient{{Color: "black", Name: "espresso", Parts: 1}}})
	router := newDrinkRouter(store)

	req := httptest.NewRequest("DELETE", "/drinks/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	response := decodeBody(t, rr)
	if response["delete"] != float64(1) {
		t.Errorf("expected deleted id echoed back, got %v", response["delete"])
	}
	if len(store.drinks) != 0 {
		t.Errorf("drink not removed from store")
	}

	req = httptest.NewRequest("DELETE", "/drinks/1", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rr.Code)
	}
}
