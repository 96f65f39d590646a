package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/fullstack-suite-backend/models"
)

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

func newVenueRouter(store *fakeVenueStore) *chi.Mux {
	h := newVenueHandler(store)
	r := chi.NewRouter()
	r.Get("/venues", h.listVenues())
	r.Post("/venues/create", h.createVenue())
	r.Post("/venues/search", h.searchVenues())
	r.Get("/venues/{venueID}", h.getVenue())
	r.Post("/venues/{venueID}/edit", h.editVenue())
	r.Delete("/venues/{venueID}/delete", h.deleteVenue())
	return r
}

func TestCreateVenue(t *testing.T) {
	store := &fakeVenueStore{}
	router := newVenueRouter(store)

	body := `{"name":"The Dueling Pianos Bar","city":"New York","state":"NY","seeking_talent":true}`
	req := httptest.NewRequest("POST", "/venues/create", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d want 201, body=%s", rr.Code, rr.Body.String())
	}
	if len(store.venues) != 1 {
		t.Fatalf("store has %d venues, want 1", len(store.venues))
	}
}

func TestCreateVenueDuplicateNameRejected(t *testing.T) {
	store := &fakeVenueStore{}
	router := newVenueRouter(store)

	body := `{"name":"Park Square Live Music & Coffee"}`
	req := httptest.NewRequest("POST", "/venues/create", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("first create: status=%d want 201", rr.Code)
	}

	req = httptest.NewRequest("POST", "/venues/create", strings.NewReader(body))
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("duplicate create: status=%d want 409", rr.Code)
	}
	response := decodeBody(t, rr)
	if response["success"] != false {
		t.Fatalf("success=%v want false", response["success"])
	}
	if len(store.venues) != 1 {
		t.Fatalf("store has %d venues after duplicate create, want 1", len(store.venues))
	}
}

func TestCreateVenueMissingName(t *testing.T) {
	store := &fakeVenueStore{}
	router := newVenueRouter(store)

	req := httptest.NewRequest("POST", "/venues/create", strings.NewReader(`{"city":"San Francisco"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want 400", rr.Code)
	}
	response := decodeBody(t, rr)
	if response["field"] != "name" {
		t.Fatalf("field=%v want name", response["field"])
	}
}

func TestListVenuesReturnsSummaries(t *testing.T) {
	store := &fakeVenueStore{}
	store.Add(&models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street"})
	router := newVenueRouter(store)

	req := httptest.NewRequest("GET", "/venues", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", rr.Code)
	}
	response := decodeBody(t, rr)
	venues, ok := response["venues"].([]any)
	if !ok || len(venues) != 1 {
		t.Fatalf("venues=%v want one entry", response["venues"])
	}
	entry := venues[0].(map[string]any)
	if entry["name"] != "The Musical Hop" || entry["city"] != "San Francisco" {
		t.Fatalf("unexpected summary: %v", entry)
	}
	if _, present := entry["address"]; present {
		t.Fatalf("summary leaked full record: %v", entry)
	}
}

func TestGetVenueNotFound(t *testing.T) {
	router := newVenueRouter(&fakeVenueStore{})

	req := httptest.NewRequest("GET", "/venues/42", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d want 404", rr.Code)
	}
}

func TestDeleteVenueIsIdempotentlyNotFound(t *testing.T) {
	store := &fakeVenueStore{}
	store.Add(&models.Venue{Name: "The Musical Hop"})
	router := newVenueRouter(store)

	req := httptest.NewRequest("DELETE", "/venues/1/delete", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("first delete: status=%d want 200", rr.Code)
	}

	// Venue is gone afterwards
	req = httptest.NewRequest("GET", "/venues/1", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status=%d want 404", rr.Code)
	}

	// Second delete reports not found rather than failing
	req = httptest.NewRequest("DELETE", "/venues/1/delete", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("second delete: status=%d want 404", rr.Code)
	}
}

func TestEditVenueOverwritesFields(t *testing.T) {
	store := &fakeVenueStore{}
	store.Add(&models.Venue{Name: "The Musical Hop", City: "San Francisco"})
	router := newVenueRouter(store)

	body := `{"name":"The Musical Hop","city":"Oakland","state":"CA"}`
	req := httptest.NewRequest("POST", "/venues/1/edit", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want 200, body=%s", rr.Code, rr.Body.String())
	}
	if store.venues[0].City != "Oakland" {
		t.Fatalf("city=%q want Oakland", store.venues[0].City)
	}
}

func TestSearchVenuesTokenizedContains(t *testing.T) {
	store := &fakeVenueStore{}
	store.Add(&models.Venue{Name: "The Musical Hop"})
	store.Add(&models.Venue{Name: "Park Square Live Music & Coffee"})
	router := newVenueRouter(store)

	req := httptest.NewRequest("POST", "/venues/search", strings.NewReader(`{"search_term":"music coffee"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", rr.Code)
	}
	response := decodeBody(t, rr)
	if response["count"] != float64(1) {
		t.Fatalf("count=%v want 1", response["count"])
	}
}
