package api

import (
	"github.com/go-chi/chi/v5"
)

// Permission claims required by the gated route groups
const (
	PermDrinkDetail = "drink detail"
	PermAddDrink    = "add drink"
	PermEditDrink   = "edit drink"
	PermDeleteDrink = "delete drink"

	PermReadQuestions  = "read:questions"
	PermReadQuestion   = "read:question"
	PermAddQuestion    = "add:question"
	PermEditQuestion   = "edit:question"
	PermDeleteQuestion = "delete:question"
	PermReadAnswers    = "read:answers"
	PermAddAnswer      = "add:answer"
)

// setupRoutes mounts the four application route groups on one router
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(RequestIDMiddleware)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Booking endpoints
		r.Get("/venues", handlers.venueHandler.listVenues())
		r.Post("/venues/create", handlers.venueHandler.createVenue())
		r.Post("/venues/search", handlers.venueHandler.searchVenues())
		r.Get("/venues/{venueID}", handlers.venueHandler.getVenue())
		r.Post("/venues/{venueID}/edit", handlers.venueHandler.editVenue())
		r.Delete("/venues/{venueID}/delete", handlers.venueHandler.deleteVenue())

		r.Get("/artists", handlers.artistHandler.listArtists())
		r.Post("/artists/create", handlers.artistHandler.createArtist())
		r.Post("/artists/search", handlers.artistHandler.searchArtists())
		r.Get("/artists/{artistID}", handlers.artistHandler.getArtist())
		r.Post("/artists/{artistID}/edit", handlers.artistHandler.editArtist())

		r.Get("/shows", handlers.showHandler.listShows())
		r.Post("/shows/create", handlers.showHandler.createShow())

		// Trivia endpoints
		r.Route("/api", func(r chi.Router) {
			r.Get("/categories", handlers.triviaHandler.listCategories())
			r.Post("/categories", handlers.triviaHandler.createCategory())
			r.Delete("/categories/{categoryID}", handlers.triviaHandler.deleteCategory())
			r.Get("/categories/{categoryID}/questions", handlers.triviaHandler.questionsByCategory())

			r.Get("/questions", handlers.triviaHandler.listQuestions())
			r.Post("/questions", handlers.triviaHandler.createQuestion())
			r.Post("/questions/play", handlers.triviaHandler.playQuiz())
			r.Delete("/questions/{questionID}/delete", handlers.triviaHandler.deleteQuestion())

			r.Post("/search/questions", handlers.triviaHandler.searchQuestions())
		})

		// Coffee shop endpoints; only the short listing is public
		r.Get("/drinks", handlers.drinkHandler.listDrinks())
		r.With(authMiddleware.requirePermission(PermDrinkDetail)).
			Get("/drinks-detail", handlers.drinkHandler.listDrinksDetail())
		r.With(authMiddleware.requirePermission(PermAddDrink)).
			Post("/drinks", handlers.drinkHandler.createDrink())
		r.With(authMiddleware.requirePermission(PermEditDrink)).
			Patch("/drinks/{drinkID}", handlers.drinkHandler.patchDrink())
		r.With(authMiddleware.requirePermission(PermDeleteDrink)).
			Delete("/drinks/{drinkID}", handlers.drinkHandler.deleteDrink())

		// Exam endpoints, all permissioned
		r.With(authMiddleware.requirePermission(PermReadQuestions)).
			Get("/questions", handlers.examHandler.listQuestions())
		r.With(authMiddleware.requirePermission(PermAddQuestion)).
			Post("/questions", handlers.examHandler.createQuestion())
		r.With(authMiddleware.requirePermission(PermReadQuestion)).
			Get("/questions/{questionID}", handlers.examHandler.getQuestion())
		r.With(authMiddleware.requirePermission(PermEditQuestion)).
			Patch("/questions/{questionID}", handlers.examHandler.editQuestion())
		r.With(authMiddleware.requirePermission(PermDeleteQuestion)).
			Delete("/questions/{questionID}", handlers.examHandler.deleteQuestion())
		r.With(authMiddleware.requirePermission(PermReadAnswers)).
			Get("/question/{questionID}/answers", handlers.examHandler.listAnswers())
		r.With(authMiddleware.requirePermission(PermAddAnswer)).
			Post("/question/{questionID}/answers", handlers.examHandler.createAnswer())
	})
}
