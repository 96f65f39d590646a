package api

import (
	"math/rand"
	"net/http"
	"strconv"

	"github.com/rpupo63/fullstack-suite-backend/errs"
	"github.com/rpupo63/fullstack-suite-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const questionsPerPage = 10

// playAllCategories is the sentinel category meaning "any category".
const playAllCategories = "click"

type triviaHandler struct {
	responder     Responder
	logger        zerolog.Logger
	questionStore QuestionStore
	categoryStore CategoryStore
	rng           *rand.Rand
}

// newTriviaHandler builds the trivia handler. The random source backing
// quiz play is injected so tests can pin selection.
func newTriviaHandler(questionStore QuestionStore, categoryStore CategoryStore, rng *rand.Rand) triviaHandler {
	logger := log.With().Str("handlerName", "triviaHandler").Logger()

	return triviaHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		questionStore: questionStore,
		categoryStore: categoryStore,
		rng:           rng,
	}
}

// listCategories retrieves all trivia categories
func (h triviaHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryStore.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"categories": categories,
		})
	}
}

// createCategory creates a new trivia category
func (h triviaHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.Category
		if err := decodeJSONBody(r, &category); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if category.Type == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("type"))
			return
		}

		category.ID = 0
		if err := h.categoryStore.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "category", err))
			return
		}

		h.responder.WriteCreated(w, map[string]any{
			"success":  true,
			"category": category,
		})
	}
}

// deleteCategory deletes a trivia category by id
func (h triviaHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseIDParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.categoryStore.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "category", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("category"))
			return
		}

		if err := h.categoryStore.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "category", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "category was deleted successfully",
		})
	}
}

// listQuestions retrieves all questions, sliced into pages of ten
func (h triviaHandler) listQuestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if raw := r.URL.Query().Get("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				h.responder.WriteError(w, errs.NewInvalidFieldError("page", "must be a positive integer"))
				return
			}
			page = parsed
		}

		questions, err := h.questionStore.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "questions", err))
			return
		}

		categories, err := h.categoryStore.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}

		start := (page - 1) * questionsPerPage
		end := start + questionsPerPage
		if start > len(questions) {
			start = len(questions)
		}
		if end > len(questions) {
			end = len(questions)
		}

		h.responder.WriteJSON(w, map[string]any{
			"questions":        questions[start:end],
			"page":             page,
			"total_questions":  len(questions),
			"categories":       categories,
			"current_category": "",
		})
	}
}

type createQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// createQuestion creates a new trivia question; every field is required
func (h triviaHandler) createQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createQuestionRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		switch {
		case req.Question == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("question"))
			return
		case req.Answer == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("answer"))
			return
		case req.Category == 0:
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("category"))
			return
		case req.Difficulty == 0:
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("difficulty"))
			return
		}

		question := models.Question{
			Question:   req.Question,
			Answer:     req.Answer,
			Category:   req.Category,
			Difficulty: req.Difficulty,
		}
		if err := h.questionStore.Add(&question); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "question", err))
			return
		}

		h.responder.WriteCreated(w, map[string]any{
			"success":  true,
			"message":  "Question was created",
			"question": question,
		})
	}
}

// deleteQuestion deletes a question by id
func (h triviaHandler) deleteQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questionID, err := parseIDParam(r, "questionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.questionStore.FindByID(questionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "question", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("question"))
			return
		}

		if err := h.questionStore.Delete(questionID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "question", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "question was deleted successfully",
		})
	}
}

// searchQuestions returns all questions whose text contains the search
// term, ordered by id. Search results are not paginated.
func (h triviaHandler) searchQuestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("search")

		questions, err := h.questionStore.Search(term)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("search", "questions", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":   true,
			"questions": questions,
		})
	}
}

// questionsByCategory retrieves all questions in a category
func (h triviaHandler) questionsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseIDParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		questions, err := h.questionStore.FindByCategory(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "questions", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":   true,
			"questions": questions,
		})
	}
}

type playRequest struct {
	// Category is either a category id or the "click" sentinel meaning
	// all categories, so it decodes as either a JSON number or string.
	Category          any      `json:"category"`
	PreviousQuestions []string `json:"previous_questions"`
}

// playQuiz picks one random question from the eligible set: matching the
// requested category, excluding previously seen question texts. An empty
// string is returned once the set is exhausted.
func (h triviaHandler) playQuiz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		categoryID, allCategories, err := resolvePlayCategory(req.Category)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		eligible, err := h.questionStore.FindEligible(categoryID, allCategories, req.PreviousQuestions)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "questions", err))
			return
		}

		var question any = ""
		if len(eligible) > 0 {
			question = eligible[h.rng.Intn(len(eligible))]
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":  true,
			"question": question,
		})
	}
}

func resolvePlayCategory(raw any) (categoryID uint, allCategories bool, err error) {
	switch v := raw.(type) {
	case nil:
		return 0, true, nil
	case float64:
		if v < 1 {
			return 0, false, errs.NewInvalidFieldError("category", "must be a positive category id")
		}
		return uint(v), false, nil
	case string:
		if v == "" || v == playAllCategories {
			return 0, true, nil
		}
		parsed, parseErr := strconv.ParseUint(v, 10, 64)
		if parseErr != nil {
			return 0, false, errs.NewInvalidFieldError("category", "must be a category id or \"click\"")
		}
		return uint(parsed), false, nil
	default:
		return 0, false, errs.NewInvalidFieldError("category", "must be a category id or \"click\"")
	}
}
