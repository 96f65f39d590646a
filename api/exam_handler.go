package api

import (
	"net/http"

	"github.com/rpupo63/fullstack-suite-backend/errs"
	"github.com/rpupo63/fullstack-suite-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type examHandler struct {
	responder     Responder
	logger        zerolog.Logger
	questionStore ExamQuestionStore
	answerStore   ExamAnswerStore
}

func newExamHandler(questionStore ExamQuestionStore, answerStore ExamAnswerStore) examHandler {
	logger := log.With().Str("handlerName", "examHandler").Logger()

	return examHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		questionStore: questionStore,
		answerStore:   answerStore,
	}
}

// listQuestions retrieves all exam questions
func (h examHandler) listQuestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questions, err := h.questionStore.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "questions", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"data":    questions,
		})
	}
}

// getQuestion retrieves a single exam question by id
func (h examHandler) getQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questionID, err := parseIDParam(r, "questionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		question, err := h.questionStore.FindByID(questionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "question", err))
			return
		}
		if question == nil {
			h.responder.WriteError(w, errs.NewNotFound("question"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"data":    question,
		})
	}
}

type createExamQuestionRequest struct {
	Question  string `json:"question"`
	TeacherID string `json:"teacher_id"`
}

// createQuestion creates a new exam question
func (h examHandler) createQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createExamQuestionRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		switch {
		case req.Question == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("question"))
			return
		case req.TeacherID == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("teacher_id"))
			return
		}

		question := models.ExamQuestion{Question: req.Question, TeacherID: req.TeacherID}
		if err := h.questionStore.Add(&question); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "question", err))
			return
		}

		h.responder.WriteCreated(w, map[string]any{
			"success": true,
			"data":    question,
		})
	}
}

// editQuestion updates the text of an existing exam question
func (h examHandler) editQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questionID, err := parseIDParam(r, "questionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		question, err := h.questionStore.FindByID(questionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "question", err))
			return
		}
		if question == nil {
			h.responder.WriteError(w, errs.NewNotFound("question"))
			return
		}

		var req createExamQuestionRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Question == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("question"))
			return
		}

		question.Question = req.Question
		if err := h.questionStore.Update(question); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "question", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"data":    question,
		})
	}
}

// deleteQuestion deletes an exam question and its answers
func (h examHandler) deleteQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questionID, err := parseIDParam(r, "questionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		question, err := h.questionStore.FindByID(questionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "question", err))
			return
		}
		if question == nil {
			h.responder.WriteError(w, errs.NewNotFound("question"))
			return
		}

		if err := h.questionStore.Delete(questionID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "question", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "Question has been deleted successfully",
		})
	}
}

// listAnswers retrieves all answers to an exam question
func (h examHandler) listAnswers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questionID, err := parseIDParam(r, "questionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		question, err := h.questionStore.FindByID(questionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "question", err))
			return
		}
		if question == nil {
			h.responder.WriteError(w, errs.NewNotFound("question"))
			return
		}

		answers, err := h.answerStore.FindByQuestion(questionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "answers", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"data":    answers,
		})
	}
}

type createExamAnswerRequest struct {
	Answer    string `json:"answer"`
	StudentID string `json:"student_id"`
}

// createAnswer posts a student's answer to an exam question
func (h examHandler) createAnswer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questionID, err := parseIDParam(r, "questionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		question, err := h.questionStore.FindByID(questionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "question", err))
			return
		}
		if question == nil {
			h.responder.WriteError(w, errs.NewNotFound("question"))
			return
		}

		var req createExamAnswerRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Answer == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("answer"))
			return
		}

		answer := models.ExamAnswer{
			Answer:         req.Answer,
			ExamQuestionID: questionID,
			StudentID:      req.StudentID,
		}
		if err := h.answerStore.Add(&answer); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "answer", err))
			return
		}

		h.responder.WriteCreated(w, map[string]any{
			"success": true,
			"data":    answer,
		})
	}
}
