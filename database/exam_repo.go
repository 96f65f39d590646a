package database

import (
	"github.com/rpupo63/fullstack-suite-backend/models"
	"gorm.io/gorm"
)

type ExamQuestionRepo struct {
	db *gorm.DB
}

func NewExamQuestionRepo(db *gorm.DB) *ExamQuestionRepo {
	return &ExamQuestionRepo{db}
}

// FindAll returns all exam questions in insertion order
func (r *ExamQuestionRepo) FindAll() ([]*models.ExamQuestion, error) {
	var questions []*models.ExamQuestion
	err := r.db.Order("id").Find(&questions).Error
	return questions, err
}

// FindByID returns an exam question by its ID, or nil if none exists
func (r *ExamQuestionRepo) FindByID(id uint) (*models.ExamQuestion, error) {
	var question models.ExamQuestion
	if err := r.db.First(&question, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// Add inserts a new exam question into the database
func (r *ExamQuestionRepo) Add(question *models.ExamQuestion) error {
	return r.db.Create(question).Error
}

// Update updates an existing exam question in the database
func (r *ExamQuestionRepo) Update(question *models.ExamQuestion) error {
	return r.db.Save(question).Error
}

// Delete removes an exam question and its answers from the database by id
func (r *ExamQuestionRepo) Delete(id uint) error {
	return r.db.Select("Answers").Delete(&models.ExamQuestion{ID: id}).Error
}

type ExamAnswerRepo struct {
	db *gorm.DB
}

func NewExamAnswerRepo(db *gorm.DB) *ExamAnswerRepo {
	return &ExamAnswerRepo{db}
}

// FindByQuestion returns all answers to the given exam question, in
// insertion order.
func (r *ExamAnswerRepo) FindByQuestion(questionID uint) ([]*models.ExamAnswer, error) {
	var answers []*models.ExamAnswer
	err := r.db.Where("exam_question_id = ?", questionID).Order("id").Find(&answers).Error
	return answers, err
}

// Add inserts a new exam answer into the database
func (r *ExamAnswerRepo) Add(answer *models.ExamAnswer) error {
	return r.db.Create(answer).Error
}
