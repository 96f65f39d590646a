package database

import (
	"github.com/rpupo63/fullstack-suite-backend/models"
	"gorm.io/gorm"
)

type QuestionRepo struct {
	db *gorm.DB
}

func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db}
}

// FindAll returns all questions in insertion order
func (r *QuestionRepo) FindAll() ([]*models.Question, error) {
	var questions []*models.Question
	err := r.db.Order("id").Find(&questions).Error
	return questions, err
}

// FindByID returns a question by its ID, or nil if no such question exists
func (r *QuestionRepo) FindByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := r.db.First(&question, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// FindByCategory returns all questions in the given category, in
// insertion order.
func (r *QuestionRepo) FindByCategory(categoryID uint) ([]*models.Question, error) {
	var questions []*models.Question
	err := r.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	return questions, err
}

// Search returns questions whose text contains the search term,
// case-insensitively, ordered by id. All matches are returned; search
// results are not paginated.
func (r *QuestionRepo) Search(term string) ([]*models.Question, error) {
	var questions []*models.Question
	err := r.db.Where("question ILIKE ?", "%"+term+"%").Order("id").Find(&questions).Error
	return questions, err
}

// FindEligible returns the quiz-eligible questions: those in the given
// category (or any category when allCategories is set) whose text is
// not among the previously seen questions.
func (r *QuestionRepo) FindEligible(categoryID uint, allCategories bool, previous []string) ([]*models.Question, error) {
	query := r.db.Order("id")
	if !allCategories {
		query = query.Where("category = ?", categoryID)
	}
	if len(previous) > 0 {
		query = query.Where("question NOT IN ?", previous)
	}
	var questions []*models.Question
	err := query.Find(&questions).Error
	return questions, err
}

// Add inserts a new question into the database
func (r *QuestionRepo) Add(question *models.Question) error {
	return r.db.Create(question).Error
}

// Delete removes a question from the database by id
func (r *QuestionRepo) Delete(id uint) error {
	return r.db.Delete(&models.Question{}, id).Error
}
