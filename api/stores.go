package api

import (
	"time"

	"github.com/rpupo63/fullstack-suite-backend/models"
)

// Per-resource persistence gateways consumed by the handlers. The
// concrete implementations live in the database package; handlers only
// see these narrow interfaces, which also keeps the auth guard's
// "no database access before authorization" property testable.

type VenueStore interface {
	FindAll() ([]*models.Venue, error)
	FindByID(id uint) (*models.Venue, error)
	FindByName(name string) (*models.Venue, error)
	Search(term string) ([]*models.Venue, error)
	Add(venue *models.Venue) error
	Update(venue *models.Venue) error
	Delete(id uint) error
}

type ArtistStore interface {
	FindAll() ([]*models.Artist, error)
	FindByID(id uint) (*models.Artist, error)
	FindByName(name string) (*models.Artist, error)
	Search(term string) ([]*models.Artist, error)
	Add(artist *models.Artist) error
	Update(artist *models.Artist) error
}

type ShowStore interface {
	FindUpcoming(from time.Time) ([]*models.Show, error)
	FindByNameAndVenue(name string, venueID uint) (*models.Show, error)
	Add(show *models.Show) error
}

type CategoryStore interface {
	FindAll() ([]*models.Category, error)
	FindByID(id uint) (*models.Category, error)
	Add(category *models.Category) error
	Delete(id uint) error
}

type QuestionStore interface {
	FindAll() ([]*models.Question, error)
	FindByID(id uint) (*models.Question, error)
	FindByCategory(categoryID uint) ([]*models.Question, error)
	Search(term string) ([]*models.Question, error)
	FindEligible(categoryID uint, allCategories bool, previous []string) ([]*models.Question, error)
	Add(question *models.Question) error
	Delete(id uint) error
}

type DrinkStore interface {
	FindAll() ([]*models.Drink, error)
	FindByID(id uint) (*models.Drink, error)
	FindByTitle(title string) (*models.Drink, error)
	Add(drink *models.Drink) error
	Update(drink *models.Drink) error
	Delete(id uint) error
}

type ExamQuestionStore interface {
	FindAll() ([]*models.ExamQuestion, error)
	FindByID(id uint) (*models.ExamQuestion, error)
	Add(question *models.ExamQuestion) error
	Update(question *models.ExamQuestion) error
	Delete(id uint) error
}

type ExamAnswerStore interface {
	FindByQuestion(questionID uint) ([]*models.ExamAnswer, error)
	Add(answer *models.ExamAnswer) error
}
