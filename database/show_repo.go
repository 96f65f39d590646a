package database

import (
	"time"

	"github.com/rpupo63/fullstack-suite-backend/models"
	"gorm.io/gorm"
)

type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db}
}

// FindUpcoming returns shows dated on or after the given day, in
// insertion order.
func (r *ShowRepo) FindUpcoming(from time.Time) ([]*models.Show, error) {
	var shows []*models.Show
	err := r.db.Where("date >= ?", from).Order("id").Find(&shows).Error
	return shows, err
}

// FindByNameAndVenue returns the show with the given name at the given
// venue, or nil if none exists. A (name, venue) pair identifies a show
// for duplicate rejection.
func (r *ShowRepo) FindByNameAndVenue(name string, venueID uint) (*models.Show, error) {
	var show models.Show
	if err := r.db.Where("name = ? AND venue_id = ?", name, venueID).First(&show).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &show, nil
}

// Add inserts a new show into the database
func (r *ShowRepo) Add(show *models.Show) error {
	return r.db.Create(show).Error
}
