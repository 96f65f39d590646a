package database

import (
	"strings"

	"github.com/rpupo63/fullstack-suite-backend/models"
	"gorm.io/gorm"
)

type VenueRepo struct {
	db *gorm.DB
}

func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{db}
}

// FindAll returns all venues in insertion order
func (r *VenueRepo) FindAll() ([]*models.Venue, error) {
	var venues []*models.Venue
	err := r.db.Order("id").Find(&venues).Error
	return venues, err
}

// FindByID returns a venue by its ID, or nil if no such venue exists
func (r *VenueRepo) FindByID(id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.First(&venue, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

// FindByName returns the venue with the given name, or nil if none exists.
// Used as the advisory duplicate pre-check on create.
func (r *VenueRepo) FindByName(name string) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.Where("name = ?", name).First(&venue).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

// Search returns venues whose name contains every token of the search
// term, case-insensitively.
func (r *VenueRepo) Search(term string) ([]*models.Venue, error) {
	query := r.db.Order("id")
	for _, token := range strings.Fields(term) {
		query = query.Where("name ILIKE ?", "%"+token+"%")
	}
	var venues []*models.Venue
	err := query.Find(&venues).Error
	return venues, err
}

// Add inserts a new venue into the database
func (r *VenueRepo) Add(venue *models.Venue) error {
	return r.db.Create(venue).Error
}

// Update updates an existing venue in the database
func (r *VenueRepo) Update(venue *models.Venue) error {
	return r.db.Save(venue).Error
}

// Delete removes a venue and its shows from the database by id
func (r *VenueRepo) Delete(id uint) error {
	return r.db.Select("Shows").Delete(&models.Venue{ID: id}).Error
}
