package database

import (
	"strings"

	"github.com/rpupo63/fullstack-suite-backend/models"
	"gorm.io/gorm"
)

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db}
}

// FindAll returns all artists in insertion order
func (r *ArtistRepo) FindAll() ([]*models.Artist, error) {
	var artists []*models.Artist
	err := r.db.Order("id").Find(&artists).Error
	return artists, err
}

// FindByID returns an artist by its ID, or nil if no such artist exists
func (r *ArtistRepo) FindByID(id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.First(&artist, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}

// FindByName returns the artist with the given name, or nil if none exists
func (r *ArtistRepo) FindByName(name string) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.Where("name = ?", name).First(&artist).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}

// Search returns artists whose name contains every token of the search
// term, case-insensitively.
func (r *ArtistRepo) Search(term string) ([]*models.Artist, error) {
	query := r.db.Order("id")
	for _, token := range strings.Fields(term) {
		query = query.Where("name ILIKE ?", "%"+token+"%")
	}
	var artists []*models.Artist
	err := query.Find(&artists).Error
	return artists, err
}

// Add inserts a new artist into the database
func (r *ArtistRepo) Add(artist *models.Artist) error {
	return r.db.Create(artist).Error
}

// Update updates an existing artist in the database
func (r *ArtistRepo) Update(artist *models.Artist) error {
	return r.db.Save(artist).Error
}
