package database

import (
	"github.com/rpupo63/fullstack-suite-backend/models"
	"gorm.io/gorm"
)

type DrinkRepo struct {
	db *gorm.DB
}

func NewDrinkRepo(db *gorm.DB) *DrinkRepo {
	return &DrinkRepo{db}
}

// FindAll returns all drinks in insertion order
func (r *DrinkRepo) FindAll() ([]*models.Drink, error) {
	var drinks []*models.Drink
	err := r.db.Order("id").Find(&drinks).Error
	return drinks, err
}

// FindByID returns a drink by its ID, or nil if no such drink exists
func (r *DrinkRepo) FindByID(id uint) (*models.Drink, error) {
	var drink models.Drink
	if err := r.db.First(&drink, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &drink, nil
}

// FindByTitle returns the drink with the given title, or nil if none exists
func (r *DrinkRepo) FindByTitle(title string) (*models.Drink, error) {
	var drink models.Drink
	if err := r.db.Where("title = ?", title).First(&drink).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &drink, nil
}

// Add inserts a new drink into the database
func (r *DrinkRepo) Add(drink *models.Drink) error {
	return r.db.Create(drink).Error
}

// Update updates an existing drink in the database
func (r *DrinkRepo) Update(drink *models.Drink) error {
	return r.db.Save(drink).Error
}

// Delete removes a drink from the database by id
func (r *DrinkRepo) Delete(id uint) error {
	return r.db.Delete(&models.Drink{}, id).Error
}
