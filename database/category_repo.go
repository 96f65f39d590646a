package database

import (
	"github.com/rpupo63/fullstack-suite-backend/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns all categories in insertion order
func (r *CategoryRepo) FindAll() ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Order("id").Find(&categories).Error
	return categories, err
}

// FindByID returns a category by its ID, or nil if no such category exists
func (r *CategoryRepo) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Add inserts a new category into the database
func (r *CategoryRepo) Add(category *models.Category) error {
	return r.db.Create(category).Error
}

// Delete removes a category from the database by id
func (r *CategoryRepo) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}
