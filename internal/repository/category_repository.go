package repository

import (
	"github.com/dsavelev/todoweb/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCategoryRepository is a GORM implementation of CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create creates a new category
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// ListByUser retrieves the user's categories alphabetically by name
func (r *GormCategoryRepository) ListByUser(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByID finds the user's category by ID
func (r *GormCategoryRepository) FindByID(id, userID uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes the user's category and detaches their tasks from it
// within a single transaction. False when no category row matched.
func (r *GormCategoryRepository) Delete(id, userID uuid.UUID) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND user_id = ?", id, userID).
			Delete(&models.Category{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true

		return tx.Model(&models.Task{}).
			Where("category_id = ? AND user_id = ?", id, userID).
			Update("category_id", nil).Error
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
