package repository

import (
	"errors"

	"github.com/dsavelev/todoweb/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListByUser retrieves the user's tasks, most recently created first
func (r *GormTaskRepository) ListByUser(userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update applies a partial update to the user's task. The user_id
// predicate makes a foreign-owned row indistinguishable from a missing
// one: both match zero rows.
func (r *GormTaskRepository) Update(id, userID uuid.UUID, update TaskUpdate) (*models.Task, bool, error) {
	fields := map[string]interface{}{}
	if update.TextSet {
		fields["text"] = update.Text
	}
	if update.CompletedSet {
		fields["completed"] = update.Completed
	}
	if update.CategorySet {
		fields["category_id"] = update.CategoryID
	}

	if len(fields) > 0 {
		result := r.db.Model(&models.Task{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(fields)
		if result.Error != nil {
			return nil, false, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, false, nil
		}
	}

	var task models.Task
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &task, true, nil
}

// Delete removes the user's task; false when no row matched
func (r *GormTaskRepository) Delete(id, userID uuid.UUID) (bool, error) {
	result := r.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Task{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
