package services

import (
	"errors"
	"fmt"

	"github.com/dsavelev/todoweb/internal/models"
	"github.com/dsavelev/todoweb/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService handles task business logic. Every operation takes the
// authenticated user's ID and never a client-supplied owner.
type TaskService struct {
	taskRepo     repository.TaskRepository
	categoryRepo repository.CategoryRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, categoryRepo repository.CategoryRepository) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
	}
}

// List returns the user's tasks, most recently created first.
func (s *TaskService) List(userID uuid.UUID) ([]models.Task, error) {
	return s.taskRepo.ListByUser(userID)
}

// Create creates a task for the user. When a category is given it must
// belong to the same user.
func (s *TaskService) Create(userID uuid.UUID, text string, categoryID *uuid.UUID) (*models.Task, error) {
	if categoryID != nil {
		if err := s.checkCategory(*categoryID, userID); err != nil {
			return nil, err
		}
	}

	task := &models.Task{
		UserID:     userID,
		CategoryID: categoryID,
		Text:       text,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Update applies a partial update to the user's task and returns the
// updated row. A missing or foreign-owned task is ErrTaskNotFound.
func (s *TaskService) Update(id, userID uuid.UUID, update repository.TaskUpdate) (*models.Task, error) {
	if update.CategorySet && update.CategoryID != nil {
		if err := s.checkCategory(*update.CategoryID, userID); err != nil {
			return nil, err
		}
	}

	task, matched, err := s.taskRepo.Update(id, userID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if !matched {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// Delete removes the user's task. A missing or foreign-owned task is
// ErrTaskNotFound, not a store failure.
func (s *TaskService) Delete(id, userID uuid.UUID) error {
	deleted, err := s.taskRepo.Delete(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

func (s *TaskService) checkCategory(categoryID, userID uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(categoryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to check category: %w", err)
	}
	return nil
}
