package services

import (
	"errors"
	"fmt"

	"github.com/dsavelev/todoweb/internal/models"
	"github.com/dsavelev/todoweb/internal/repository"
	"github.com/google/uuid"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryService handles category business logic, scoped by the
// authenticated user's ID.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

// List returns the user's categories alphabetically by name.
func (s *CategoryService) List(userID uuid.UUID) ([]models.Category, error) {
	return s.categoryRepo.ListByUser(userID)
}

// Create creates a category for the user.
func (s *CategoryService) Create(userID uuid.UUID, name, color string) (*models.Category, error) {
	category := &models.Category{
		UserID: userID,
		Name:   name,
		Color:  color,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// Delete removes the user's category. A missing or foreign-owned
// category is ErrCategoryNotFound.
func (s *CategoryService) Delete(id, userID uuid.UUID) error {
	deleted, err := s.categoryRepo.Delete(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}
