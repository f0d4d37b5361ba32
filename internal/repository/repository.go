package repository

import (
	"github.com/dsavelev/todoweb/internal/models"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TaskUpdate holds the fields of a partial task update. The Set flags
// mark which fields were provided; CategorySet with a nil CategoryID
// clears the category.
type TaskUpdate struct {
	Text         string
	TextSet      bool
	Completed    bool
	CompletedSet bool
	CategoryID   *uuid.UUID
	CategorySet  bool
}

// TaskRepository defines the interface for task data access. Every
// operation is scoped by the owning user's ID.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// ListByUser retrieves the user's tasks, most recently created first
	ListByUser(userID uuid.UUID) ([]models.Task, error)

	// Update applies a partial update to the user's task and returns the
	// updated row. A missing or foreign-owned row reports zero matches.
	Update(id, userID uuid.UUID, update TaskUpdate) (*models.Task, bool, error)

	// Delete removes the user's task. The boolean is false when no row
	// matched (missing or foreign-owned), which is not an error.
	Delete(id, userID uuid.UUID) (bool, error)
}

// CategoryRepository defines the interface for category data access,
// scoped by the owning user's ID.
type CategoryRepository interface {
	// Create creates a new category
	Create(category *models.Category) error

	// ListByUser retrieves the user's categories alphabetically by name
	ListByUser(userID uuid.UUID) ([]models.Category, error)

	// FindByID finds the user's category by ID
	FindByID(id, userID uuid.UUID) (*models.Category, error)

	// Delete removes the user's category, detaching the user's tasks
	// that reference it. False when no row matched.
	Delete(id, userID uuid.UUID) (bool, error)
}
