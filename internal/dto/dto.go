package dto

import (
	"time"

	"github.com/dsavelev/todoweb/internal/models"
	"github.com/google/uuid"
)

// UserDTO represents a user in API responses. The password hash never
// leaves the model layer.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID         uuid.UUID  `json:"id"`
	Text       string     `json:"text"`
	Completed  bool       `json:"completed"`
	CategoryID *uuid.UUID `json:"category_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CategoryDTO represents a category in API responses
type CategoryDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:         task.ID,
		Text:       task.Text,
		Completed:  task.Completed,
		CategoryID: task.CategoryID,
		CreatedAt:  task.CreatedAt,
		UpdatedAt:  task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks, preserving order
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

// ToCategoryDTO converts a Category model to CategoryDTO
func ToCategoryDTO(category models.Category) CategoryDTO {
	return CategoryDTO{
		ID:    category.ID,
		Name:  category.Name,
		Color: category.Color,
	}
}

// ToCategoryDTOs converts a slice of categories, preserving order
func ToCategoryDTOs(categories []models.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, len(categories))
	for i, category := range categories {
		dtos[i] = ToCategoryDTO(category)
	}
	return dtos
}
