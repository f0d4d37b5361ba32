package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dsavelev/todoweb/internal/apierrors"
	"github.com/dsavelev/todoweb/internal/dto"
	"github.com/dsavelev/todoweb/internal/forms"
	"github.com/dsavelev/todoweb/internal/middleware"
	"github.com/dsavelev/todoweb/internal/repository"
	"github.com/dsavelev/todoweb/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskHandler coordinates task CRUD HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the current user's tasks, newest first.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	tasks, err := h.taskService.List(userID)
	if err != nil {
		log.Printf("failed to list tasks: %v", err)
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// CreateTask creates a task for the current user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Text       string     `json:"text"`
		CategoryID *uuid.UUID `json:"category_id"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": forms.Errors{
			forms.FieldText: {"Text is required"},
		}})
		return
	}

	task, err := h.taskService.Create(userID, req.Text, req.CategoryID)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			apierrors.NotFound(c, "Category not found")
			return
		}
		log.Printf("failed to create task: %v", err)
		apierrors.InternalError(c, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial update to the current user's task.
// Only the fields present in the request body are applied; a null
// category_id detaches the task from its category.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var update repository.TaskUpdate
	if value, ok := rawReq["text"]; ok {
		text, ok := value.(string)
		if !ok || text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"errors": forms.Errors{
				forms.FieldText: {"Text is required"},
			}})
			return
		}
		update.Text = text
		update.TextSet = true
	}
	if value, ok := rawReq["completed"]; ok {
		completed, ok := value.(bool)
		if !ok {
			apierrors.BadRequest(c, "Invalid completed value")
			return
		}
		update.Completed = completed
		update.CompletedSet = true
	}
	if value, ok := rawReq["category_id"]; ok {
		update.CategorySet = true
		if value != nil {
			idStr, ok := value.(string)
			if !ok {
				apierrors.BadRequest(c, "Invalid category ID")
				return
			}
			categoryID, err := uuid.Parse(idStr)
			if err != nil {
				apierrors.BadRequest(c, "Invalid category ID")
				return
			}
			update.CategoryID = &categoryID
		}
	}

	task, err := h.taskService.Update(taskID, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		case errors.Is(err, services.ErrCategoryNotFound):
			apierrors.NotFound(c, "Category not found")
		default:
			log.Printf("failed to update task: %v", err)
			apierrors.InternalError(c, "Failed to update task")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes the current user's task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	if err := h.taskService.Delete(taskID, userID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		log.Printf("failed to delete task: %v", err)
		apierrors.InternalError(c, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
