package handlers

import (
	"errors"
	"log"
	"net/http"
	"regexp"

	"github.com/dsavelev/todoweb/internal/apierrors"
	"github.com/dsavelev/todoweb/internal/dto"
	"github.com/dsavelev/todoweb/internal/forms"
	"github.com/dsavelev/todoweb/internal/middleware"
	"github.com/dsavelev/todoweb/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CategoryHandler coordinates category CRUD HTTP handlers.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// ListCategories returns the current user's categories alphabetically.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	categories, err := h.categoryService.List(userID)
	if err != nil {
		log.Printf("failed to list categories: %v", err)
		apierrors.InternalError(c, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": dto.ToCategoryDTOs(categories)})
}

// CreateCategory creates a category for the current user.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateCategoryRequest struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	fieldErrors := forms.Errors{}
	if req.Name == "" {
		fieldErrors.Add(forms.FieldName, "Name is required")
	}
	if req.Color == "" {
		fieldErrors.Add(forms.FieldColor, "Color is required")
	} else if !hexColorPattern.MatchString(req.Color) {
		fieldErrors.Add(forms.FieldColor, "Color must be a hex value like #4f46e5")
	}
	if fieldErrors.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	category, err := h.categoryService.Create(userID, req.Name, req.Color)
	if err != nil {
		log.Printf("failed to create category: %v", err)
		apierrors.InternalError(c, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryDTO(*category))
}

// DeleteCategory removes the current user's category and detaches
// their tasks from it.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(categoryID, userID); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			apierrors.NotFound(c, "Category not found")
			return
		}
		log.Printf("failed to delete category: %v", err)
		apierrors.InternalError(c, "Failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
