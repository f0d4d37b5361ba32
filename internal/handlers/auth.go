package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dsavelev/todoweb/internal/apierrors"
	"github.com/dsavelev/todoweb/internal/dto"
	"github.com/dsavelev/todoweb/internal/forms"
	"github.com/dsavelev/todoweb/internal/middleware"
	"github.com/dsavelev/todoweb/internal/services"
	"github.com/dsavelev/todoweb/internal/session"
	"github.com/gin-gonic/gin"
)

// MinPasswordLength is enforced at registration only.
const MinPasswordLength = 8

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// Register creates a new account. Validation order: missing fields,
// password length, then email uniqueness against the store.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	fieldErrors := forms.Errors{}
	if req.FirstName == "" {
		fieldErrors.Add(forms.FieldFirstName, "First name is required")
	}
	if req.LastName == "" {
		fieldErrors.Add(forms.FieldLastName, "Last name is required")
	}
	if req.Email == "" {
		fieldErrors.Add(forms.FieldEmail, "Email is required")
	}
	if req.Password == "" {
		fieldErrors.Add(forms.FieldPassword, "Password is required")
	} else if len(req.Password) < MinPasswordLength {
		fieldErrors.Add(forms.FieldPassword, "Password must be at least 8 characters")
	}
	if fieldErrors.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	_, err := h.authService.Register(services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"errors": forms.Errors{
				forms.FieldEmail: {"Email already in use"},
			}})
			return
		}
		log.Printf("registration failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"errors": forms.Errors{
			forms.FieldEmail: {"An error occurred during registration"},
		}})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// Login authenticates a user and issues the session cookie. Unknown
// email and wrong password produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	fieldErrors := forms.Errors{}
	if req.Email == "" {
		fieldErrors.Add(forms.FieldEmail, "Email is required")
	}
	if req.Password == "" {
		fieldErrors.Add(forms.FieldPassword, "Password is required")
	}
	if fieldErrors.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"errors": forms.Errors{
				forms.FieldEmail: {"Invalid email or password"},
			}})
			return
		}
		log.Printf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"errors": forms.Errors{
			forms.FieldEmail: {"An error occurred during login"},
		}})
		return
	}

	if err := h.sessions.Issue(c, user.ID); err != nil {
		log.Printf("failed to issue session: %v", err)
		apierrors.InternalError(c, "Failed to create session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie and sends the client to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		log.Printf("failed to load current user: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
