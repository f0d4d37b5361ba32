package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dsavelev/todoweb/internal/database"
	"github.com/dsavelev/todoweb/internal/middleware"
	"github.com/dsavelev/todoweb/internal/models"
	"github.com/dsavelev/todoweb/internal/repository"
	"github.com/dsavelev/todoweb/internal/services"
	"github.com/dsavelev/todoweb/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
	sessions    *session.Manager
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Task{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	codec := session.NewCodec([]byte("test-secret-key-of-sufficient-length"))
	sessions := session.NewManager(codec, time.Hour, false)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	handler := NewAuthHandler(authService, sessions)

	r := gin.New()
	r.POST("/api/auth/register", handler.Register)
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/logout", handler.Logout)
	r.GET("/api/auth/me", middleware.RequireAuth(sessions), handler.GetCurrentUser)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		router:      r,
		authService: authService,
		sessions:    sessions,
	}
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) map[string][]string {
	t.Helper()

	var response struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Errors
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/api/auth/register", map[string]string{
		"first_name": "A",
		"last_name":  "B",
		"email":      "a@b.com",
		"password":   "longenough1",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.True(t, response["success"])

	// The stored credential is a hash, never the plaintext.
	var user models.User
	require.NoError(t, env.db.Where("email = ?", "a@b.com").First(&user).Error)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "longenough1", user.PasswordHash)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := map[string]string{
		"first_name": "A",
		"last_name":  "B",
		"email":      "a@b.com",
		"password":   "longenough1",
	}

	w := postJSON(t, env.router, "/api/auth/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, env.router, "/api/auth/register", payload)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, map[string][]string{
		"email": {"Email already in use"},
	}, decodeErrors(t, w))
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/api/auth/register", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	fieldErrors := decodeErrors(t, w)
	require.Equal(t, []string{"First name is required"}, fieldErrors["first_name"])
	require.Equal(t, []string{"Last name is required"}, fieldErrors["last_name"])
	require.Equal(t, []string{"Email is required"}, fieldErrors["email"])
	require.Equal(t, []string{"Password is required"}, fieldErrors["password"])
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/api/auth/register", map[string]string{
		"first_name": "A",
		"last_name":  "B",
		"email":      "a@b.com",
		"password":   "short",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, map[string][]string{
		"password": {"Password must be at least 8 characters"},
	}, decodeErrors(t, w))
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Password:  "longenough1",
	})
	require.NoError(t, err)

	w := postJSON(t, env.router, "/api/auth/login", map[string]string{
		"email":    "a@b.com",
		"password": "longenough1",
	})

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, session.CookieName, cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
	require.NotEmpty(t, cookies[0].Value)
}

func TestAuthHandler_Login_InvalidCredentialsSameShape(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Password:  "longenough1",
	})
	require.NoError(t, err)

	// Wrong password for a known email and an unregistered email must
	// be indistinguishable from the response alone.
	wrongPassword := postJSON(t, env.router, "/api/auth/login", map[string]string{
		"email":    "a@b.com",
		"password": "wrongpassword",
	})
	unknownEmail := postJSON(t, env.router, "/api/auth/login", map[string]string{
		"email":    "nobody@b.com",
		"password": "longenough1",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	require.Equal(t, map[string][]string{
		"email": {"Invalid email or password"},
	}, decodeErrors(t, wrongPassword))
}

func TestAuthHandler_Logout(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/api/auth/logout", map[string]string{})

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, session.CookieName, cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(services.RegisterInput{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Password:  "longenough1",
	})
	require.NoError(t, err)

	login := postJSON(t, env.router, "/api/auth/login", map[string]string{
		"email":    "a@b.com",
		"password": "longenough1",
	})
	require.Equal(t, http.StatusOK, login.Code)
	sessionCookie := login.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(sessionCookie)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.ID.String(), response.ID)
	require.Equal(t, "a@b.com", response.Email)
}

func TestAuthHandler_GetCurrentUser_NoSession(t *testing.T) {
	env := setupAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
