package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the page routes the session guard protects. The
// pages themselves are placeholders; rendering is handled by the
// frontend.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Login(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<!DOCTYPE html><title>Log in</title><h1>Log in</h1>"))
}

func (h *PageHandler) Register(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<!DOCTYPE html><title>Register</title><h1>Register</h1>"))
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<!DOCTYPE html><title>Dashboard</title><h1>Dashboard</h1>"))
}
