package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/storefront/domain"
)

// SessionHandlers exposes the session intents over HTTP
type SessionHandlers struct {
	sessions domain.SessionStore
}

// NewSessionHandlers creates new session handlers
func NewSessionHandlers(sessions domain.SessionStore) *SessionHandlers {
	return &SessionHandlers{sessions: sessions}
}

// LoginRequest represents login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Get returns the current session
func (h *SessionHandlers) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": sessionView(h.sessions.Snapshot())})
}

// Login handles the login intent
func (h *SessionHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.sessions.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		var remote *domain.RemoteError
		status := http.StatusBadGateway
		if errors.As(err, &remote) {
			status = http.StatusUnauthorized
		}
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": snap.Error})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sessionView(snap)})
}

// Logout handles the logout intent
func (h *SessionHandlers) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": sessionView(h.sessions.Logout(c.Request.Context()))})
}
