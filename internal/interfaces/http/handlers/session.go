// internal/interfaces/http/handlers/session.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/coffee-stock-backend/internal/config"
	"github.com/your-org/coffee-stock-backend/internal/domain/stock"
)

// SessionHandler handles the name-capture session endpoints. There are no
// credentials; login just records who is operating the tracker.
type SessionHandler struct {
	stockService *stock.Service
	config       *config.Config
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(svc *stock.Service, cfg *config.Config) *SessionHandler {
	return &SessionHandler{
		stockService: svc,
		config:       cfg,
	}
}

// LoginRequest represents login data
type LoginRequest struct {
	Name string `json:"name" binding:"required"`
}

// Login handles POST /session/login
func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, err := h.stockService.Login(req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"data":    user,
	})
}

// Logout handles POST /session/logout
func (h *SessionHandler) Logout(c *gin.Context) {
	h.stockService.Logout()

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser handles GET /session/me
func (h *SessionHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.stockService.CurrentUser()
	if err != nil {
		if errors.Is(err, stock.ErrNotLoggedIn) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Current user retrieved successfully",
		"data":    user,
	})
}

// ToggleTheme handles POST /session/theme
func (h *SessionHandler) ToggleTheme(c *gin.Context) {
	theme := h.stockService.ToggleTheme()

	c.JSON(http.StatusOK, gin.H{
		"message": "Theme toggled successfully",
		"data": gin.H{
			"theme": theme,
		},
	})
}
