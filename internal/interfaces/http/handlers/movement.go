// internal/interfaces/http/handlers/movement.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/coffee-stock-backend/internal/config"
	"github.com/your-org/coffee-stock-backend/internal/domain/stock"
)

// MovementHandler handles movement ledger endpoints
type MovementHandler struct {
	stockService *stock.Service
	config       *config.Config
}

// NewMovementHandler creates a new movement handler
func NewMovementHandler(svc *stock.Service, cfg *config.Config) *MovementHandler {
	return &MovementHandler{
		stockService: svc,
		config:       cfg,
	}
}

// GetMovements handles GET /movements
func (h *MovementHandler) GetMovements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Movements retrieved successfully",
		"data":    h.stockService.Movements(),
	})
}

// CreateMovement handles POST /movements
func (h *MovementHandler) CreateMovement(c *gin.Context) {
	var req stock.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	movement, err := h.stockService.AddMovement(&req)
	if err != nil {
		c.JSON(movementErrorStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Movement recorded successfully",
		"data":    movement,
	})
}

// UpdateMovement handles PUT /movements/:id
func (h *MovementHandler) UpdateMovement(c *gin.Context) {
	var req stock.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	movement, err := h.stockService.UpdateMovement(c.Param("id"), &req)
	if err != nil {
		c.JSON(movementErrorStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Movement updated successfully",
		"data":    movement,
	})
}

// DeleteMovement handles DELETE /movements/:id
func (h *MovementHandler) DeleteMovement(c *gin.Context) {
	if err := h.stockService.DeleteMovement(c.Param("id")); err != nil {
		c.JSON(movementErrorStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Movement deleted successfully",
	})
}

// movementErrorStatus maps boundary errors to HTTP status codes
func movementErrorStatus(err error) int {
	switch {
	case errors.Is(err, stock.ErrMovementNotFound), errors.Is(err, stock.ErrCoffeeNotFound):
		return http.StatusNotFound
	case errors.Is(err, stock.ErrInsufficientStock):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
