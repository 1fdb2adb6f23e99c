// internal/interfaces/http/handlers/coffee.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/coffee-stock-backend/internal/config"
	"github.com/your-org/coffee-stock-backend/internal/domain/stock"
)

// CoffeeHandler handles coffee catalog endpoints
type CoffeeHandler struct {
	stockService *stock.Service
	config       *config.Config
}

// NewCoffeeHandler creates a new coffee handler
func NewCoffeeHandler(svc *stock.Service, cfg *config.Config) *CoffeeHandler {
	return &CoffeeHandler{
		stockService: svc,
		config:       cfg,
	}
}

// GetCoffees handles GET /coffees
func (h *CoffeeHandler) GetCoffees(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Coffees retrieved successfully",
		"data":    h.stockService.Coffees(),
	})
}

// CreateCoffee handles POST /coffees
func (h *CoffeeHandler) CreateCoffee(c *gin.Context) {
	var req stock.CoffeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	coffee, err := h.stockService.AddCoffee(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Coffee created successfully",
		"data":    coffee,
	})
}

// UpdateCoffee handles PUT /coffees/:id
func (h *CoffeeHandler) UpdateCoffee(c *gin.Context) {
	var req stock.CoffeeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	coffee, err := h.stockService.UpdateCoffee(c.Param("id"), &req)
	if err != nil {
		c.JSON(coffeeErrorStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coffee updated successfully",
		"data":    coffee,
	})
}

// DeleteCoffee handles DELETE /coffees/:id
func (h *CoffeeHandler) DeleteCoffee(c *gin.Context) {
	if err := h.stockService.DeleteCoffee(c.Param("id")); err != nil {
		c.JSON(coffeeErrorStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coffee deleted successfully",
	})
}

// GetCoffeeStock handles GET /coffees/:id/stock
func (h *CoffeeHandler) GetCoffeeStock(c *gin.Context) {
	id := c.Param("id")

	available, err := h.stockService.AvailableStock(id)
	if err != nil {
		c.JSON(coffeeErrorStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock retrieved successfully",
		"data": gin.H{
			"coffeeId":  id,
			"available": available,
			"threshold": stock.LowStockThreshold,
		},
	})
}

// coffeeErrorStatus maps boundary errors to HTTP status codes
func coffeeErrorStatus(err error) int {
	if errors.Is(err, stock.ErrCoffeeNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
