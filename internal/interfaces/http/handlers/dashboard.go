// internal/interfaces/http/handlers/dashboard.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/coffee-stock-backend/internal/config"
	"github.com/your-org/coffee-stock-backend/internal/domain/stock"
)

// DashboardHandler handles the aggregate read endpoints the dashboard
// renders from
type DashboardHandler struct {
	stockService *stock.Service
	config       *config.Config
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc *stock.Service, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{
		stockService: svc,
		config:       cfg,
	}
}

// GetDashboard handles GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	state := h.stockService.State()

	totalStock := 0
	for i := range state.Coffees {
		totalStock += state.Coffees[i].TotalQuantity()
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard retrieved successfully",
		"data": gin.H{
			"totalCoffees":   len(state.Coffees),
			"totalStock":     totalStock,
			"totalMovements": len(state.Movements),
			"alerts":         state.Alerts,
			"lastUpdate":     state.LastUpdate,
			"lastUpdatedBy":  state.LastUpdatedBy,
		},
	})
}

// GetAlerts handles GET /alerts
func (h *DashboardHandler) GetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Alerts retrieved successfully",
		"data":    h.stockService.Alerts(),
	})
}

// Refresh handles POST /refresh
func (h *DashboardHandler) Refresh(c *gin.Context) {
	h.stockService.Refresh()

	c.JSON(http.StatusOK, gin.H{
		"message": "Data refreshed successfully",
	})
}
