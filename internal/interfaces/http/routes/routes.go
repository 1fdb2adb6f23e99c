// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/coffee-stock-backend/internal/config"
	"github.com/your-org/coffee-stock-backend/internal/domain/stock"
	"github.com/your-org/coffee-stock-backend/internal/interfaces/http/handlers"
)

// SetupRoutes wires all API routes onto the given group
func SetupRoutes(rg *gin.RouterGroup, svc *stock.Service, cfg *config.Config) {
	SetupSessionRoutes(rg, svc, cfg)
	SetupCoffeeRoutes(rg, svc, cfg)
	SetupMovementRoutes(rg, svc, cfg)
	SetupDashboardRoutes(rg, svc, cfg)
}

// SetupSessionRoutes sets up session related routes
func SetupSessionRoutes(rg *gin.RouterGroup, svc *stock.Service, cfg *config.Config) {
	sessionHandler := handlers.NewSessionHandler(svc, cfg)

	session := rg.Group("/session")
	{
		session.POST("/login", sessionHandler.Login)
		session.POST("/logout", sessionHandler.Logout)
		session.GET("/me", sessionHandler.GetCurrentUser)
		session.POST("/theme", sessionHandler.ToggleTheme)
	}
}

// SetupCoffeeRoutes sets up coffee catalog routes
func SetupCoffeeRoutes(rg *gin.RouterGroup, svc *stock.Service, cfg *config.Config) {
	coffeeHandler := handlers.NewCoffeeHandler(svc, cfg)

	coffees := rg.Group("/coffees")
	{
		coffees.GET("", coffeeHandler.GetCoffees)
		coffees.POST("", coffeeHandler.CreateCoffee)
		coffees.PUT("/:id", coffeeHandler.UpdateCoffee)
		coffees.DELETE("/:id", coffeeHandler.DeleteCoffee)
		coffees.GET("/:id/stock", coffeeHandler.GetCoffeeStock)
	}
}

// SetupMovementRoutes sets up movement ledger routes
func SetupMovementRoutes(rg *gin.RouterGroup, svc *stock.Service, cfg *config.Config) {
	movementHandler := handlers.NewMovementHandler(svc, cfg)

	movements := rg.Group("/movements")
	{
		movements.GET("", movementHandler.GetMovements)
		movements.POST("", movementHandler.CreateMovement)
		movements.PUT("/:id", movementHandler.UpdateMovement)
		movements.DELETE("/:id", movementHandler.DeleteMovement)
	}
}

// SetupDashboardRoutes sets up aggregate read routes
func SetupDashboardRoutes(rg *gin.RouterGroup, svc *stock.Service, cfg *config.Config) {
	dashboardHandler := handlers.NewDashboardHandler(svc, cfg)

	rg.GET("/dashboard", dashboardHandler.GetDashboard)
	rg.GET("/alerts", dashboardHandler.GetAlerts)
	rg.POST("/refresh", dashboardHandler.Refresh)
}
