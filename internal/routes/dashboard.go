package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shipment-dashboard/internal/controllers"
	"shipment-dashboard/internal/services"
)

func runDashboardRouter(secureGroup *echo.Group, dashboardService *services.DashboardService, logger *zap.Logger) {
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	secureGroup.GET("/dashboard/stats", dashboardCtrl.GetDashboardStats)
}
