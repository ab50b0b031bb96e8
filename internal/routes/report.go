package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shipment-dashboard/internal/controllers"
	"shipment-dashboard/internal/services"
)

func runReportRouter(secureGroup *echo.Group, exportService services.ExportServiceInterface, logger *zap.Logger) {
	reportCtrl := controllers.NewReportController(exportService, logger)

	secureGroup.GET("/report", reportCtrl.GetReport)
}
