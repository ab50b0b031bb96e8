package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shipment-dashboard/internal/controllers"
	"shipment-dashboard/internal/services"
)

func runTrackingRouter(secureGroup *echo.Group, trackingService *services.TrackingService, logger *zap.Logger) {
	trackingCtrl := controllers.NewTrackingController(trackingService, logger)

	secureGroup.GET("/tracking/:containerNo", trackingCtrl.GetContainerStatus)
}
