package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shipment-dashboard/internal/controllers"
	"shipment-dashboard/internal/services"
	"shipment-dashboard/pkg/middleware"
)

func runAuthRouter(api *echo.Group, authService *services.AuthService, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	authCtrl := controllers.NewAuthController(authService, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/refresh_token", authCtrl.RefreshToken)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
