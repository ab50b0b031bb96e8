package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shipment-dashboard/internal/controllers"
	"shipment-dashboard/internal/services"
	"shipment-dashboard/pkg/middleware"
)

func runChatRouter(secureGroup *echo.Group, chatService *services.ChatService, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	chatCtrl := controllers.NewChatController(chatService, logger)

	// произвольные SELECT по базе - только администраторам
	secureGroup.POST("/chat/ask", chatCtrl.Ask, authMW.RequireRole("admin"))
}
