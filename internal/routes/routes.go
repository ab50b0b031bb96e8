package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shipment-dashboard/internal/repositories"
	"shipment-dashboard/internal/services"
	"shipment-dashboard/pkg/config"
	"shipment-dashboard/pkg/middleware"
	"shipment-dashboard/pkg/service"
)

type Loggers struct {
	Main      *zap.Logger
	Auth      *zap.Logger
	Dashboard *zap.Logger
	Chat      *zap.Logger
}

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth)

	// --- 1. РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn, loggers.Auth)
	shipmentRepo := repositories.NewShipmentRepository(dbConn, loggers.Main)
	queryRepo := repositories.NewQueryRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 2. СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, jwtSvc, loggers.Auth)
	dashboardService := services.NewDashboardService(shipmentRepo, cacheRepo, loggers.Dashboard, cfg.Dashboard.CacheTTL)
	exportService := services.NewExportService(shipmentRepo, loggers.Main)
	chatService := services.NewChatService(queryRepo, cfg.SQLAssist, loggers.Chat)
	trackingService := services.NewTrackingService(cfg.Tracking, loggers.Main)

	// --- 3. РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authService, loggers.Auth, authMW)
	runDashboardRouter(secureGroup, dashboardService, loggers.Dashboard)
	runReportRouter(secureGroup, exportService, loggers.Main)
	runChatRouter(secureGroup, chatService, loggers.Chat, authMW)
	runTrackingRouter(secureGroup, trackingService, loggers.Main)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}
