package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"contract-studio/internal/controllers"
	"contract-studio/internal/repositories"
	"contract-studio/internal/services"
	"contract-studio/pkg/config"
	"contract-studio/pkg/eventbus"
	"contract-studio/pkg/middleware"
	"contract-studio/pkg/service"
)

type Loggers struct {
	Main     *zap.Logger
	Auth     *zap.Logger
	Session  *zap.Logger
	Document *zap.Logger
}

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, cacheRepo repositories.CacheRepositoryInterface, jwtSvc service.JWTService, bus *eventbus.Bus, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth)
	txManager := repositories.NewTxManager(dbConn)
	engine := services.NewContractEngine(cfg.Contract.RateMarkers, loggers.Session)

	// --- 1. РЕПОЗИТОРИИ ---
	sessionRepo := repositories.NewSessionRepository(cacheRepo, cfg.Contract.SessionTTL, loggers.Session)
	documentRepo := repositories.NewDocumentRepository(dbConn, loggers.Document)

	// --- 2. СЕРВИСЫ ---
	sessionService := services.NewContractSessionService(sessionRepo, engine, loggers.Session)
	documentService := services.NewDocumentService(txManager, documentRepo, sessionService, engine, bus, loggers.Document)

	// --- 3. КОНТРОЛЛЕРЫ ---
	sessionController := controllers.NewContractSessionController(sessionService, loggers.Session)
	exportController := controllers.NewExportController(sessionService, loggers.Session)
	documentController := controllers.NewDocumentController(documentService, loggers.Document)

	// --- 4. РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runSessionRouter(secureGroup, sessionController, exportController)
	runDocumentRouter(secureGroup, documentController)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}
