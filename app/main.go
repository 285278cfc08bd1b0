// Файл: main.go

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"contract-studio/internal/listeners"
	"contract-studio/internal/migrations"
	"contract-studio/internal/repositories"
	"contract-studio/internal/routes"
	"contract-studio/pkg/api"
	"contract-studio/pkg/config"
	"contract-studio/pkg/customvalidator"
	"contract-studio/pkg/database/postgresql"
	apperrors "contract-studio/pkg/errors"
	"contract-studio/pkg/eventbus"
	applogger "contract-studio/pkg/logger"
	appmiddleware "contract-studio/pkg/middleware"
	"contract-studio/pkg/service"
	"contract-studio/pkg/utils"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	// 2. Middleware
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				api.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition", echo.HeaderXRequestID},
	}))

	// 3. Валидатор
	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	// 4. PostgreSQL и миграции
	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	if cfg.Postgres.AutoMigrate {
		if err := postgresql.Migrate(dbConn, migrations.FS); err != nil {
			logger.Fatal("не удалось применить миграции", zap.Error(err))
		}
		logger.Info("миграции применены")
	}

	// 5. Кеш сессий: Redis, либо память процесса при пустом REDIS_ADDRESS
	var cacheRepo repositories.CacheRepositoryInterface
	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		cacheRepo = repositories.NewRedisCacheRepository(redisClient)
	} else {
		logger.Warn("REDIS_ADDRESS пуст, сессии анкет хранятся в памяти процесса")
		cacheRepo = repositories.NewMemoryCacheRepository()
	}

	// 6. Сервисы и события
	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	bus := eventbus.New(logger.Named("events"))
	listeners.NewAuditListener(logger.Named("audit")).Register(bus)

	// 7. Роуты
	loggers := &routes.Loggers{
		Main:     logger,
		Auth:     logger.Named("auth"),
		Session:  logger.Named("session"),
		Document: logger.Named("document"),
	}
	routes.InitRouter(e, dbConn, cacheRepo, jwtSvc, bus, loggers, cfg)

	// 8. Запуск и корректная остановка
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("получен сигнал остановки")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("ошибка остановки сервера", zap.Error(err))
	}
	bus.Wait()
}
