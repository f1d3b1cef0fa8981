package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/repositories"
	"gearguard/internal/routes"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/eventbus"
	applogger "gearguard/pkg/logger"
	appmiddleware "gearguard/pkg/middleware"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
	"gearguard/pkg/validation"
	"gearguard/pkg/websocket"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 1. Конфиг (внутри грузится .env) и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	// 2. Echo и middleware
	e := echo.New()
	e.HideBanner = true
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
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, appmiddleware.HeaderRequestID},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition", appmiddleware.HeaderRequestID},
	}))
	e.Validator = validation.New()

	// 3. Хранилище токена: Redis, а если он недоступен - память процесса
	tokens := newTokenRepository(cfg, logger)

	// 4. Клиент бэкенда, шина событий, рассылка по WebSocket
	api := gearguard.NewClient(cfg.API.BaseURL, cfg.API.Timeout, tokens, logger)
	bus := eventbus.New(logger)
	hub := websocket.NewHub(logger)

	// 5. Маршруты
	routes.InitRouter(e, routes.Dependencies{
		API:       api,
		Tokens:    tokens,
		Inspector: service.NewTokenInspector(nil, logger),
		Bus:       bus,
		Hub:       hub,
		Clock:     services.NewClock(cfg.Calendar.Location()),
		Config:    cfg,
		Logger:    logger,
	})

	// 6. Запуск и корректная остановка
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("🚀 Консоль GearGuard запущена",
			zap.String("port", cfg.Server.Port),
			zap.String("backend", cfg.API.BaseURL),
		)
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Получен сигнал остановки, завершаем работу")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", zap.Error(err))
	}
	hub.Close()
	bus.Wait()
}

func newTokenRepository(cfg *config.Config, logger *zap.Logger) repositories.TokenRepositoryInterface {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logger.Warn("Redis недоступен, токен будет храниться только в памяти процесса",
			zap.String("address", cfg.Redis.Address),
			zap.Error(err),
		)
		_ = redisClient.Close()
		return repositories.NewMemoryTokenRepository()
	}
	return repositories.NewRedisTokenRepository(redisClient, cfg.Session.TokenKey)
}
