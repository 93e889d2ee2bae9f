// File: cmd/service/main.go
// @title        LightBnB API
// @version      1.0
// @description  LightBnB 房源搜尋、預約與會員 API
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"os"

	"lightbnb/internal/cache"
	"lightbnb/internal/config"
	"lightbnb/internal/database"
	"lightbnb/internal/logger"
	lbmw "lightbnb/internal/middleware"
	"lightbnb/internal/router"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	_ "lightbnb/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const serviceName = "lightbnb"

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// 以下變數於測試時覆寫
var (
	loadConfig      = config.Load
	initLogger      = logger.Init
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	initLogger(serviceName, cfg.Env)

	if cfg.RunMigrations {
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("migration 執行失敗: %w", err)
		}
		log.Info().Msg("migrations applied")
	}

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	cch, err := newRedisClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer func() {
		if err := cch.Close(); err != nil {
			log.Warn().Err(err).Msg("關閉 Redis 連線失敗")
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(lbmw.RequestLogger())
	e.Use(middleware.Recover())

	router.Setup(e, db, cch)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.Info().Str("addr", cfg.Addr()).Msg("starting server")
	if err := startServer(e, cfg.Addr()); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("service exited")
		exitFunc(1)
	}
}
