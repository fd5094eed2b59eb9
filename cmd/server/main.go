package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"contacts/docs" // swagger docs
	"contacts/internal/config"
	"contacts/internal/db"
	"contacts/internal/handler"
	"contacts/internal/logger"
	"contacts/internal/repository"
	"contacts/internal/router"
	"contacts/internal/service"
)

// @title Contacts API
// @version 1.0
// @description Contacts management API with email uniqueness and problem-details errors.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv, cfg.LogLevel)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, db.Options{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("database init")
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	e := echo.New()
	e.HideBanner = true

	contactRepo := repository.NewContactRepository(gormDB)
	contactService := service.NewContactService(contactRepo, service.NewContactValidator())

	router.Register(
		e,
		cfg,
		handler.NewContactHandler(contactService),
		handler.NewHealthHandler(func(ctx context.Context) error { return db.Ping(ctx, gormDB) }),
	)

	docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort
	log.Info().Str("url", "http://localhost:"+cfg.ServerPort+"/swagger/index.html").Msg("swagger documentation available")

	serve(e, ":"+cfg.ServerPort)
}

func serve(e *echo.Echo, addr string) {
	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
}
