package main

// @title           Bookshop Inventory API
// @version         1.0
// @description     Inventory-tracking REST service for a bookshop: authors, books, stock movements and historical balances.

// @host      localhost:8080
// @BasePath  /

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rocky2015aaa/bookshop/internal/config"
	"github.com/rocky2015aaa/bookshop/internal/db"
	"github.com/rocky2015aaa/bookshop/internal/docs"
	"github.com/rocky2015aaa/bookshop/internal/handler"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	cfg := config.Load()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	gin.SetMode(cfg.GinMode)

	database := db.ConnectWithRetry(cfg)
	if err := db.Migrate(database); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}
	log.Info().Msg("database migration completed")

	e := gin.New()
	e.Use(gin.Recovery(), handler.RequestID(), handler.AccessLog())

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	docs.SwaggerInfo.BasePath = "/"

	healthHandler := handler.NewHealthHandler(database, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	root := e.Group("")
	{
		handler.NewAuthorHandler(database).RegisterRoutes(root)
		handler.NewBookHandler(database).RegisterRoutes(root)
		handler.NewInventoryHandler(database).RegisterRoutes(root)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: cors.AllowAll().Handler(e),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
