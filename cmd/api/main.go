package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"silentblock/internal/application/service"
	"silentblock/internal/infrastructure/database/mongodb"
	"silentblock/internal/infrastructure/database/postgres"
	"silentblock/internal/infrastructure/dispatch"
	"silentblock/internal/infrastructure/supabase"
	"silentblock/internal/interfaces/api/handler"
	"silentblock/internal/interfaces/api/router"
	"silentblock/internal/pkg/config"
	"silentblock/internal/pkg/logger"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(apiServer *http.Server, log zerolog.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if err := mongodb.CloseDB(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error closing mongodb connection")
	}
	if err := postgres.CloseDB(); err != nil {
		log.Error().Err(err).Msg("error closing trigger store connection")
	}

	log.Info().Msg("server exiting")
	done <- true
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("silentblock-api", "info")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New("silentblock-api", cfg.LogLevel)

	// --- Infrastructure ---
	db, err := mongodb.NewDB(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to block store")
	}
	blockRepo := mongodb.NewBlockRepository(db)

	var triggerDB *gorm.DB
	if cfg.TriggerDSN != "" {
		triggerDB, err = postgres.NewDB(cfg.TriggerDSN)
		if err != nil {
			// Best-effort store: the API serves without it.
			log.Warn().Err(err).Msg("trigger store unavailable, fanout disabled")
		}
	} else {
		log.Warn().Msg("TRIGGER_DB_DSN not set, trigger fanout disabled")
	}
	triggerRepo := postgres.NewScheduleTriggerRepository(triggerDB)

	supabaseClient := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, log)
	dispatcher := dispatch.NewProcessDispatcher(cfg.NotifierBin, log)

	// --- Application Services ---
	authSvc := service.NewAuthService(supabaseClient, log)
	blockSvc := service.NewBlockService(blockRepo, triggerRepo, dispatcher, log)

	// --- API Handlers & Router ---
	blockHandler := handler.NewBlockHandler(authSvc, blockSvc, log)
	echoRouter := router.NewRouter(&router.Config{
		BlockHandler: blockHandler,
		Logger:       log,
	})

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, log, done)

	log.Info().Int("port", cfg.Port).Msg("server starting")
	if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server error")
	}

	<-done
	log.Info().Msg("graceful shutdown complete")
}
