// The notifier delivers silent-block notifications. It is spawned by the API
// as a detached one-shot process with a block id argument, and can also run
// as a long-lived sweeper (-sweep) that periodically delivers anything due.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"silentblock/internal/application/service"
	"silentblock/internal/infrastructure/database/mongodb"
	"silentblock/internal/infrastructure/line"
	"silentblock/internal/infrastructure/scheduler"
	"silentblock/internal/pkg/config"
	"silentblock/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func main() {
	sweep := flag.Bool("sweep", false, "run as a periodic sweeper instead of one-shot delivery")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("silentblock-notifier", "info")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New("silentblock-notifier", cfg.LogLevel)

	ctx := context.Background()
	db, err := mongodb.NewDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to block store")
	}
	blockRepo := mongodb.NewBlockRepository(db)

	lineClient, err := line.NewClient(cfg.LineChannelSecret, cfg.LineChannelToken, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create LINE client")
	}

	if *sweep {
		sched := scheduler.NewScheduler(log)
		notifier := service.NewNotifierService(blockRepo, lineClient, sched,
			cfg.LineNotifyTo, cfg.NotifyLead, cfg.SweepInterval, log)

		notifier.Sweep(ctx)
		if err := notifier.StartSweep(); err != nil {
			log.Fatal().Err(err).Msg("failed to start sweep")
		}

		sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-sigCtx.Done()

		notifier.Stop()
		if err := mongodb.CloseDB(ctx); err != nil {
			log.Error().Err(err).Msg("error closing mongodb connection")
		}
		return
	}

	blockID := flag.Arg(0)
	if blockID == "" {
		log.Fatal().Msg("usage: notifier [-sweep] <block-id>")
	}

	notifier := service.NewNotifierService(blockRepo, lineClient, nil,
		cfg.LineNotifyTo, cfg.NotifyLead, cfg.SweepInterval, log)
	if err := notifier.NotifyBlock(ctx, blockID); err != nil {
		log.Error().Err(err).Str("block_id", blockID).Msg("notification failed")
		_ = mongodb.CloseDB(ctx)
		os.Exit(1)
	}
	if err := mongodb.CloseDB(ctx); err != nil {
		log.Error().Err(err).Msg("error closing mongodb connection")
	}
}
