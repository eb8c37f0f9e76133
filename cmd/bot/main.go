package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dmarket-arbitrage-bot/internal/config"
	"dmarket-arbitrage-bot/internal/database"
	"dmarket-arbitrage-bot/internal/dmarket"
	"dmarket-arbitrage-bot/internal/logger"
	"dmarket-arbitrage-bot/internal/trader"
	"dmarket-arbitrage-bot/internal/waxpeer"
	"go.uber.org/zap"
)

func main() {
	// Load application configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		// We can't use the logger here because it's not initialized yet.
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("Configuration loaded")

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connection successful and schema migrated.")

	// Initialize marketplace clients
	market, err := dmarket.NewRestClient(&cfg.DMarket, log)
	if err != nil {
		log.Fatal("Failed to create DMarket client", zap.Error(err))
	}
	if _, err := market.GetBalance(); err != nil {
		log.Fatal("Failed to connect to DMarket API", zap.Error(err))
	}
	log.Info("Successfully connected to DMarket API.")

	quotes := waxpeer.NewClient(&cfg.Waxpeer, log)

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		log.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	// Initialize and run the scanning engine
	engine, err := trader.NewEngine(log, &cfg, market, quotes, db)
	if err != nil {
		log.Fatal("Failed to create engine", zap.Error(err))
	}

	api := trader.NewAPIServer(engine, log)
	api.Start()
	defer func() {
		if err := api.Stop(context.Background()); err != nil {
			log.Error("Failed to stop API server", zap.Error(err))
		}
	}()

	engine.Run(ctx)

	log.Info("Bot has been shut down.")
}
