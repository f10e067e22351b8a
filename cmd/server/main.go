package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"snipes-server/internal/agent"
	"snipes-server/internal/engine"
	"snipes-server/internal/network"
	"snipes-server/internal/server"
	"snipes-server/internal/version"
	"snipes-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var autopilot bool
	// Флаг -seed перекрывает SNIPES_SEED. 0 - оставить то, что пришло из окружения.
	flag.Int64Var(&seed, "seed", 0, "Master seed for snipe directions (0 keeps env/random)")
	flag.BoolVar(&autopilot, "autopilot", false, "Let a bot drive the hero")
	flag.Parse()

	logger.Log.Info("Starting Snipes...")
	logger.Log.Info(version.String())

	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using Master Seed: %d", cfg.Seed)
	}

	port := os.Getenv("SNIPES_PORT")
	if port == "" {
		port = "8080"
	}

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Инициализация ядра с конфигом
	gameService := engine.NewService(cfg, network.NewBroadcaster())

	if autopilot {
		bot := agent.NewBot(gameService, cfg.Seed+1)
		go bot.Run(ctx)
	}
	go gameService.Run(ctx)

	// 3. Запуск сервера. Блокируется до сигнала.
	srv := server.New(gameService, port)
	if err := srv.Run(ctx); err != nil {
		logger.Log.Fatal("Server error: ", err)
	}

	logger.Log.Info("Done.")
}
