package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/priyank-sharma/bharat-explorer/internal/api"
	"github.com/priyank-sharma/bharat-explorer/internal/chat"
	"github.com/priyank-sharma/bharat-explorer/internal/config"
	"github.com/priyank-sharma/bharat-explorer/internal/dashboard"
	"github.com/priyank-sharma/bharat-explorer/internal/dataset"
	"github.com/priyank-sharma/bharat-explorer/internal/logger"
	"github.com/priyank-sharma/bharat-explorer/internal/media"
	"github.com/priyank-sharma/bharat-explorer/internal/observability"
	"github.com/priyank-sharma/bharat-explorer/internal/server"
	"github.com/priyank-sharma/bharat-explorer/internal/warehouse"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// API keys and warehouse credentials come from the environment; a local
	// .env is a convenience, not a requirement.
	_ = godotenv.Load()

	cfg := config.FromEnv()

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   strings.ToLower(os.Getenv("LOG_CONSOLE")) == "true",
		Component: "server",
	}, os.Stdout)
	appLog := logger.NewSlog(&zl)

	observability.ExposeBuildInfo(Version)
	appLog.Info("starting bharat-explorer",
		"addr", cfg.Addr,
		"version", Version,
		"warehouse", cfg.Warehouse.Configured(),
		"chat", cfg.Chat.Configured())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog := dataset.NewCatalog(cfg.DatasetTTL)

	var wh *warehouse.Loader
	if cfg.Warehouse.Configured() {
		wh = warehouse.New(appLog, cfg.Warehouse, cfg.WarehouseTimeout)
	}

	var chatSvc *chat.Service
	if cfg.Chat.Configured() {
		svc, err := chat.NewService(ctx, appLog, cfg.Chat)
		if err != nil {
			appLog.Error("chat setup failed, continuing without assistant", "err", err)
		} else {
			chatSvc = svc
		}
	}

	deps := server.Deps{
		Pages:    dashboard.New(appLog, catalog, wh, cfg, chatSvc != nil),
		Handlers: api.New(appLog, catalog, chatSvc, cfg),
		Media:    media.NewProxy(appLog, cfg.MediaHosts, cfg.MediaMaxBytes),
	}

	if err := server.Run(ctx, cfg, appLog, deps); err != nil {
		appLog.Error("server exited with error", "err", err)
		return 1
	}
	appLog.Info("server stopped")
	return 0
}
