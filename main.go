package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"go_doc_rpc/bootstrap"
	"go_doc_rpc/config"
	"go_doc_rpc/pkg/logging"
)

func main() {
	// 环境变量
	if err := godotenv.Load(); err != nil {
		logging.Logger.Debug("no .env file loaded", "error", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Logger.Error("fail LoadConfig", "error", err)
		os.Exit(1)
	}
	logging.Init(cfg.App.Environment, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg, nil)
	if err != nil {
		logging.Logger.Error("fail NewApp", "error", err)
		os.Exit(1)
	}
	logging.Logger.Info("servers started",
		"hello_port", cfg.Grpc.HelloPort,
		"document_port", cfg.Grpc.DocumentPort,
		"mode", app.Services.DocService.Mode().String(),
		"backend", app.Services.DocService.BackendName(),
	)

	<-ctx.Done()
	logging.Logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logging.Logger.Error("fail Shutdown", "error", err)
		os.Exit(1)
	}
}
