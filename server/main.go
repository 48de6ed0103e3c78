package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/akshatha300/iris-classifier/pkg/log"
	"github.com/akshatha300/iris-classifier/server/charts"
	"github.com/akshatha300/iris-classifier/server/dataset"
	"github.com/akshatha300/iris-classifier/server/web"
)

const defaultConfigPath = "config.yaml"

func main() {
	cfg, err := Load(defaultConfigPath)
	if err != nil {
		fmt.Printf("error loading config: %v\n", err)
		return
	}

	logger, err := log.Setup("ratings-server", cfg.Debug, cfg.LogFile)
	if err != nil {
		fmt.Printf("error creating logger: %v\n", err)
		return
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader := dataset.NewLoader(cfg.DatasetPath, cfg.Aliases)
	renderer := charts.NewRenderer(cfg.StaticDir)

	// Load once up front so a bad dataset path surfaces immediately,
	// and have the charts ready before the first request comes in.
	movies, err := loader.Load()
	if err != nil {
		slog.Error("error loading dataset", slog.String("error", err.Error()))
		return
	}
	slog.Info("dataset loaded",
		slog.String("path", cfg.DatasetPath),
		slog.Int("movies", len(movies)))

	if err := renderer.RenderAll(ctx, movies); err != nil {
		slog.Error("error rendering charts", slog.String("error", err.Error()))
		return
	}

	server, err := web.NewServer(web.Config{
		Addr:      cfg.Addr,
		StaticDir: cfg.StaticDir,
		Debug:     cfg.Debug,
	}, loader, renderer)
	if err != nil {
		slog.Error("error creating server", slog.String("error", err.Error()))
		return
	}

	if err := server.Run(ctx); err != nil {
		slog.Error("server stopped with error", slog.String("error", err.Error()))
	}
}
