package main

import (
	"log"
	"os"

	"github.com/safar/retail-chain/internal/config"
	"github.com/safar/retail-chain/internal/logger"
	"github.com/safar/retail-chain/internal/seed"
	"github.com/safar/retail-chain/internal/shell"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	logr, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Create logger: %v", err)
	}
	defer logr.Sync()

	fixture, err := seed.Load(cfg.Fixture.Path)
	if err != nil {
		logr.Fatal("Load fixture", zap.String("path", cfg.Fixture.Path), zap.Error(err))
	}

	c, err := fixture.Build(logr)
	if err != nil {
		logr.Fatal("Build chain", zap.Error(err))
	}

	if err := shell.New(c, os.Stdin, os.Stdout, logr).Run(); err != nil {
		logr.Fatal("Shell error", zap.Error(err))
	}
}
