// Package main is the entry point for the skyfountain demo.
package main

import (
	"fmt"
	"os"

	"github.com/gopxl/mainthread/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/skyfountain/internal/app"
	"github.com/Faultbox/skyfountain/internal/config"
	"github.com/Faultbox/skyfountain/internal/logger"
)

func main() {
	code := 0
	mainthread.Run(func() {
		code = run()
	})
	os.Exit(code)
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== skyfountain ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
			return 1
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		return 1
	}
	defer a.Close()

	a.Run()

	logger.Info("closed normally")
	return 0
}
