package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/indexlabs/indexnode/internal/config"
	"github.com/indexlabs/indexnode/internal/logging"
)

func main() {
	envFile := flag.String("env-file", "", "Optional .env file loaded before the environment is read")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	dev := flag.Bool("dev", false, "Development logging output")
	flag.Parse()

	logger, err := logging.New(*logLevel, *dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			logger.Fatal("failed to load env file",
				zap.String("path", *envFile),
				zap.Error(err))
		}
	}

	env, err := config.Load()
	if err != nil {
		var missing *config.MissingVariableError
		var invalid *config.InvalidFormatError
		switch {
		case errors.As(err, &missing):
			logger.Fatal("missing required environment variable",
				zap.String("name", missing.Name))
		case errors.As(err, &invalid):
			// Log the variable name and cause, never the raw value.
			logger.Fatal("invalid environment variable",
				zap.String("name", invalid.Name),
				zap.Error(invalid.Err))
		default:
			logger.Fatal("failed to load configuration", zap.Error(err))
		}
	}

	mappings := env.Derive()
	logger.Info("mapping configuration loaded", zap.Object("mappings", mappings))
}
