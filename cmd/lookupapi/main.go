package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"near_account_lookup/internal/adapters/restapi"
	"near_account_lookup/internal/app"
	"near_account_lookup/internal/config"
	"near_account_lookup/internal/core/domain"
	applogger "near_account_lookup/internal/logger"
)

// main is entry point of application.
func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (default: $"+config.EnvConfigFile+" or "+config.DefaultConfigFilePath+")")
	flag.Parse()

	configPath := config.ResolvePath(*configFile)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewAppLogger(cfg.Logger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Configuration loaded successfully", "configFile", configPath, "network", cfg.Near.Network)

	fallback, err := domain.ParseNetwork(cfg.Near.Network)
	if err != nil {
		logger.Error("Invalid network", "error", err)
		os.Exit(1)
	}
	networks, err := app.NetworkSource(configPath, "", fallback)
	if err != nil {
		logger.Error("Failed to create network source", "error", err)
		os.Exit(1)
	}

	lookupService, err := app.NewLookupService(cfg, networks, logger)
	if err != nil {
		logger.Error("Failed to create lookup service", "error", err)
		os.Exit(1)
	}

	apiServer, err := restapi.NewServer(lookupService, logger, &cfg.Server)
	if err != nil {
		logger.Error("Failed to create API server", "error", err)
		os.Exit(1)
	}

	gracefulShutdown(logger, apiServer)

	logger.Info("Application shut down gracefully.")
}

// gracefulShutdown runs the API server until it fails or the process is signalled, then drains it.
func gracefulShutdown(logger applogger.AppLogger, apiServer *restapi.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		if errServ := apiServer.Start(); errServ != nil && !errors.Is(errServ, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", errServ)
		}
	}()

	select {
	case err := <-errChan:
		logger.Error("Shutting down due to error", "error", err)
	case <-ctx.Done():
		logger.Info("Shutting down due to OS signal...")
	}

	httpShutdownCtx, cancelHTTPShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelHTTPShutdown()

	if err := apiServer.Shutdown(httpShutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
}
