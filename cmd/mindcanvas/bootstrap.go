package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mindcanvas/app/pkg/adapter"
	"mindcanvas/app/pkg/cli"
	"mindcanvas/app/pkg/config"
	"mindcanvas/app/pkg/data"
	"mindcanvas/app/pkg/log"
	"mindcanvas/app/pkg/session"
	"mindcanvas/app/pkg/storage"
)

// bootstrap initializes and runs the Mindcanvas application.
// It loads configuration, initializes components (logger, storage, data
// manager, session manager, adapter manager, CLI adapter), runs the CLI,
// and handles graceful shutdown.
func bootstrap() error {
	// Set up channel to receive interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Load configuration
	if err := config.ConfigLoad(); err != nil {
		return fmt.Errorf("failed to load configuration: %v", err)
	}
	cfg := config.ConfigGet()

	// Initialize logger
	logger, err := log.NewLogger(cfg, log.LevelInfo)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close logger: %v\n", err)
		}
	}()

	logger.Info(context.Background(), "Application started", log.Fields{"config": cfg})

	// Initialize storage
	store, err := storage.NewStorage(cfg, logger)
	if err != nil {
		logger.Error(context.Background(), "Failed to initialize storage", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize storage: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error(context.Background(), "Failed to close storage", log.Fields{"error": err})
		}
	}()

	// Initialize data manager
	dataManager, err := data.NewDataManager(store, cfg, logger)
	if err != nil {
		logger.Error(context.Background(), "Failed to initialize data manager", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize data manager: %v", err)
	}

	// Initialize session manager
	sessionManager := session.NewSessionManager(dataManager, logger)
	defer sessionManager.StopCleanupRoutine()

	// Initialize adapter manager and CLI adapter
	adapterManager := adapter.NewAdapterManager(sessionManager, logger)
	defer adapterManager.Shutdown()

	cliAdapter := adapter.NewCLIAdapter(adapterManager, logger)

	// Initialize CLI
	cliInstance, err := cli.NewCLI(cliAdapter, logger)
	if err != nil {
		logger.Error(context.Background(), "Failed to initialize CLI", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize CLI: %v", err)
	}

	// Set up graceful shutdown
	go func() {
		<-sigChan
		logger.Info(context.Background(), "Received interrupt signal, shutting down", nil)
		fmt.Println("\nReceived interrupt signal. Shutting down...")
		cliInstance.Stop()
	}()

	// Run CLI
	if err := cliInstance.Run(); err != nil {
		logger.Error(context.Background(), "CLI error", log.Fields{"error": err})
		return fmt.Errorf("CLI error: %v", err)
	}

	logger.Info(context.Background(), "Application shutting down", nil)
	fmt.Println("Goodbye!")

	return nil
}
