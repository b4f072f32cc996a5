// ./cmd/ocr-clean/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/book-expert/logger"

	"github.com/book-expert/ocr-clean/internal/config"
	"github.com/book-expert/ocr-clean/internal/pipeline"
)

// configPathEnv optionally overrides the configuration file path;
// when unset, config.DefaultConfigFilename is used.
const configPathEnv = "OCR_CLEAN_CONFIG"

func main() {
	// A temporary logger for the bootstrap process.
	log, err := logger.New(os.TempDir(), "ocr-clean-bootstrap.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create bootstrap logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(os.Getenv(configPathEnv), log)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the final logger based on the loaded configuration.
	log, err = logger.New(cfg.Service.LogDir, "ocr-clean.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create final logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	driver, err := pipeline.NewDriver(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize cleanup pipeline: %v", err)
	}
	defer driver.Close()

	done := make(chan error, 1)

	go func() {
		log.Infof("Starting batch run: input=%s output=%s", cfg.Paths.InputDir, cfg.Paths.OutputDir)
		done <- driver.ProcessDirectory(ctx, cfg.Paths.InputDir, cfg.Paths.OutputDir)
	}()

	select {
	case runErr := <-done:
		if runErr != nil {
			log.Errorf("Batch run failed: %v", runErr)
			cancel()
			os.Exit(1)
		}

		log.Successf("Batch run complete.")
	case <-sigChan:
		log.Infof("Shutdown signal received, gracefully shutting down...")
		cancel()
		time.Sleep(2 * time.Second)
		log.Infof("Shutdown complete.")
	}
}
