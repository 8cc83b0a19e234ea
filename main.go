package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path"

	"github.com/maduaionlabs/bountiful-api/config"
	"github.com/maduaionlabs/bountiful-api/dataset"
	"github.com/maduaionlabs/bountiful-api/handler"

	"github.com/labstack/echo/v4"
)

// main is the entry point of the API. It loads the configuration file
// (path overridable via BOUNTIFUL_CONFIG), loads the dataset and starts
// the Echo server.
func main() {
	configPath := os.Getenv("BOUNTIFUL_CONFIG")
	if configPath == "" {
		configPath = "config.yml"
	}
	Serve(configPath)
}

// Serve loads the configuration and dataset, sets up routes, and starts
// the Echo server. The dataset is loaded eagerly; the process refuses to
// serve traffic without it.
func Serve(configPath string) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	h, err := InitHandler(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize handler: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = handler.JSONSerializer{}
	SetupRoutes(e, h)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Server.Port)))
}

// InitHandler creates the dataset source and store from the configuration,
// loads the table, and returns the configured handler.
func InitHandler(cfg *config.Config, logger *slog.Logger) (*handler.Handler, error) {
	source, err := dataset.NewSource(cfg.Source.Mode, cfg.CSV.Folder, dataset.S3Config{
		Endpoint:        cfg.S3.Endpoint,
		Region:          cfg.S3.Region,
		Bucket:          cfg.S3.Bucket,
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset source: %w", err)
	}

	// Local sources resolve the filename against the configured folder;
	// for S3 the folder becomes the key prefix.
	filePath := cfg.CSV.Filename
	if cfg.Source.Mode == dataset.SOURCE_MODE_S3 && cfg.CSV.Folder != "" {
		filePath = path.Join(cfg.CSV.Folder, cfg.CSV.Filename)
	}

	store := dataset.NewStore(source, filePath)
	table, err := store.Table()
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	logger.Info("Dataset loaded", "file", filePath, "records", len(table.Rows), "columns", len(table.Columns))

	return handler.NewHandler(store, logger), nil
}
