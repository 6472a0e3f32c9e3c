package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stridehq/stride/internal/api"
	"github.com/stridehq/stride/internal/cli"
	"github.com/stridehq/stride/internal/config"
	"github.com/stridehq/stride/internal/services"
	"github.com/stridehq/stride/internal/store"
	"github.com/stridehq/stride/internal/textgen"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "reset-passphrase" {
		if err := cli.RunResetPassphrase(cfg.Database.Path); err != nil {
			log.Fatalf("reset passphrase failed: %v", err)
		}
		return
	}

	location := mustLoadLocation(cfg.Time.Zone)
	time.Local = location

	recordStore, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	if err := recordStore.Initialize(); err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	settings := services.NewSettingsService(store.NewCollections(recordStore).Settings)
	if err := settings.EnsurePassphrase(); err != nil {
		log.Fatalf("passphrase seed failed: %v", err)
	}

	handler := api.NewHandler(recordStore, cfg.Auth.SecretKey, location, buildGenerator(cfg.TextProvider), cfg.Auth.CookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Stride",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Stride listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Server.Port, cfg.Database.Path, location.String())
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func buildGenerator(cfg config.TextProviderConfig) textgen.Generator {
	if !cfg.Enabled {
		return textgen.Disabled{}
	}
	endpoints := make([]textgen.Endpoint, 0, len(cfg.Endpoints))
	for _, endpoint := range cfg.Endpoints {
		endpoints = append(endpoints, textgen.Endpoint{URL: endpoint.URL, Provider: endpoint.Provider})
	}
	return textgen.NewHTTPGenerator(nil, endpoints)
}

func configPath() string {
	if value := os.Getenv("STRIDE_CONFIG"); value != "" {
		return value
	}
	return "stride.yaml"
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid time zone %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
