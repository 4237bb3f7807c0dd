// Package main is the entry point for the marketing site backend.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rtaweb/internal/cache"
	"rtaweb/internal/config"
	"rtaweb/internal/database"
	"rtaweb/internal/handlers"
	"rtaweb/internal/importer"
	"rtaweb/internal/legacy"
	"rtaweb/internal/router"
	"rtaweb/internal/storage"
	"rtaweb/internal/store"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible page cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Connect to S3-compatible object storage (optional — the site works
	// without it, uploads and stored-file cleanup are just disabled).
	var storageClient *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			slog.Info("s3 storage connected",
				"endpoint", cfg.S3Endpoint,
				"bucket", cfg.S3Bucket,
			)
		}
	} else {
		slog.Warn("s3 storage not configured — file uploads disabled")
	}

	// Initialize data stores.
	clientStore := store.NewClientStore(db)
	postStore := store.NewBlogPostStore(db)
	faqStore := store.NewFAQStore(db)
	contactStore := store.NewContactStore(db)
	newsletterStore := store.NewNewsletterStore(db)
	formStore := store.NewFormStore(db)
	logoStore := store.NewLogoStore(db)

	// Legacy data access service — serves the admin API in the shape the
	// previous site's frontend expects.
	svc := legacy.NewService(
		clientStore, postStore, faqStore, contactStore,
		newsletterStore, formStore, logoStore,
		pageCache, storageClient,
	)

	csvImporter := importer.New(clientStore)

	// Create handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(svc, csvImporter, storageClient, clientStore, postStore, contactStore)
	publicHandlers := handlers.NewPublic(svc, postStore, clientStore, faqStore, formStore, logoStore, pageCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(adminHandlers, publicHandlers, cfg.AdminTokenHash)

	// Create the HTTP server with sensible timeouts. WriteTimeout must
	// accommodate multi-megabyte CSV imports and S3 uploads.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
