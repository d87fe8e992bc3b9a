// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the BrandVoice Studio server.
// It loads configuration, connects to services, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brandvoice/internal/ai"
	"brandvoice/internal/cache"
	"brandvoice/internal/config"
	"brandvoice/internal/database"
	"brandvoice/internal/email"
	"brandvoice/internal/handlers"
	"brandvoice/internal/jobs"
	"brandvoice/internal/pdf"
	"brandvoice/internal/router"
	"brandvoice/internal/session"
	"brandvoice/internal/storage"
	"brandvoice/internal/store"
	"brandvoice/internal/voice"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL and bring the schema current.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

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

	// Connect to Valkey for sessions and caches.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Data stores.
	userStore := store.NewUserStore(db)
	clientStore := store.NewClientStore(db)
	intakeStore := store.NewIntakeStore(db)
	scriptStore := store.NewScriptStore(db)
	activityStore := store.NewActivityStore(db)
	assetStore := store.NewAssetStore(db)

	// S3-compatible object storage for client video deliverables
	// (optional; asset endpoints report unavailable without it).
	storageClient, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3AssetsBucket)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3AssetsBucket)
	} else {
		slog.Warn("s3 storage not configured - video uploads disabled")
	}

	// AI provider registry for script generation. Falls back to the
	// offline provider when no API key is configured.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai": {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel},
		"claude": {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel},
	})
	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	// Outbound integrations.
	mailer := email.New(cfg.ResendKey, cfg.EmailFrom, cfg.AdminEmail, "http://"+cfg.Addr())
	if !mailer.Enabled() {
		slog.Warn("email not configured - notifications will be logged only")
	}
	ttsClient := voice.New(cfg.ElevenLabsKey)
	pdfRenderer := pdf.New(cfg.PDFRendererURL)

	// Caches for the public site and voice previews.
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
	previewCache := cache.NewPreviewCache(valkeyClient, 0)

	// Background jobs: daily payment reminder sweep and weekly digest.
	jobManager, err := jobs.NewManager(clientStore, mailer)
	if err != nil {
		slog.Error("failed to initialize job scheduler", "error", err)
		os.Exit(1)
	}
	jobManager.Start()
	defer jobManager.Stop()

	// Handler groups.
	adminHandlers := handlers.NewAdmin(clientStore, intakeStore, scriptStore, activityStore, assetStore, userStore, aiRegistry, mailer, pdfRenderer, storageClient)
	authHandlers := handlers.NewAuth(sessionStore, userStore)
	portalHandlers := handlers.NewPortal(userStore, clientStore, scriptStore, assetStore, activityStore)
	publicHandlers := handlers.NewPublic(pageCache, previewCache, ttsClient)

	r := router.New(sessionStore, adminHandlers, authHandlers, portalHandlers, publicHandlers)

	// WriteTimeout must accommodate script generation, which waits on an
	// LLM response for the whole 30-script pack.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
