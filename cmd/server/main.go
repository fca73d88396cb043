package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rfavors/Beatrepreneur/internal/config"
	"github.com/rfavors/Beatrepreneur/internal/database"
	"github.com/rfavors/Beatrepreneur/internal/handlers"
	"github.com/rfavors/Beatrepreneur/internal/repository"
	"github.com/rfavors/Beatrepreneur/internal/router"
	"github.com/rfavors/Beatrepreneur/internal/uploader"
)

func main() {
	log.Println("🚀 Starting Beatrepreneur Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Metadata Store ────
	var store repository.Store
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("✗ PostgreSQL connection failed: %v", err)
		}
		defer pool.Close()

		if err := database.RunMigrations(pool, "migrations"); err != nil {
			log.Fatalf("✗ Database migration failed: %v", err)
		}
		store = repository.NewPostgresStore(pool)
		log.Println("✓ PostgreSQL store ready")
	} else {
		store = repository.NewMemStore()
		log.Println("✓ In-memory store ready (contents lost on restart)")
	}

	// ──── Step 3: Initialize Asset Uploader ────
	local := uploader.NewLocalUploader(cfg.StoragePath)
	var uploads uploader.Uploader = local
	if cfg.CloudinaryConfigured() {
		cld, err := uploader.NewCloudinaryUploader(
			cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, local)
		if err != nil {
			log.Fatalf("✗ Cloudinary initialization failed: %v", err)
		}
		uploads = cld
		log.Println("✓ Cloudinary storage configured")
	} else {
		log.Printf("✓ Local storage at %s (Cloudinary not configured)", cfg.StoragePath)
	}

	// ──── Step 4: Initialize Handlers ────
	videoHandler := handlers.NewVideoHandler(store, uploads, local)
	mediaHandler := handlers.NewMediaHandler(store)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(videoHandler, mediaHandler, cfg.StoragePath, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Minute, // 500MB uploads on slow links
		WriteTimeout: 15 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Beatrepreneur Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
