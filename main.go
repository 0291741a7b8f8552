package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-cancellation/config"
	"hotel-cancellation/controllers"
	"hotel-cancellation/routes"
	"hotel-cancellation/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	var source services.ArtifactSource
	closeRegistry := func() {}
	switch cfg.ArtifactSource {
	case config.SourceMySQL:
		db, err := config.ConnectDatabase()
		if err != nil {
			log.Fatalf("❌ Artifact registry connect failed: %v", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			closeRegistry = func() {
				if err := sqlDB.Close(); err != nil {
					log.Printf("warning: closing artifact registry: %v", err)
				}
			}
		}
		source = services.NewRegistryService(db, cfg.ArtifactVersion)
		log.Printf("✅ Artifact registry connected (version %q)", cfg.ArtifactVersion)
	default:
		source = services.FileSource{
			ClassifierPath: cfg.ClassifierPath,
			ScalerPath:     cfg.ScalerPath,
			SchemaPath:     cfg.SchemaPath,
		}
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	artifacts, err := services.LoadArtifacts(loadCtx, source)
	cancelLoad()
	// artifacts are read once, the pool is not needed afterwards
	closeRegistry()
	switch {
	case errors.Is(err, services.ErrArtifactsUnavailable):
		log.Printf("❌ %v; serving the blocking error page until restarted", err)
	case err != nil:
		log.Fatalf("❌ Failed to load model artifacts: %v", err)
	default:
		log.Printf("✅ Model artifacts loaded (schema %s, %d columns)", artifacts.Schema.Version(), artifacts.Schema.Len())
	}

	predictionService := services.NewPredictionService(artifacts, err)
	predictionController := controllers.NewPredictionController(predictionService)

	router, err := routes.SetupRouter(predictionController, cfg.CorsOrigins)
	if err != nil {
		log.Fatalf("❌ Router setup failed: %v", err)
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
