package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"idvex/internal/config"
	"idvex/internal/handler"
	"idvex/internal/router"
	"idvex/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	fetchSvc := service.NewFetchService(cfg.Upstream)

	// Initialize handlers
	extractH := handler.NewExtractHandler(cfg.App.MaxUploadBytes)
	fetchH := handler.NewFetchHandler(fetchSvc)
	tokenH := handler.NewTokenHandler()
	docsH := handler.NewDocsHandler()
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, extractH, fetchH, tokenH, docsH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
