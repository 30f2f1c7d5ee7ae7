package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sitevoice/complaints-server/src/config"
	"github.com/sitevoice/complaints-server/src/database"
	"github.com/sitevoice/complaints-server/src/handlers"
	"github.com/sitevoice/complaints-server/src/logging"
	"github.com/sitevoice/complaints-server/src/middleware"
	"github.com/sitevoice/complaints-server/src/repositories/postgres"
	"github.com/sitevoice/complaints-server/src/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	if cfg.UsingFallbackSecret() {
		log.Warn().Msg("SESSION_SECRET is not set, using insecure fallback - do not run this in production")
	}
	if !cfg.CookieSecure {
		log.Warn().Msg("session cookie is not marked Secure (COOKIE_SECURE=false) - enable it behind HTTPS")
	}

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Initialize repositories and services
	complaintRepo := postgres.NewComplaintRepository(db.GetPool())
	adminRepo := postgres.NewAdminRepository(db.GetPool())
	sessionRepo := postgres.NewSessionRepository(db.GetPool())

	uploadService := services.NewUploadService(cfg.UploadDir, cfg.MaxUploadBytes)
	complaintService := services.NewComplaintService(complaintRepo, uploadService)
	adminService := services.NewAdminService(adminRepo)
	sessionService := services.NewSessionService(sessionRepo, cfg.SessionSecret)
	cleanupService := services.NewCleanupService(sessionService, cfg.EnableSessionCleanup)

	// Auto-seed admin on first run (if ADMIN_EMAIL and ADMIN_PASSWORD are set)
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		exists, err := adminService.HasAdmin(context.Background(), cfg.AdminEmail)
		if err != nil {
			log.Error().Err(err).Msg("failed to check for existing admin")
		} else if !exists {
			if _, err := adminService.CreateAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
				log.Error().Err(err).Msg("failed to create initial admin")
			} else {
				log.Info().Str("email", cfg.AdminEmail).Msg("initial admin created")
			}
		}
	}

	// Start background session cleanup
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	cleanupService.Start(cleanupCtx)

	// Create Gin router
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	setupRoutes(router, db, cfg, complaintService, adminService, sessionService, uploadService)

	// HTTP server with timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	cleanupService.Stop()

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(
	router *gin.Engine,
	db *database.Database,
	cfg *config.Config,
	complaintService *services.ComplaintService,
	adminService *services.AdminService,
	sessionService *services.SessionService,
	uploadService *services.UploadService,
) {
	healthHandler := handlers.NewHealthHandler(db)
	complaintHandler := handlers.NewComplaintHandler(complaintService, uploadService)
	adminHandler := handlers.NewAdminHandler(adminService, sessionService, cfg.CookieSecure)

	requireAdmin := middleware.RequireAdmin(sessionService)

	// Health check endpoints
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)

	// Uploaded images, served read-only
	router.Static(services.PublicPathPrefix, uploadService.Dir())

	api := router.Group("/api")
	{
		// Public complaint intake
		api.POST("/complaints", complaintHandler.HandleCreateComplaint)

		// Admin-only complaint management
		api.GET("/complaints", requireAdmin, complaintHandler.HandleListComplaints)
		api.DELETE("/complaints/:id", requireAdmin, complaintHandler.HandleDeleteComplaint)

		// Admin authentication
		admin := api.Group("/admin")
		{
			admin.POST("/login", middleware.AuthRateLimitMiddleware(), adminHandler.HandleLogin)
			admin.POST("/logout", adminHandler.HandleLogout)
			admin.GET("/me", requireAdmin, adminHandler.HandleMe)

			// Bootstrap endpoint for initial provisioning, deliberately unauthenticated
			admin.POST("/setup", middleware.AuthRateLimitMiddleware(), adminHandler.HandleSetup)
		}
	}
}

func corsConfig(allowedOrigins string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if allowedOrigins == "" {
		// Development default: same-host frontends only
		cfg.AllowOriginFunc = func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		}
		return cfg
	}

	cfg.AllowOrigins = strings.Split(allowedOrigins, ",")
	return cfg
}
