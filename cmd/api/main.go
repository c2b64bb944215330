package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/telmart/console_api/internal/cache"
	"github.com/telmart/console_api/internal/config"
	"github.com/telmart/console_api/internal/database"
	"github.com/telmart/console_api/internal/handler"
	"github.com/telmart/console_api/internal/middleware"
	"github.com/telmart/console_api/internal/repository"
	"github.com/telmart/console_api/internal/service"
	"github.com/telmart/console_api/internal/sse"
	"github.com/telmart/console_api/internal/worker"
	"github.com/telmart/console_api/pkg/catalog"
)

// main is the application entrypoint for the Telmart seller console API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting console api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize caches
	formCache := cache.NewFormCache(redisClient, cfg.Session.FormTTL)
	sessionCache := cache.NewSessionCache(redisClient, cfg.Session.RefreshTTL)
	referenceCache := cache.NewReferenceCache(redisClient)

	// 4. Initialize catalog backend client
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.ConsoleKey, cfg.Catalog.ConsoleSecret)

	// 5. Initialize repositories
	draftRepo := repository.NewDraftRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// 6. Initialize services
	authSvc := service.NewAuthService(catalogClient, sessionRepo, sessionCache, cfg.Session.AccessTTL, cfg.Session.RefreshTTL)
	formSvc := service.NewFormService(catalogClient, formCache, draftRepo, cfg.Session.DraftTTL)
	productSvc := service.NewProductService(catalogClient, referenceCache)
	profileSvc := service.NewProfileService(catalogClient)
	mediaSvc := service.NewMediaService(cfg)

	// 6a. SSE hub and notifier
	hub := sse.NewHub()
	notifier := sse.NewHubNotifier(hub)

	// 7. Initialize handlers
	loginLimiter := middleware.NewLoginRateLimiter()
	handlers := &Handlers{
		Health:  handler.NewHealthHandler(catalogClient),
		Auth:    handler.NewAuthHandler(authSvc, loginLimiter),
		Profile: handler.NewProfileHandler(profileSvc),
		Product: handler.NewProductHandler(productSvc, notifier),
		Form:    handler.NewFormHandler(formSvc),
		Media:   handler.NewMediaHandler(mediaSvc),
		SSE:     handler.NewSSEHandler(hub),
		Webhook: handler.NewWebhookHandler(notifier, cfg.Catalog.WebhookSecret),
	}

	// 8. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware(authSvc)

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	go worker.NewReferenceSyncWorker(catalogClient, referenceCache, cfg.Worker.ReferenceSyncInterval).Start(ctx)
	go worker.NewCleanupWorker(draftRepo, sessionRepo, cfg.Worker.DraftCleanupInterval).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
	Product *handler.ProductHandler
	Form    *handler.FormHandler
	Media   *handler.MediaHandler
	SSE     *handler.SSEHandler
	Webhook *handler.WebhookHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	// Catalog webhook endpoint (HMAC-verified, no JWT)
	router.POST("/webhook/catalog", handlers.Webhook.HandleCatalogWebhook)

	router.GET("/v1/health", handlers.Health.GetHealth)

	// Auth routes (public)
	auth := router.Group("/v1/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/refresh", handlers.Auth.Refresh)
		auth.POST("/email-verification/request", handlers.Auth.RequestEmailVerification)
		auth.POST("/email-verification/confirm", handlers.Auth.ConfirmEmailVerification)
	}

	// SSE stream authenticates via query-param token inside the handler
	router.GET("/v1/events", handlers.SSE.Stream)

	// Seller routes (protected with console JWT)
	v1 := router.Group("/v1")
	v1.Use(jwtMiddleware.Handle())
	{
		v1.POST("/auth/logout", handlers.Auth.Logout)

		// Seller profile
		v1.GET("/seller/profile", handlers.Profile.GetProfile)
		v1.PUT("/seller/profile", handlers.Profile.UpdateProfile)

		// Reference data
		v1.GET("/sku-families", handlers.Product.GetSkuFamilies)
		v1.GET("/sub-sku-families", handlers.Product.GetSubSkuFamilies)

		// Products
		v1.GET("/products", handlers.Product.GetProducts)
		v1.GET("/products/:id", handlers.Product.GetProduct)
		v1.POST("/products/:id/verify", handlers.Product.VerifyProduct)
		v1.POST("/products/:id/approve", handlers.Product.ApproveProduct)
		v1.GET("/products/:id/history", handlers.Product.GetProductHistory)
		v1.POST("/products/:id/restore", handlers.Product.RestoreProductVersion)

		// Product form sessions
		v1.POST("/forms", handlers.Form.OpenForm)
		v1.GET("/forms/:id", handlers.Form.GetForm)
		v1.DELETE("/forms/:id", handlers.Form.CloseForm)
		v1.PUT("/forms/:id/sku-family", handlers.Form.SelectSkuFamily)
		v1.PUT("/forms/:id/sub-sku-family", handlers.Form.SelectSubSkuFamily)
		v1.PATCH("/forms/:id/fields", handlers.Form.SetFields)
		v1.PUT("/forms/:id/variants", handlers.Form.SetVariants)
		v1.POST("/forms/:id/media", handlers.Form.AttachMedia)
		v1.POST("/forms/:id/submit", handlers.Form.SubmitForm)
		v1.POST("/forms/:id/draft", handlers.Form.SaveDraft)

		// Drafts
		v1.GET("/drafts", handlers.Form.ListDrafts)
		v1.POST("/drafts/:id/resume", handlers.Form.ResumeDraft)
		v1.DELETE("/drafts/:id", handlers.Form.DeleteDraft)

		// Media staging
		v1.POST("/media", handlers.Media.Upload)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
