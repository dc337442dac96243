package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"mainstreet/config"
	_ "mainstreet/docs"
	authadapter "mainstreet/internal/adapters/auth"
	"mainstreet/internal/adapters/email"
	"mainstreet/internal/adapters/sponsorfeed"
	"mainstreet/internal/cache"
	"mainstreet/internal/content"
	delivery "mainstreet/internal/delivery/http"
	"mainstreet/internal/delivery/http/controllers"
	"mainstreet/internal/delivery/http/middleware"
	"mainstreet/internal/repository/postgres"
	"mainstreet/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Main Street API
// @version 1.0
// @description Backend for the Main Street community organization site.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	contentRepo, err := content.Load(cfg.ContentDir, logger)
	if err != nil {
		logger.Error("load content", "dir", cfg.ContentDir, "err", err)
		os.Exit(1)
	}

	defaults, err := config.LoadFormDefaults(cfg.FormDefaultsFile)
	if err != nil {
		logger.Error("load form defaults", "err", err)
		os.Exit(1)
	}

	var store cache.Store
	if cfg.RedisAddr != "" {
		store = cache.NewRedisStore(cfg.RedisAddr, "mainstreet")
	} else {
		store = cache.NewMemoryStore()
	}
	feedCache := cache.New(store, logger)
	feed := sponsorfeed.New(cfg.SponsorFeedURL, cfg.SponsorFeedTTL, feedCache, logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mailer.Provider,
		FromAddress: cfg.Mailer.FromAddress,
		FromName:    cfg.Mailer.FromName,
		SES: email.SESConfig{
			Region:          cfg.Mailer.SESRegion,
			AccessKeyID:     cfg.Mailer.SESAccessKeyID,
			SecretAccessKey: cfg.Mailer.SESSecretAccess,
		},
	})
	if err != nil {
		logger.Error("configure mailer", "err", err)
		os.Exit(1)
	}

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	businessRepo := postgres.NewBusinessRepository(db)
	sponsorRepo := postgres.NewSponsorRepository(db)
	vehicleRepo := postgres.NewVehicleRegistrationRepository(db)
	vendorRepo := postgres.NewVendorRegistrationRepository(db)
	inquiryRepo := postgres.NewSponsorshipInquiryRepository(db)
	contactRepo := postgres.NewContactMessageRepository(db)
	adminDataRepo := postgres.NewAdminDataRepository(db)
	adminUserRepo := postgres.NewAdminUserRepository(db)

	// Adapters
	hasher := authadapter.NewBcryptHasher(10)
	issuer := authadapter.NewJWTIssuer(cfg.JWTSecret)
	verifier := authadapter.NewJWTVerifier(cfg.JWTSecret)

	// Services
	notifier := services.NewNotificationService(mailer, cfg.Mailer.NotifyAddress, logger)
	eventService := services.NewEventService(contentRepo, eventRepo, defaults, serviceTimeout)
	directoryService := services.NewDirectoryService(businessRepo, defaults, serviceTimeout)
	sponsorService := services.NewSponsorService(sponsorRepo, defaults, serviceTimeout)
	intakeService := services.NewIntakeService(vehicleRepo, vendorRepo, inquiryRepo, contactRepo, notifier, serviceTimeout)
	adminDataService := services.NewAdminDataService(adminDataRepo, serviceTimeout)
	authService := services.NewAuthService(adminUserRepo, hasher, issuer, cfg.TokenExpiry, cfg.AdminPasscode)
	uploadService := services.NewUploadService(cfg.UploadDir, cfg.UploadBaseURL)

	seedAdminUser(logger, cfg, adminUserRepo, hasher)

	limiter := middleware.NewRateLimiter(30, 5)
	mux := delivery.NewRouter(delivery.Controllers{
		Auth:      controllers.NewAuthController(logger, authService),
		Events:    controllers.NewEventController(logger, eventService),
		Business:  controllers.NewBusinessController(logger, directoryService),
		Sponsors:  controllers.NewSponsorController(logger, sponsorService),
		Intake:    controllers.NewIntakeController(logger, intakeService),
		AdminData: controllers.NewAdminDataController(logger, adminDataService),
		Upload:    controllers.NewUploadController(logger, uploadService),
		Content:   controllers.NewContentController(logger, contentRepo, feed),
	}, verifier, limiter, cfg.UploadDir, logger)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("stopped")
}
