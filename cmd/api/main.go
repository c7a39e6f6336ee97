package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Rai-jal/citizen-voice-api/internal/config"
	"github.com/Rai-jal/citizen-voice-api/internal/domain/admin"
	"github.com/Rai-jal/citizen-voice-api/internal/domain/assistant"
	"github.com/Rai-jal/citizen-voice-api/internal/domain/auth"
	"github.com/Rai-jal/citizen-voice-api/internal/domain/directory"
	"github.com/Rai-jal/citizen-voice-api/internal/domain/factcheck"
	"github.com/Rai-jal/citizen-voice-api/internal/domain/news"
	"github.com/Rai-jal/citizen-voice-api/internal/domain/opportunity"
	"github.com/Rai-jal/citizen-voice-api/internal/domain/report"
	"github.com/Rai-jal/citizen-voice-api/internal/domain/user"
	"github.com/Rai-jal/citizen-voice-api/internal/middleware"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/database"
	imgpkg "github.com/Rai-jal/citizen-voice-api/internal/pkg/imaging"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/jwt"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/openai"
	pkgresponse "github.com/Rai-jal/citizen-voice-api/internal/pkg/response"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		if cfg.IsProduction() {
			log.Fatal().Err(err).Msg("Invalid configuration")
		}
		log.Warn().Err(err).Msg("Configuration incomplete, continuing in development")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Citizen Voice API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	// ---------- Storage (one instance per bucket) ----------
	reportStorage := newBucketStorage(cfg, cfg.BucketReportAttachments)
	factCheckStorage := newBucketStorage(cfg, cfg.BucketFactChecks)
	newsStorage := newBucketStorage(cfg, cfg.BucketNewsImages)

	aiClient := openai.NewClient(openai.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
	})

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	adminRepo := admin.NewRepository(db)
	reportRepo := report.NewRepository(db)
	factCheckRepo := factcheck.NewRepository(db)
	newsRepo := news.NewRepository(db)
	directoryRepo := directory.NewRepository(db)
	opportunityRepo := opportunity.NewRepository(db)

	// ---------- Services ----------
	authService := auth.NewService(userRepo, jwtService, redis)
	adminService := admin.NewService(adminRepo)
	reportService := report.NewService(reportRepo, reportStorage, adminService, cfg.MaxUploadMB)
	factCheckService := factcheck.NewService(factCheckRepo, factCheckStorage, adminService, cfg.MaxUploadMB)
	newsService := news.NewService(newsRepo, newsStorage, redis, imgpkg.NewProcessor(imgpkg.DefaultConfig()))
	directoryService := directory.NewService(directoryRepo)
	opportunityService := opportunity.NewService(opportunityRepo)
	assistantService := assistant.NewService(aiClient)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	reportHandler := report.NewHandler(reportService)
	factCheckHandler := factcheck.NewHandler(factCheckService)
	newsHandler := news.NewHandler(newsService)
	directoryHandler := directory.NewHandler(directoryService)
	opportunityHandler := opportunity.NewHandler(opportunityService)
	assistantHandler := assistant.NewHandler(assistantService)

	authMiddleware := middleware.Auth(jwtService)
	optionalAuth := middleware.OptionalAuth(jwtService)
	requireAdmin := admin.RequireAdmin(adminService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	// Local storage hands out URLs under /files, so the API has to
	// serve that tree itself. S3 storage returns bucket URLs instead.
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		fileServer := http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.StoragePath)))
		r.Get("/files/*", fileServer.ServeHTTP)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", auth.Routes(authHandler, authMiddleware))
		r.Mount("/reports", report.Routes(reportHandler, optionalAuth))
		r.Mount("/factchecks", factcheck.Routes(factCheckHandler, optionalAuth))
		r.Mount("/news", news.Routes(newsHandler))
		r.Mount("/services", directory.Routes(directoryHandler))
		r.Mount("/opportunities", opportunity.Routes(opportunityHandler))
		r.Mount("/assistant", assistant.Routes(assistantHandler))

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(requireAdmin)

			r.With(admin.RequirePermission(adminService, admin.PermModerateReports)).
				Mount("/reports", report.AdminRoutes(reportHandler))
			r.With(admin.RequirePermission(adminService, admin.PermReviewFactChecks)).
				Mount("/factchecks", factcheck.AdminRoutes(factCheckHandler))
			r.With(admin.RequirePermission(adminService, admin.PermManageNews)).
				Mount("/news", news.AdminRoutes(newsHandler))
			r.With(admin.RequirePermission(adminService, admin.PermManageDirectory)).
				Mount("/services", directory.AdminRoutes(directoryHandler))
			r.With(admin.RequirePermission(adminService, admin.PermManageOpportunities)).
				Mount("/opportunities", opportunity.AdminRoutes(opportunityHandler))
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// newBucketStorage prefers S3 and falls back to local disk when no
// endpoint or credentials are configured.
func newBucketStorage(cfg *config.Config, bucket string) storage.Storage {
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		st, err := storage.NewS3Storage(storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		}, bucket)
		if err != nil {
			log.Fatal().Err(err).Str("bucket", bucket).Msg("Failed to create S3 storage")
		}
		return st
	}

	st, err := storage.NewLocalStorage(cfg.StoragePath+"/"+bucket, "/files/"+bucket)
	if err != nil {
		log.Fatal().Err(err).Str("bucket", bucket).Msg("Failed to create local storage")
	}
	log.Warn().Str("bucket", bucket).Msg("S3 not configured, using local storage")
	return st
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
