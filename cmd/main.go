package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/segmentio/kafka-go"

	"github.com/avdeev-dev/portfolio-api/internal/handlers"
	authjwt "github.com/avdeev-dev/portfolio-api/internal/jwt"
	"github.com/avdeev-dev/portfolio-api/internal/logger"
	"github.com/avdeev-dev/portfolio-api/internal/mailer"
	"github.com/avdeev-dev/portfolio-api/internal/middlewares"
	"github.com/avdeev-dev/portfolio-api/internal/repositories"
	"github.com/avdeev-dev/portfolio-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"

	_ "github.com/avdeev-dev/portfolio-api/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every environment-driven setting.
type config struct {
	appHost  string
	appPort  string
	appEnv   string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string

	kafkaBroker string
	kafkaTopic  string

	smtpHost     string
	smtpPort     int
	smtpUser     string
	smtpPassword string
	mailFrom     string

	adminEmail    string
	adminPassword string

	jwtSecretKey string
	jwtExpSecond int

	rateLimitMax    int
	rateLimitWindow int

	corsOrigins []string

	resumeCacheTTLSecond int
	resetURLBase         string
}

// @title portfolio-api
// @version 1.0.0
// @description Backend API for a personal portfolio site: auth, projects, blog, contact and resume
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
func main() {
	printBuildInfo()
	configPath, seedAdmin := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg, seedAdmin); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	seed := flag.Bool("seed-admin", false, "Create the admin user from ADMIN_EMAIL/ADMIN_PASSWORD and exit")
	flag.Parse()
	return *c, *seed
}

// parseConfig loads environment variables from a file and returns the
// full application configuration.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	var cfg config
	var err error

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.appEnv = getEnv("APP_ENV", "development")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "portfolio")
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return cfg, err
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return cfg, err
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return cfg, err
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return cfg, err
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return cfg, err
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config; empty broker disables analytics publishing
	cfg.kafkaBroker = getEnv("KAFKA_BROKER", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "portfolio.downloads")

	// SMTP config
	cfg.smtpHost = getEnv("SMTP_HOST", "localhost")
	if cfg.smtpPort, err = getEnvInt("SMTP_PORT", 587); err != nil {
		return cfg, err
	}
	cfg.smtpUser = getEnv("SMTP_USER", "")
	cfg.smtpPassword = getEnv("SMTP_PASSWORD", "")
	cfg.mailFrom = getEnv("MAIL_FROM", "noreply@localhost")

	// Admin config
	cfg.adminEmail = getEnv("ADMIN_EMAIL", "")
	cfg.adminPassword = getEnv("ADMIN_PASSWORD", "")

	// JWT config; default expiry is 30 days
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getEnvInt("JWT_EXP_SECOND", 2592000); err != nil {
		return cfg, err
	}

	// Rate limit config
	if cfg.rateLimitMax, err = getEnvInt("RATE_LIMIT_MAX", 100); err != nil {
		return cfg, err
	}
	if cfg.rateLimitWindow, err = getEnvInt("RATE_LIMIT_WINDOW_SECOND", 900); err != nil {
		return cfg, err
	}

	cfg.corsOrigins = strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",")

	if cfg.resumeCacheTTLSecond, err = getEnvInt("RESUME_CACHE_TTL_SECOND", 300); err != nil {
		return cfg, err
	}
	cfg.resetURLBase = getEnv("RESET_URL_BASE", "http://localhost:3000/reset-password")

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, SMTP and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg config, seedAdmin bool) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel, cfg.appEnv); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Initialize JWT service; the cookie is Secure outside development
	tokenExp := time.Duration(cfg.jwtExpSecond) * time.Second
	tokens := authjwt.New(cfg.jwtSecretKey, tokenExp, cfg.appEnv != "development")

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	projectReadRepo := repositories.NewProjectReadRepository(db)
	projectWriteRepo := repositories.NewProjectWriteRepository(db)
	blogReadRepo := repositories.NewBlogReadRepository(db)
	blogWriteRepo := repositories.NewBlogWriteRepository(db)
	contactReadRepo := repositories.NewContactReadRepository(db)
	contactWriteRepo := repositories.NewContactWriteRepository(db)
	downloadRepo := repositories.NewDownloadWriteRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)

	// Initialize mailer
	smtp := mailer.New(cfg.smtpHost, cfg.smtpPort, cfg.smtpUser, cfg.smtpPassword, cfg.mailFrom)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, smtp, cfg.resetURLBase)

	// Seed mode: create the admin account and exit
	if seedAdmin {
		if err := authService.RegisterAdmin(ctx, cfg.adminEmail, cfg.adminPassword); err != nil {
			logger.Log.Fatal("failed to seed admin user:", err)
		}
		logger.Log.Infof("Admin user %s created", cfg.adminEmail)
		return nil
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()
	rateLimitRepo := repositories.NewRateLimitRepository(rdb)

	// Connect the Kafka analytics writer when a broker is configured
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBroker),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	resumeCacheTTL := time.Duration(cfg.resumeCacheTTLSecond) * time.Second
	resumeCache := gocache.New(resumeCacheTTL, 2*resumeCacheTTL)

	projectService := services.NewProjectService(projectReadRepo, projectWriteRepo)
	blogService := services.NewBlogService(blogReadRepo, blogWriteRepo)
	contactService := services.NewContactService(contactReadRepo, contactWriteRepo, smtp, cfg.adminEmail)
	resumeService := services.NewResumeService(resumeRepo, resumeRepo, downloadRepo, kafkaWriter, resumeCache)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.SecurityHeadersMiddleware())
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.BodyLimitMiddleware())
	r.Use(chimiddleware.Compress(5))
	r.Use(middlewares.RateLimitMiddleware(rateLimitRepo, int64(cfg.rateLimitMax), time.Duration(cfg.rateLimitWindow)*time.Second))

	authMiddleware := middlewares.AuthMiddleware(tokens)
	adminMiddleware := middlewares.RequireAdmin()

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.NewHealthHandler())

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handlers.NewLoginHandler(authService, tokens))
			r.Post("/logout", handlers.NewLogoutHandler(tokens))
			r.Post("/forgot-password", handlers.NewForgotPasswordHandler(authService))
			r.Put("/reset-password/{token}", handlers.NewResetPasswordHandler(authService))
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Get("/me", handlers.NewMeHandler(authService))
			})
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handlers.NewListProjectsHandler(projectService))
			r.Get("/category/{category}", handlers.NewProjectsByCategoryHandler(projectService))
			r.Get("/{id}", handlers.NewGetProjectHandler(projectService))
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware, adminMiddleware)
				r.Post("/", handlers.NewCreateProjectHandler(projectService))
				r.Put("/{id}", handlers.NewUpdateProjectHandler(projectService))
				r.Delete("/{id}", handlers.NewDeleteProjectHandler(projectService))
			})
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", handlers.NewListBlogPostsHandler(blogService))
			r.Get("/featured", handlers.NewFeaturedBlogPostsHandler(blogService))
			r.Get("/category/{category}", handlers.NewBlogPostsByCategoryHandler(blogService))
			r.Get("/{id}", handlers.NewGetBlogPostHandler(blogService))
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware, adminMiddleware)
				r.Post("/", handlers.NewCreateBlogPostHandler(blogService))
				r.Put("/{id}", handlers.NewUpdateBlogPostHandler(blogService))
				r.Delete("/{id}", handlers.NewDeleteBlogPostHandler(blogService))
			})
		})

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", handlers.NewCreateContactHandler(contactService))
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware, adminMiddleware)
				r.Get("/", handlers.NewListContactHandler(contactService))
				r.Get("/{id}", handlers.NewGetContactHandler(contactService))
				r.Put("/{id}", handlers.NewUpdateContactHandler(contactService))
				r.Delete("/{id}", handlers.NewDeleteContactHandler(contactService))
			})
		})

		r.Route("/resume", func(r chi.Router) {
			r.Get("/", handlers.NewGetResumeHandler(resumeService))
			r.Post("/download-track", handlers.NewDownloadTrackHandler(resumeService))
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware, adminMiddleware)
				r.Put("/", handlers.NewUpdateResumeHandler(resumeService))
			})
		})
	})

	r.NotFound(handlers.NewNotFoundHandler())
	r.MethodNotAllowed(handlers.NewMethodNotAllowedHandler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
