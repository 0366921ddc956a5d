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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/p2p-loans/internal/handlers"
	"github.com/sbilibin2017/p2p-loans/internal/logger"
	"github.com/sbilibin2017/p2p-loans/internal/middlewares"
	"github.com/sbilibin2017/p2p-loans/internal/repositories"
	"github.com/sbilibin2017/p2p-loans/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title p2p-loans API
// @version 1.0.0
// @description Service for tracking peer-to-peer loans between users
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		mongoURI, mongoDB, mongoTimeout,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		mongoURI, mongoDB, mongoTimeout,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, MongoDB, and logging configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	mongoURI, mongoDB string,
	mongoTimeoutSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// MongoDB config
	mongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDB = getEnv("MONGO_DB", "p2p_loans")
	if mongoTimeoutSecond, err = strconv.Atoi(getEnv("MONGO_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	return
}

// run initializes the logger, MongoDB connection, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	mongoURI, mongoDB string,
	mongoTimeoutSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to MongoDB
	mongoTimeout := time.Duration(mongoTimeoutSecond) * time.Second
	connectCtx, cancelConnect := context.WithTimeout(ctx, mongoTimeout)
	defer cancelConnect()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logger.Log.Fatal("MongoDB connection error:", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Log.Errorw("MongoDB disconnect error", "error", err)
		}
	}()
	if err := client.Ping(connectCtx, nil); err != nil {
		logger.Log.Fatal("MongoDB ping failed:", err)
	}
	logger.Log.Infof("Connected to MongoDB: %s", mongoURI)

	db := client.Database(mongoDB)
	if err := repositories.EnsureIndexes(connectCtx, db); err != nil {
		logger.Log.Fatal("MongoDB index creation failed:", err)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	loanReadRepo := repositories.NewLoanReadRepository(db)
	loanWriteRepo := repositories.NewLoanWriteRepository(db)

	// Initialize services
	sessionService := services.NewSessionService(userReadRepo, userWriteRepo, loanWriteRepo)
	loanService := services.NewLoanService(userReadRepo, loanReadRepo, loanWriteRepo)

	// Initialize handlers
	loginHandler := handlers.NewLoginHandler(sessionService)
	logoutHandler := handlers.NewLogoutHandler(sessionService)
	createLoanHandler := handlers.NewCreateLoanHandler(loanService)
	userLoansHandler := handlers.NewUserLoansHandler(loanService)
	loansBetweenHandler := handlers.NewLoansBetweenHandler(loanService)
	updateLoanHandler := handlers.NewUpdateLoanHandler(loanService)
	deleteLoanHandler := handlers.NewDeleteLoanHandler(loanService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/login", loginHandler)
			r.Post("/logout/{id}", logoutHandler)
		})
		r.Route("/loans", func(r chi.Router) {
			r.Post("/", createLoanHandler)
			r.Get("/{userId}", userLoansHandler)
			r.Get("/{userId}/{otherUserId}", loansBetweenHandler)
			r.Patch("/{loanId}", updateLoanHandler)
			r.Delete("/{loanId}", deleteLoanHandler)
		})
	})

	r.Get("/health", handlers.NewHealthHandler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	r.NotFound(handlers.NewNotFoundHandler())

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
