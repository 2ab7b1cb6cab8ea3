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
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/facades"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/handlers"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/jwt"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/repositories"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Catalog sources selectable with CATALOG_SOURCE.
const (
	catalogSourceStatic = "static"
	catalogSourceRemote = "remote"
)

// Session stores selectable with SESSION_STORE.
const (
	sessionStoreMemory = "memory"
	sessionStoreRedis  = "redis"
)

// dashboardEvictionInterval is how often idle dashboard views are swept.
const dashboardEvictionInterval = time.Minute

func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		apiURL, apiTimeoutSecond, apiLegacyConvert,
		catalogSource, exchangeRateAPIURL, exchangeRateAPIKey,
		sessionStore, sessionSecretKey, sessionExpSecond,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		apiURL, apiTimeoutSecond, apiLegacyConvert,
		catalogSource, exchangeRateAPIURL, exchangeRateAPIKey,
		sessionStore, sessionSecretKey, sessionExpSecond,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, remote API, catalog, session and Redis configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	apiURL string, apiTimeoutSecond int, apiLegacyConvert bool,
	catalogSource, exchangeRateAPIURL, exchangeRateAPIKey string,
	sessionStore, sessionSecretKey string, sessionExpSecond int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
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
	appPort = getEnv("APP_PORT", "3000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Remote API config
	apiURL = getEnv("API_URL", "http://localhost:8080")
	if apiTimeoutSecond, err = strconv.Atoi(getEnv("API_TIMEOUT_SECOND", "10")); err != nil {
		return
	}
	if apiLegacyConvert, err = strconv.ParseBool(getEnv("API_LEGACY_CONVERT", "false")); err != nil {
		return
	}

	// Currency catalog config
	catalogSource = getEnv("CATALOG_SOURCE", catalogSourceStatic)
	if catalogSource != catalogSourceStatic && catalogSource != catalogSourceRemote {
		err = fmt.Errorf("unknown CATALOG_SOURCE %q", catalogSource)
		return
	}
	exchangeRateAPIURL = getEnv("EXCHANGE_RATE_API_URL", facades.DefaultExchangeRateAPIURL)
	exchangeRateAPIKey = getEnv("EXCHANGE_RATE_API_KEY", "")

	// Session config
	sessionStore = getEnv("SESSION_STORE", sessionStoreMemory)
	if sessionStore != sessionStoreMemory && sessionStore != sessionStoreRedis {
		err = fmt.Errorf("unknown SESSION_STORE %q", sessionStore)
		return
	}
	sessionSecretKey = getEnv("SESSION_SECRET_KEY", "my_session_secret_key")
	if sessionExpSecond, err = strconv.Atoi(getEnv("SESSION_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	return
}

// run initializes the logger, session store, remote clients and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	apiURL string, apiTimeoutSecond int, apiLegacyConvert bool,
	catalogSource, exchangeRateAPIURL, exchangeRateAPIKey string,
	sessionStore, sessionSecretKey string, sessionExpSecond int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	sessionExp := time.Duration(sessionExpSecond) * time.Second

	// Session token store
	var tokenStore services.TokenStore
	switch sessionStore {
	case sessionStoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		tokenStore = repositories.NewSessionRedisRepository(rdb, sessionExp)
	default:
		tokenStore = repositories.NewSessionMemoryRepository()
	}

	// Remote clients
	httpClient := &http.Client{Timeout: time.Duration(apiTimeoutSecond) * time.Second}
	currencyAPI := facades.NewCurrencyAPIClient(httpClient, apiURL, facades.WithLegacyConvert(apiLegacyConvert))

	var catalog services.CatalogProvider = services.NewStaticCatalog()
	var dashboardOpts []services.DashboardOpt
	switch {
	case apiLegacyConvert:
		catalog = services.FixedPairCatalog
		dashboardOpts = append(dashboardOpts, services.WithFixedPair())
	case catalogSource == catalogSourceRemote:
		catalog = facades.NewExchangeRateAPIFacade(httpClient, exchangeRateAPIURL, exchangeRateAPIKey)
	}

	dashboardOpts = append(dashboardOpts, services.WithIdleTTL(sessionExp))

	// Initialize services
	sessionService := services.NewSessionService(tokenStore, currencyAPI)
	dashboardService := services.NewDashboardService(currencyAPI, catalog, dashboardOpts...)
	go dashboardService.RunEviction(ctx, dashboardEvictionInterval)
	sessionCodec := jwt.New(
		jwt.WithSecretKey(sessionSecretKey),
		jwt.WithExpiration(sessionExp),
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.SessionMiddleware(sessionCodec, sessionService, sessionExp))

	// Public routes
	r.Get("/", handlers.NewIndexHandler())
	r.Get("/signin", handlers.NewSignInPageHandler())
	r.Post("/signin", handlers.NewSignInHandler(middlewares.SessionFromContext, sessionService))
	r.Get("/signup", handlers.NewSignUpPageHandler())
	r.Post("/signup", handlers.NewSignUpHandler(sessionService))
	r.Post("/logout", handlers.NewLogoutHandler(middlewares.SessionFromContext, sessionService, dashboardService))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RouteGuard(dashboardService))
		r.Get("/dashboard", handlers.NewDashboardHandler(middlewares.SessionFromContext, dashboardService))
		r.Post("/dashboard/convert", handlers.NewDashboardConvertHandler(middlewares.SessionFromContext, dashboardService))
		r.Get("/dashboard/state", handlers.NewDashboardStateHandler(middlewares.SessionFromContext, dashboardService))
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	return serve(ctx, srv)
}

// serve runs srv until ctx is cancelled or a termination signal arrives.
func serve(ctx context.Context, srv *http.Server) error {
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
