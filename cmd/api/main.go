package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"mig-catalog/internal/common/pagination"
	pgRepo "mig-catalog/internal/infra/adapter/persistence/postgres"
	"mig-catalog/internal/infra/cache"
	"mig-catalog/internal/infra/db"
	"mig-catalog/internal/infra/stats"
	"mig-catalog/internal/observability/logging"
	"mig-catalog/internal/observability/tracing"
	"mig-catalog/pkg/config"
	"mig-catalog/pkg/ratelimit"

	itemUC "mig-catalog/internal/usecase/item"
	newsUC "mig-catalog/internal/usecase/news"
	orderUC "mig-catalog/internal/usecase/order"
	userUC "mig-catalog/internal/usecase/user"

	hhttp "mig-catalog/internal/handler/http"
	hauth "mig-catalog/internal/handler/http/auth"
	hitem "mig-catalog/internal/handler/http/item"
	"mig-catalog/internal/handler/http/middleware"
	hnews "mig-catalog/internal/handler/http/news"
	horder "mig-catalog/internal/handler/http/order"
	"mig-catalog/internal/handler/http/requestid"
	huser "mig-catalog/internal/handler/http/user"
	authservice "mig-catalog/internal/service/auth"

	_ "mig-catalog/docs" // swagger docs
)

// @title           MIG Catalog API
// @version         1.0
// @description     商品カタログ管理システムの REST API
// @description     アカウント・商品・注文・ニュース記事の管理機能を提供します。

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Bearer {token}" 形式で指定してください。

func main() {
	logger := initLogger()
	settings := loadSettings(logger)

	database := initDatabase(logger, settings)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cacheStore := cache.NewStore(ctx, settings.RedisURL)
	defer func() {
		if err := cacheStore.Close(); err != nil {
			logger.Error("failed to close cache store", slog.Any("error", err))
		}
	}()

	version := getVersion()
	components := setupServer(ctx, logger, settings, database, cacheStore, version)

	runServer(ctx, cancel, logger, settings, components, version)
}

// initLogger initializes the global structured logger. Level comes from
// LOG_LEVEL.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// loadSettings reads and validates the environment configuration. The
// process refuses to start with an invalid configuration.
func loadSettings(logger *slog.Logger) *config.Settings {
	settings, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.String("environment", settings.Environment),
		slog.String("addr", settings.HTTPAddr),
		slog.Bool("ratelimit_enabled", settings.RateLimitEnabled),
		slog.Bool("redis", settings.RedisURL != ""))
	return settings
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger, settings *config.Settings) *sql.DB {
	database, err := db.Open(settings.DatabaseURL)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler   http.Handler
	Limiter   *ratelimit.Limiter
	Lockouts  *authservice.LockoutTracker
	MaxWindow time.Duration
	StopStats func()
	StopTrace func(context.Context) error
}

// setupServer wires repositories, services, handlers and middleware into
// the root HTTP handler.
func setupServer(
	ctx context.Context,
	logger *slog.Logger,
	settings *config.Settings,
	database *sql.DB,
	cacheStore cache.Store,
	version string,
) *ServerComponents {
	userRepo := pgRepo.NewUserRepo(database)
	itemRepo := pgRepo.NewItemRepo(database)
	orderRepo := pgRepo.NewOrderRepo(database)
	newsRepo := pgRepo.NewArticleRepo(database)

	userSvc := &userUC.Service{Repo: userRepo, Hasher: authservice.NewHasher()}
	itemSvc := &itemUC.Service{Repo: itemRepo, Cache: cacheStore}
	orderSvc := &orderUC.Service{Repo: orderRepo, Items: itemRepo}
	newsSvc := &newsUC.Service{Repo: newsRepo}

	tokens := authservice.NewTokenService(
		settings.SecretKey, settings.SecretKeyRotation, settings.TokenTTL, cacheStore)
	lockouts := authservice.NewLockoutTracker()

	// クライアントIPの抽出方法は信頼プロキシ設定で切り替える
	proxyConfig, err := middleware.LoadTrustedProxyConfig()
	if err != nil {
		logger.Error("failed to load trusted proxy configuration", slog.Any("error", err))
		os.Exit(1)
	}
	var ipExtractor middleware.IPExtractor
	if proxyConfig.Enabled {
		ipExtractor = middleware.NewTrustedProxyExtractor(*proxyConfig)
		logger.Info("trusted proxy mode enabled",
			slog.Int("trusted_proxies_count", len(proxyConfig.AllowedCIDRs)))
	} else {
		ipExtractor = &middleware.RemoteAddrExtractor{}
		logger.Info("using RemoteAddr for client IPs (proxy headers ignored)")
	}

	limiter, maxWindow := setupRateLimiter(ctx, logger, settings)

	mux := setupRoutes(database, cacheStore, version,
		userSvc, itemSvc, orderSvc, newsSvc,
		tokens, lockouts, ipExtractor, logger)

	var stopTrace func(context.Context) error
	if settings.TracingEnabled {
		stopTrace, err = tracing.InstallStdoutExporter()
		if err != nil {
			logger.Error("failed to install trace exporter", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("tracing enabled (stdout exporter)")
	}

	handler := applyMiddleware(logger, settings, mux, tokens, limiter, ipExtractor)

	collector := &stats.Collector{
		Users:    userRepo,
		Items:    itemRepo,
		Orders:   orderRepo,
		Articles: newsRepo,
		DB:       database,
		Logger:   logger,
	}
	stopStats, err := collector.Start(os.Getenv("STATS_SCHEDULE"))
	if err != nil {
		logger.Error("failed to start stats collector", slog.Any("error", err))
		os.Exit(1)
	}

	return &ServerComponents{
		Handler:   handler,
		Limiter:   limiter,
		Lockouts:  lockouts,
		MaxWindow: maxWindow,
		StopStats: stopStats,
		StopTrace: stopTrace,
	}
}

// setupRateLimiter builds the sliding window limiter. Redis backs the
// counters when configured so limits hold across replicas; otherwise an
// in-process store is used. Returns nil when rate limiting is disabled.
func setupRateLimiter(
	ctx context.Context,
	logger *slog.Logger,
	settings *config.Settings,
) (*ratelimit.Limiter, time.Duration) {
	if !settings.RateLimitEnabled {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
		return nil, 0
	}

	rules, err := ratelimit.LoadRules(settings.RateLimitRulesPath)
	if err != nil {
		logger.Error("failed to load rate limit rules", slog.Any("error", err))
		os.Exit(1)
	}

	var store ratelimit.Store
	if settings.RedisURL != "" {
		opts, err := redis.ParseURL(settings.RedisURL)
		if err != nil {
			logger.Error("invalid REDIS_URL for rate limiting", slog.Any("error", err))
			os.Exit(1)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, rate limiting falls back to memory",
				slog.Any("error", err))
			store = ratelimit.NewMemoryStore(0)
		} else {
			store = ratelimit.NewRedisStore(client, 2*rules.MaxWindow())
		}
	} else {
		store = ratelimit.NewMemoryStore(0)
	}

	metrics := ratelimit.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	limiter := ratelimit.NewLimiter(store, rules, nil, metrics)

	logger.Info("rate limiting initialized",
		slog.Int("default_limit", rules.Default.Limit),
		slog.Duration("default_window", rules.Default.Window),
		slog.Int("endpoint_rules", len(rules.Prefixes)),
		slog.Duration("max_window", rules.MaxWindow()))

	return limiter, rules.MaxWindow()
}

// setupRoutes registers all HTTP routes. Authentication is enforced by
// the Authz middleware, not by mux separation, so every route lives on
// the one mux.
func setupRoutes(
	database *sql.DB,
	cacheStore cache.Store,
	version string,
	userSvc *userUC.Service,
	itemSvc *itemUC.Service,
	orderSvc *orderUC.Service,
	newsSvc *newsUC.Service,
	tokens *authservice.TokenService,
	lockouts *authservice.LockoutTracker,
	ipExtractor middleware.IPExtractor,
	logger *slog.Logger,
) *http.ServeMux {
	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	hauth.Register(mux, userSvc, tokens, lockouts, ipExtractor, logger)
	huser.Register(mux, userSvc, paginationCfg, logger)
	hitem.Register(mux, itemSvc, paginationCfg, logger)
	horder.Register(mux, orderSvc, paginationCfg, logger)
	hnews.Register(mux, newsSvc, paginationCfg, logger)

	// ヘルスチェックエンドポイント（認証不要）
	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Cache: cacheStore, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	// Swagger UI（認証不要）
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS → Request ID → Security Headers →
// Auth Throttle → Recovery → Logging → Input Limits → Rate Limit →
// Authz → Metrics → Timeout.
func applyMiddleware(
	logger *slog.Logger,
	settings *config.Settings,
	handler http.Handler,
	tokens *authservice.TokenService,
	limiter *ratelimit.Limiter,
	ipExtractor middleware.IPExtractor,
) http.Handler {
	corsConfig, err := middleware.NewCORSConfig(settings.CORSOrigins)
	if err != nil {
		logger.Error("failed to load CORS configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("CORS enabled", slog.Any("allowed_origins", settings.CORSOrigins))

	// Apply in reverse order (innermost to outermost)
	chain := handler
	chain = hhttp.Timeout(settings.RequestTimeout)(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hauth.Authz(tokens)(chain)
	if limiter != nil {
		chain = middleware.RateLimit(limiter, ipExtractor)(chain)
	}
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = hauth.Throttle(ipExtractor, hauth.DefaultThrottleRate, hauth.DefaultThrottleBurst)(chain)
	chain = hhttp.SecurityHeaders(settings.IsProduction())(chain)
	if settings.TracingEnabled {
		chain = tracing.Middleware(chain)
	}
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsConfig)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(
	ctx context.Context,
	cancel context.CancelFunc,
	logger *slog.Logger,
	settings *config.Settings,
	components *ServerComponents,
	version string,
) {
	if components.Limiter != nil {
		go hhttp.StartRateLimitCleanup(ctx, components.Limiter, components.Lockouts,
			hhttp.LoadCleanupInterval(), components.MaxWindow)
	}

	srv := &http.Server{
		Addr:              settings.HTTPAddr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", settings.HTTPAddr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	// バックグラウンドのクリーンアップ処理を止める
	cancel()
	components.StopStats()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if components.StopTrace != nil {
		if err := components.StopTrace(shutdownCtx); err != nil {
			logger.Error("trace exporter shutdown failed", slog.Any("error", err))
		}
	}
	logger.Info("server stopped")
}
