package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdesk/internal/config"
	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/resilience/circuitbreaker"

	accUC "newsdesk/internal/usecase/account"
	artUC "newsdesk/internal/usecase/article"
	catUC "newsdesk/internal/usecase/category"
	tagUC "newsdesk/internal/usecase/tag"

	hhttp "newsdesk/internal/handler/http"
	haccount "newsdesk/internal/handler/http/account"
	hauth "newsdesk/internal/handler/http/auth"
	hcategory "newsdesk/internal/handler/http/category"
	hnewsarticle "newsdesk/internal/handler/http/newsarticle"
	htag "newsdesk/internal/handler/http/tag"
	"newsdesk/internal/handler/http/requestid"
	authservice "newsdesk/internal/service/auth"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration validation failed", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database, cfg)
	runServer(logger, handler, cfg)
}

// initDatabase opens the connection pool and applies the schema.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServer wires repositories, use cases, routes, and the middleware
// chain.
func setupServer(logger *slog.Logger, database *sql.DB, cfg *config.App) http.Handler {
	// All repository traffic goes through the circuit breaker.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	categorySvc := &catUC.Service{Repo: pgRepo.NewCategoryRepo(breaker)}
	tagSvc := &tagUC.Service{Repo: pgRepo.NewTagRepo(breaker)}
	accountRepo := pgRepo.NewAccountRepo(breaker)
	accountSvc := &accUC.Service{Repo: accountRepo}
	articleSvc := &artUC.Service{
		Repo:       pgRepo.NewArticleRepo(breaker),
		Categories: categorySvc.Repo,
		Tags:       tagSvc,
	}

	authSvc := &authservice.Service{
		Accounts: accountRepo,
		Admin: authservice.AdminCredentials{
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
			Name:     cfg.AdminName,
		},
		Secret: cfg.JWTSecret,
	}

	loginLimiter := hhttp.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)

	mux := http.NewServeMux()
	hauth.Register(mux, authSvc, loginLimiter.Limit)
	hcategory.Register(mux, categorySvc, authSvc)
	hnewsarticle.Register(mux, articleSvc, authSvc, hhttp.RecordArticlePublished)
	haccount.Register(mux, accountSvc, authSvc)
	htag.Register(mux, tagSvc)

	health := &hhttp.HealthHandler{DB: database, Breaker: breaker, Version: cfg.Version}
	health.Register(mux)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Outermost first: request ID, then logging, recovery, metrics, and the
	// body limit closest to the handlers.
	var handler http.Handler = mux
	handler = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(handler)
	handler = hhttp.Metrics(handler)
	handler = hhttp.Recover(logger)(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = requestid.Middleware(handler)
	return handler
}

// runServer starts the HTTP server and blocks until shutdown completes.
func runServer(logger *slog.Logger, handler http.Handler, cfg *config.App) {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", slog.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped")
	}
}
