package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/auth"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/cache"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/config"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/database"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/handler"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/middleware"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/repository"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/router"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/service"
)

type App struct {
	server       *http.Server
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	saleRepo := repository.NewSaleRepository(pool)
	slog.Info("database ready")

	authority, err := auth.NewAuthority(auth.Config{
		Secret:     cfg.JWTSecret,
		AccessTTL:  cfg.JWTAccessTTL,
		RefreshTTL: cfg.JWTRefreshTTL,
	}, userRepo)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize session authority: %w", err)
	}

	// Redis is optional: without it the analytics dataset is fetched per
	// request.
	var analyticsCache *cache.Cache
	if cfg.RedisAddr != "" {
		analyticsCache, err = cache.New(context.Background(), cfg.RedisAddr, cfg.AnalyticsCacheTTL)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		slog.Info("analytics cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.AnalyticsCacheTTL)
	}

	authMiddleware := middleware.NewAuthMiddleware(authority)
	authHandler := handler.NewAuthHandler(authority)
	customerHandler := handler.NewCustomerHandler(customerRepo)
	productHandler := handler.NewProductHandler(productRepo)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	analyticsService := service.NewAnalyticsService(productRepo, customerRepo, saleRepo, analyticsCache)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	appRouter := router.New(cfg, authMiddleware, authHandler, customerHandler, productHandler, categoryHandler, analyticsHandler)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		cleanupFuncs: []func(){
			func() { _ = analyticsCache.Close() },
			func() { db.Close() },
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}
