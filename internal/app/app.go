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

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/config"
	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/middleware"
	"github.com/reignite/reignite/internal/module/auth"
	"github.com/reignite/reignite/internal/module/category"
	"github.com/reignite/reignite/internal/module/chat"
	"github.com/reignite/reignite/internal/module/coupon"
	"github.com/reignite/reignite/internal/module/faq"
	"github.com/reignite/reignite/internal/module/hobby"
	"github.com/reignite/reignite/internal/module/order"
	"github.com/reignite/reignite/internal/module/product"
	"github.com/reignite/reignite/internal/module/project"
	"github.com/reignite/reignite/internal/module/report"
	"github.com/reignite/reignite/internal/module/supplier"
	"github.com/reignite/reignite/internal/module/upload"
	"github.com/reignite/reignite/internal/module/user"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine     *gin.Engine
	db         *gorm.DB
	logger     *logger.Logger
	jwtService jwt.Service
	cfg        *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Long write timeout: chat connections outlive normal requests.
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, database, the JWT service, every domain module
// (repository → service → handler → module), middleware and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate in debug mode only.
	if cfg.Server.Mode == gin.DebugMode {
		if err := autoMigrate(db); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. JWT service. Token durations were validated with the config.
	jwtService, err := jwt.New(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("setup jwt service: %w", err)
	}
	defer func() {
		if !success {
			jwtService.Close()
		}
	}()
	tokenExpiry, _ := time.ParseDuration(cfg.Auth.TokenExpiry)
	refreshExpiry, _ := time.ParseDuration(cfg.Auth.RefreshTokenExpiry)

	// 5. Payment provider. Without a Stripe key (non-release only) checkout
	// fabricates intents locally.
	var payments domain.PaymentProvider
	if cfg.Stripe.SecretKey != "" {
		payments = order.NewStripeProvider(cfg.Stripe.SecretKey)
	} else {
		log.Warn("no stripe secret key configured, using offline payment intents")
		payments = order.NewOfflineProvider()
	}

	// 6. Manual dependency injection: repository → service → handler → module.
	userRepo := user.NewUserRepository(db)
	tokenRepo := auth.NewRefreshTokenRepository(db)
	categoryRepo := category.NewRepository(db)
	supplierRepo := supplier.NewRepository(db)
	productRepo := product.NewRepository(db)
	hobbyRepo := hobby.NewRepository(db)
	projectRepo := project.NewRepository(db)
	reviewRepo := project.NewReviewRepository(db)
	couponRepo := coupon.NewRepository(db)
	cartRepo := order.NewCartRepository(db)
	orderRepo := order.NewRepository(db)
	faqRepo := faq.NewRepository(db)
	chatRepo := chat.NewRepository(db)

	fileStore := upload.NewLocalStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
	chatHub := chat.NewHub(log.Logger)

	modules := []Module{
		auth.NewModule(auth.NewHandler(
			auth.NewService(jwtService, userRepo, tokenRepo, tokenExpiry, refreshExpiry))),
		user.NewModule(user.NewHandler(user.NewService(userRepo))),
		category.NewModule(category.NewHandler(category.NewService(categoryRepo))),
		supplier.NewModule(supplier.NewHandler(supplier.NewService(supplierRepo))),
		product.NewModule(product.NewHandler(
			product.NewService(productRepo, categoryRepo, supplierRepo))),
		hobby.NewModule(hobby.NewHandler(hobby.NewService(hobbyRepo))),
		project.NewModule(project.NewHandler(
			project.NewService(projectRepo, reviewRepo, hobbyRepo))),
		coupon.NewModule(coupon.NewHandler(coupon.NewService(couponRepo))),
		order.NewModule(order.NewHandler(order.NewService(
			orderRepo, cartRepo, productRepo, couponRepo, payments, cfg.Stripe.Currency))),
		faq.NewModule(faq.NewHandler(faq.NewService(faqRepo))),
		chat.NewModule(chat.NewHandler(chatHub,
			chat.NewService(chatRepo, hobbyRepo, userRepo, cfg.Chat.HistoryLimit), log.Logger)),
		upload.NewModule(upload.NewHandler(
			upload.NewService(fileStore, int64(cfg.Upload.MaxSizeMB)*1024*1024))),
		report.NewModule(report.NewHandler(report.NewService(db))),
	}

	// 7. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)
	if cfg.Server.RateLimit.Enabled {
		engine.Use(middleware.RateLimit(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst))
	}

	// 8. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules:       modules,
		DB:            db,
		JWT:           jwtService,
		UploadDir:     cfg.Upload.Dir,
		UploadBaseURL: cfg.Upload.BaseURL,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine:     engine,
		db:         db,
		logger:     log,
		jwtService: jwtService,
		cfg:        cfg,
	}, nil
}

// autoMigrate creates or updates the schema for every entity.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.RefreshToken{},
		&domain.Category{},
		&domain.Supplier{},
		&domain.Product{},
		&domain.Hobby{},
		&domain.Project{},
		&domain.Review{},
		&domain.Coupon{},
		&domain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.FAQ{},
		&domain.ChatMessage{},
	)
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	// Release mode defaults to denying cross-origin requests.
	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout and closes the
// database connection and JWT service.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown error", slog.Any("error", err))
		}
	}

	if a.jwtService != nil {
		a.jwtService.Close()
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.logger.Error("database close error", slog.Any("error", err))
			} else {
				a.logger.Info("database connection closed")
			}
		}
	}

	a.logger.Info("server stopped")
	if err := a.logger.Close(); err != nil {
		slog.Error("logger close error", slog.Any("error", err))
	}

	return runErr
}
