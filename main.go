package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gudang/internal/catalog"
	"gudang/internal/handlers"
	"gudang/internal/metrics"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
	"gudang/pkg/config"
	applog "gudang/pkg/logger"
	"gudang/pkg/rabbitmq"
)

// App is the assembled service.
type App struct {
	Fiber  *fiber.App
	Auth   *services.AuthService
	Orders *services.OrderService
	db     *gorm.DB
}

// Close releases the database connection, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type repositorySet struct {
	products      repositories.ProductRepository
	users         repositories.UserRepository
	orders        repositories.OrderRepository
	notifications repositories.NotificationRepository
	db            *gorm.DB
}

// openRepositories selects the storage backend named by cfg.DB.Driver.
func openRepositories(cfg config.DBConfig) (*repositorySet, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverMemory:
		return &repositorySet{
			products:      repositories.NewMockProductRepository(),
			users:         repositories.NewMockUserRepository(),
			orders:        repositories.NewMockOrderRepository(),
			notifications: repositories.NewMockNotificationRepository(),
		}, nil
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.User{}, &models.AmazonOrder{}, &models.Notification{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return &repositorySet{
		products:      repositories.NewGORMProductRepository(db),
		users:         repositories.NewGORMUserRepository(db),
		orders:        repositories.NewGORMOrderRepository(db),
		notifications: repositories.NewGORMNotificationRepository(db),
		db:            db,
	}, nil
}

// NewApp wires storage, services and routes. publisher may be nil, in which
// case domain events are not sent.
func NewApp(cfg *config.Config, publisher services.EventPublisher) (*App, error) {
	repos, err := openRepositories(cfg.DB)
	if err != nil {
		return nil, err
	}

	notificationService := services.NewNotificationService(repos.notifications)
	authService := services.NewAuthService(repos.users, cfg.JWT.Secret, cfg.JWT.Expiration)
	productService := services.NewProductService(services.ProductServiceDeps{
		Repo:              repos.products,
		Generator:         catalog.NewGenerator(nil),
		Publisher:         publisher,
		Notifier:          notificationService,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		FNSKUAttempts:     cfg.Inventory.FNSKUAttempts,
	})
	orderService := services.NewOrderService(repos.orders, repos.products, publisher, notificationService)
	dashboardService := services.NewDashboardService(repos.products, repos.orders, cfg.Inventory.LowStockThreshold)

	if err := authService.EnsureUser(cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password, models.RoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}
	if cfg.Inventory.SeedDemoData {
		if err := seedDemoData(seedRepos{repos.products, repos.orders, repos.notifications}); err != nil {
			return nil, err
		}
	}

	// Handler values outlive the request in the in-memory repositories.
	app := fiber.New(fiber.Config{AppName: "gudang", Immutable: true})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"storage":  cfg.DB.Driver,
			"rabbitmq": publisher != nil,
		})
	})
	app.Get("/metrics", metrics.Handler())

	handlers.RegisterAPI(app.Group("/api/v1"), handlers.Services{
		Auth:          authService,
		Products:      productService,
		Orders:        orderService,
		Notifications: notificationService,
		Dashboard:     dashboardService,
	})

	return &App{Fiber: app, Auth: authService, Orders: orderService, db: repos.db}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	applog.New(applog.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("server exited")
		stop()
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the listener fails. Deferred cleanup
// always runs before it returns.
func run(ctx context.Context, cfg *config.Config) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	var (
		mqClient  *rabbitmq.Client
		publisher services.EventPublisher
	)
	if cfg.RabbitMQ.Enabled() {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Exchange: services.EventExchange})
		if err != nil {
			return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("error closing RabbitMQ client")
			}
		}()
		mqClient, publisher = client, client
	} else {
		log.Warn().Msg("RABBITMQ_URL not set, domain events are disabled")
	}

	app, err := NewApp(cfg, publisher)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer app.Close()

	if mqClient != nil {
		if err := mqClient.ConsumeEvents(ctx, app.Orders.HandleEvent); err != nil {
			log.Error().Err(err).Msg("failed to start RabbitMQ consumer")
		}
	}

	listenErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.App.Port).Str("env", cfg.App.Env).Str("storage", cfg.DB.Driver).Msg("starting server")
		listenErr <- app.Fiber.Listen(cfg.App.Port)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down server")

	if err := app.Fiber.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("error during Fiber shutdown")
	}
	log.Info().Msg("server gracefully stopped")
	return nil
}
