package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	goredis "github.com/redis/go-redis/v9"
	"github.com/tu-usuario/warehouse-pro/internal/application/auth"
	"github.com/tu-usuario/warehouse-pro/internal/application/stock"
	apptransfer "github.com/tu-usuario/warehouse-pro/internal/application/transfer"
	"github.com/tu-usuario/warehouse-pro/internal/application/usecase"
	"github.com/tu-usuario/warehouse-pro/internal/infrastructure/postgres"
	infraredis "github.com/tu-usuario/warehouse-pro/internal/infrastructure/redis"
	httpRouter "github.com/tu-usuario/warehouse-pro/internal/interfaces/http"
	"github.com/tu-usuario/warehouse-pro/pkg/config"
	"github.com/tu-usuario/warehouse-pro/pkg/logger"
	"github.com/tu-usuario/warehouse-pro/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	transferRepo := postgres.NewStockTransferRepository(pool)
	stockRepo := postgres.NewStockLevelRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Redis opcional: sin REDIS_ADDR las vistas no se cachean y el
	// invalidador es un no-op.
	var invalidator apptransfer.ViewInvalidator = apptransfer.NoopInvalidator{}
	if cfg.Redis.Addr != "" {
		redisClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, vistas sin invalidación")
		} else {
			invalidator = infraredis.NewViewInvalidator(redisClient)
			defer redisClient.Close()
		}
	}

	transferUC := apptransfer.NewUseCase(txRunner, transferRepo, productRepo, locationRepo, contactRepo, invalidator)
	stockUC := stock.NewUseCase(stockRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo, warehouseRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	contactUC := usecase.NewContactUseCase(contactRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, stockRepo, productRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	m := metrics.New()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Warehouse Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		LocationUC:  locationUC,
		WarehouseUC: warehouseUC,
		ContactUC:   contactUC,
		DashboardUC: dashboardUC,
		TransferUC:  transferUC,
		StockUC:     stockUC,
		Metrics:     m,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
