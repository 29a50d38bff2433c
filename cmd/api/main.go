package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	"github.com/tu-usuario/rocketry-hub/internal/application/receiving"
	"github.com/tu-usuario/rocketry-hub/internal/application/schedule"
	"github.com/tu-usuario/rocketry-hub/internal/application/usecase"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
	"github.com/tu-usuario/rocketry-hub/internal/infrastructure/blob"
	"github.com/tu-usuario/rocketry-hub/internal/infrastructure/postgres"
	"github.com/tu-usuario/rocketry-hub/internal/infrastructure/viewcache"
	httpRouter "github.com/tu-usuario/rocketry-hub/internal/interfaces/http"
	"github.com/tu-usuario/rocketry-hub/internal/interfaces/ws"
	"github.com/tu-usuario/rocketry-hub/pkg/config"
	"github.com/tu-usuario/rocketry-hub/pkg/logger"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Persistencia: blob store de archivos JSON o PostgreSQL, misma interfaz.
	var (
		inventoryRepo repository.InventoryRepository
		pendingRepo   repository.PendingRepository
		requestRepo   repository.PurchaseRequestRepository
		vendorRepo    repository.VendorRepository
		bomRepo       repository.BOMRepository
		notifRepo     repository.NotificationRepository
		logRepo       repository.ReceivingLogRepository
		userRepo      repository.UserRepository
		txRunner      receiving.TxRunner
	)
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		inventoryRepo = postgres.NewInventoryRepository(pool)
		pendingRepo = postgres.NewPendingRepository(pool)
		requestRepo = postgres.NewPurchaseRequestRepository(pool)
		vendorRepo = postgres.NewVendorRepository(pool)
		bomRepo = postgres.NewBOMRepository(pool)
		notifRepo = postgres.NewNotificationRepository(pool)
		logRepo = postgres.NewReceivingLogRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	default:
		store, err := blob.NewStore(afero.NewOsFs(), cfg.Store.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar blob store")
		}
		inventoryRepo = blob.NewInventoryRepository(store)
		pendingRepo = blob.NewPendingRepository(store)
		requestRepo = blob.NewPurchaseRequestRepository(store)
		vendorRepo = blob.NewVendorRepository(store)
		bomRepo = blob.NewBOMRepository(store)
		notifRepo = blob.NewNotificationRepository(store)
		logRepo = blob.NewReceivingLogRepository(store)
		userRepo = blob.NewUserRepository(store)
		txRunner = blob.NewTxRunner(store)
	}

	// Caché de vistas: Redis si está configurado, si no desactivada.
	var cache usecase.ViewCache = viewcache.Noop{}
	if cfg.Redis.Enabled() {
		redisCache := viewcache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		cache = redisCache
	}

	hub := ws.NewHub(log)
	go hub.Run()

	notificationUC := usecase.NewNotificationUseCase(notifRepo, cache, hub)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, cache, notificationUC)
	requestUC := usecase.NewPurchaseRequestUseCase(requestRepo, cache, cfg.Options.Teams)
	vendorUC := usecase.NewVendorUseCase(vendorRepo, cache)
	bomUC := usecase.NewBOMUseCase(bomRepo, inventoryRepo, cache)
	workflowUC := receiving.NewWorkflowUseCase(txRunner, pendingRepo, requestRepo, logRepo, cache, notificationUC)
	authUC := usecase.NewAuthUseCase(userRepo, cfg.JWT, cfg.Options.Teams)
	scheduler := schedule.NewScheduler()

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
		Title:    "Rocketry Hub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		InventoryUC:    inventoryUC,
		RequestUC:      requestUC,
		VendorUC:       vendorUC,
		BOMUC:          bomUC,
		NotificationUC: notificationUC,
		Workflow:       workflowUC,
		Scheduler:      scheduler,
		Hub:            hub,
		JWTSecret:      cfg.JWT.Secret,
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
