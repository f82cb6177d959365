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

	"github.com/gourmetify/admin-api/internal/application/auth"
	"github.com/gourmetify/admin-api/internal/application/session"
	"github.com/gourmetify/admin-api/internal/application/usecase"
	"github.com/gourmetify/admin-api/internal/domain/repository"
	"github.com/gourmetify/admin-api/internal/infrastructure/gourmetapi"
	"github.com/gourmetify/admin-api/internal/infrastructure/postgres"
	"github.com/gourmetify/admin-api/internal/infrastructure/sessionfile"
	httpRouter "github.com/gourmetify/admin-api/internal/interfaces/http"
	"github.com/gourmetify/admin-api/pkg/config"
	"github.com/gourmetify/admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("session_backend", cfg.Session.Backend).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Store de contexto de sesión: archivo compartido entre procesos por
	// defecto, PostgreSQL con LISTEN/NOTIFY si se configura.
	var (
		store    repository.ContextStore
		notifier repository.ChangeNotifier
	)
	switch cfg.Session.Backend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgStore := postgres.NewContextStore(ctx, pool, postgres.Defaults{
			TenantID: cfg.Session.DefaultTenantID,
			BranchID: cfg.Session.DefaultBranchID,
		}, log)
		defer pgStore.Close()
		store, notifier = pgStore, pgStore
	default:
		fileStore := sessionfile.New(cfg.Session.Dir, sessionfile.Defaults{
			TenantID: cfg.Session.DefaultTenantID,
			BranchID: cfg.Session.DefaultBranchID,
		}, log)
		defer fileStore.Close()
		store, notifier = fileStore, fileStore
	}

	container := session.NewContainer()
	session.Rehydrate(container, store)
	session.Bind(ctx, container, store, notifier, log)

	client := gourmetapi.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, store, container, log)
	scope := usecase.NewScope(container)

	authUC := auth.NewAuthUseCase(client, store, container, log)
	tenantUC := usecase.NewTenantUseCase(gourmetapi.NewTenantService(client))
	branchUC := usecase.NewBranchUseCase(gourmetapi.NewBranchService(client))
	userUC := usecase.NewUserUseCase(gourmetapi.NewUserService(client), scope)
	orderUC := usecase.NewOrderUseCase(gourmetapi.NewOrderService(client), scope)
	supplierUC := usecase.NewSupplierUseCase(gourmetapi.NewSupplierService(client), scope)
	inventoryUC := usecase.NewInventoryUseCase(gourmetapi.NewInventoryService(client), scope)
	payrollUC := usecase.NewPayrollUseCase(gourmetapi.NewPayrollService(client), scope)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gourmetify Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		TenantUC:    tenantUC,
		BranchUC:    branchUC,
		UserUC:      userUC,
		OrderUC:     orderUC,
		SupplierUC:  supplierUC,
		InventoryUC: inventoryUC,
		PayrollUC:   payrollUC,
		Container:   container,
		Store:       store,
		Production:  cfg.App.Production(),
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
