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
	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/catalog"
	"github.com/jhoicas/pos-api/internal/application/inventory"
	"github.com/jhoicas/pos-api/internal/application/ports"
	"github.com/jhoicas/pos-api/internal/application/reports"
	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/domain/security"
	"github.com/jhoicas/pos-api/internal/infrastructure/events"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/pos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-api/internal/infrastructure/remote"
	httpRouter "github.com/jhoicas/pos-api/internal/interfaces/http"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// devJWTSecret solo fuera de producción (config.Load exige JWT_SECRET en production).
const devJWTSecret = "pos-dev-secret-change-me"

// storage repositorios y transacciones del backend elegido (PostgreSQL o memoria).
type storage struct {
	products   repository.ProductRepository
	sales      repository.SaleRepository
	movements  repository.StockMovementRepository
	users      repository.UserRepository
	categories repository.CategoryRepository
	customers  repository.CustomerRepository
	stockTx    inventory.TxRunner
	saleTx     sales.TxRunner
	close      func()
}

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
	store := openStorage(ctx, cfg, log)
	defer store.close()

	// Backend remoto del catálogo: best-effort, el estado local manda.
	var productAPI catalog.ProductAPI
	if cfg.Persistence.Enabled() {
		productAPI = remote.NewProductClient(cfg.Persistence.BaseURL, cfg.Persistence.Token, cfg.Persistence.Timeout)
	}

	var publisher ports.EventPublisher = events.NewLogPublisher(log)
	if cfg.Kafka.Enabled() {
		kp := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		defer func() {
			if err := kp.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar productor Kafka")
			}
		}()
		publisher = kp
	}

	catalogUC := catalog.NewUseCase(store.products, productAPI, log)
	if productAPI != nil {
		syncCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		if n, err := catalogUC.SyncFromRemote(syncCtx); err != nil {
			log.Warn().Err(err).Msg("sincronización inicial fallida; se usa el catálogo local")
		} else {
			log.Info().Int("products", n).Msg("catálogo inicial cargado desde el backend remoto")
		}
		cancel()
	}

	checkoutUC := sales.NewCheckoutUseCase(store.saleTx, publisher, log)
	cartSvc := sales.NewCartService(catalogUC, checkoutUC)
	historyUC := sales.NewHistoryUseCase(store.sales, store.users, store.customers, infrapdf.NewReceiptGenerator(cfg.App.Name))
	adjustUC := inventory.NewAdjustStockUseCase(store.stockTx, store.movements, publisher, log)
	replenishmentUC := inventory.NewReplenishmentUseCase(store.products, store.sales)
	reportsUC := reports.NewUseCase(store.sales, store.products)

	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		log.Warn().Msg("JWT_SECRET vacío; usando secreto de desarrollo")
		jwtSecret = devJWTSecret
	}
	policy := security.DefaultPolicy()
	authUC := auth.NewAuthUseCase(store.users, policy, auth.JWTConfig{
		Secret:     jwtSecret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Catalog:       catalogUC,
		Carts:         cartSvc,
		History:       historyUC,
		AdjustStock:   adjustUC,
		Replenishment: replenishmentUC,
		Reports:       reportsUC,
		UserUC:        usecase.NewUserUseCase(store.users),
		CategoryUC:    usecase.NewCategoryUseCase(store.categories),
		CustomerUC:    usecase.NewCustomerUseCase(store.customers),
		Policy:        policy,
		JWTSecret:     jwtSecret,
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

// openStorage PostgreSQL si hay base configurada (con migraciones); si no, store en memoria.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) *storage {
	if cfg.DB.Enabled() {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones de PostgreSQL")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		tx := postgres.NewTxRunner(pool)
		log.Info().Msg("persistencia: PostgreSQL")
		return &storage{
			products:   postgres.NewProductRepository(pool),
			sales:      postgres.NewSaleRepository(pool),
			movements:  postgres.NewStockMovementRepository(pool),
			users:      postgres.NewUserRepository(pool),
			categories: postgres.NewCategoryRepository(pool),
			customers:  postgres.NewCustomerRepository(pool),
			stockTx:    tx,
			saleTx:     tx,
			close:      pool.Close,
		}
	}

	mem := memory.New()
	if cfg.App.SeedDemoData {
		hash, err := usecase.HashPassword(cfg.App.DemoPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña demo")
		}
		if err := mem.SeedDemo(ctx, hash); err != nil {
			log.Fatal().Err(err).Msg("carga de datos demo")
		}
		log.Info().Msg("datos demo cargados")
	}
	log.Info().Msg("persistencia: memoria")
	return &storage{
		products:   mem.Products(),
		sales:      mem.Sales(),
		movements:  mem.Movements(),
		users:      mem.Users(),
		categories: mem.Categories(),
		customers:  mem.Customers(),
		stockTx:    mem,
		saleTx:     mem,
		close:      func() {},
	}
}
