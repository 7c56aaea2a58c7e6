package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/optica-pos/docs"
	"github.com/jhoicas/optica-pos/internal/application/auth"
	"github.com/jhoicas/optica-pos/internal/application/inventory"
	"github.com/jhoicas/optica-pos/internal/application/report"
	"github.com/jhoicas/optica-pos/internal/application/sales"
	"github.com/jhoicas/optica-pos/internal/application/usecase"
	infrapdf "github.com/jhoicas/optica-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/optica-pos/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/optica-pos/internal/interfaces/http"
	"github.com/jhoicas/optica-pos/pkg/config"
	"github.com/jhoicas/optica-pos/pkg/logger"
)

// @title                       Optica POS API
// @version                     1.0
// @description                 Caja, inventario por sucursal y reportes de una cadena de ópticas.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Montos como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.DB.AutoMigrate {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}

	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, branchRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	stockUC := inventory.NewStockUseCase(inventoryRepo, productRepo, branchRepo)
	customerUC := sales.NewCustomerUseCase(customerRepo)
	commitUC := sales.NewCommitTransactionUseCase(txRunner, log)

	// PDF: recibo de venta
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	txQueryUC := sales.NewTransactionQueryUseCase(transactionRepo, branchRepo, customerRepo, receiptGenerator, sales.StoreInfo{
		Name:    cfg.Store.Name,
		Address: cfg.Store.Address,
		Phone:   cfg.Store.Phone,
	})
	reportUC := report.NewSalesReportUseCase(reportRepo, branchRepo)

	loginLimiter, err := httpRouter.NewLoginLimiter(cfg.HTTP.LoginRateLimit)
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.HTTP.LoginRateLimit).Msg("LOGIN_RATE_LIMIT inválido")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Optica POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		BranchUC:     branchUC,
		ProductUC:    productUC,
		StockUC:      stockUC,
		CustomerUC:   customerUC,
		CommitTx:     commitUC,
		TxQuery:      txQueryUC,
		SalesReport:  reportUC,
		LoginLimiter: loginLimiter,
		JWTSecret:    cfg.JWT.Secret,
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
	// El pool se cierra después de Fiber para no cortar ventas en curso.
	pool.Close()

	log.Info().Msg("aplicación detenida")
}
