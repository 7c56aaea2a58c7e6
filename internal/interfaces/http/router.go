package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"

	"github.com/jhoicas/optica-pos/internal/application/auth"
	"github.com/jhoicas/optica-pos/internal/application/inventory"
	"github.com/jhoicas/optica-pos/internal/application/report"
	"github.com/jhoicas/optica-pos/internal/application/sales"
	"github.com/jhoicas/optica-pos/internal/application/usecase"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	BranchUC     *usecase.BranchUseCase
	ProductUC    *usecase.ProductUseCase
	StockUC      *inventory.StockUseCase
	CustomerUC   *sales.CustomerUseCase
	CommitTx     *sales.CommitTransactionUseCase
	TxQuery      *sales.TransactionQueryUseCase
	SalesReport  *report.SalesReportUseCase
	LoginLimiter *limiter.Limiter // nil = sin límite
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	loginChain := []fiber.Handler{}
	if deps.LoginLimiter != nil {
		loginChain = append(loginChain, RateLimit(deps.LoginLimiter))
	}
	api.Post("/auth/login", append(loginChain, authHandler.Login)...)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo Admin Pusat)
	users := protected.Group("/users", RequireRole(entity.RoleHeadOffice))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:userId", userHandler.Update)

	// Branches
	branchHandler := NewBranchHandler(deps.BranchUC)
	protected.Get("/branches", branchHandler.List)

	// Products + stock
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Patch("/:productId/stock", productHandler.AddStock)

	// Customers
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	protected.Get("/customers/phone/:phoneNumber", customerHandler.FindByPhone)

	// Transactions
	transactions := protected.Group("/transactions")
	txHandler := NewTransactionHandler(deps.CommitTx, deps.TxQuery)
	transactions.Post("/", txHandler.Commit)
	transactions.Get("/:id", txHandler.GetByID)
	transactions.Get("/:id/receipt", txHandler.Receipt)

	// Reports
	reportHandler := NewReportHandler(deps.SalesReport)
	protected.Get("/reports/sales", reportHandler.Sales)
}
