package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/optica-pos/internal/application/sales"
	"github.com/jhoicas/optica-pos/internal/application/usecase"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

// Ensure TxRunner implements sales.SalesTxRunner and usecase.CatalogTxRunner.
var _ sales.SalesTxRunner = (*TxRunner)(nil)
var _ usecase.CatalogTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia la transacción, ejecuta fn y hace Commit; ante error o panic el Rollback diferido
// libera la conexión.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSales inicia una transacción con los repos que usa el registro de una venta.
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	branchRepo repository.BranchRepository,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	customerRepo repository.CustomerRepository,
	transactionRepo repository.TransactionRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(
			NewBranchRepository(tx),
			NewProductRepository(tx),
			NewInventoryRepository(tx),
			NewCustomerRepository(tx),
			NewTransactionRepository(tx),
		)
	})
}

// RunCatalog inicia una transacción para el alta de producto con stock inicial.
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	branchRepo repository.BranchRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(
			NewProductRepository(tx),
			NewCategoryRepository(tx),
			NewBranchRepository(tx),
			NewInventoryRepository(tx),
		)
	})
}
