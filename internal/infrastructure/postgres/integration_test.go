package postgres_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/application/sales"
	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/optica-pos/pkg/config"
)

// Estas pruebas necesitan una base PostgreSQL desechable: TEST_DATABASE_URL=postgres://...
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	require.NoError(t, postgres.MigrateUp(dsn))

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 8, StatementTimeoutMs: 5000})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE invoice_sequences, transaction_items, transactions, customers,
		branch_inventory, products, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

type fixture struct {
	branch  *entity.Branch
	userID  int64
	product *entity.Product
}

func seed(t *testing.T, pool *pgxpool.Pool, stock int) fixture {
	t.Helper()
	ctx := context.Background()

	branch, err := postgres.NewBranchRepository(pool).GetByCode(ctx, "TBB")
	require.NoError(t, err)
	require.NotNil(t, branch)

	u := &entity.User{Username: "kasir", PasswordHash: "x", FullName: "Kasir", Role: entity.RoleBranchAdmin, BranchID: &branch.ID}
	require.NoError(t, postgres.NewUserRepository(pool).Create(ctx, u))

	p := &entity.Product{Code: "LNS-001", Name: "Lensa Progresif", SellingPrice: decimal.RequireFromString("150000")}
	require.NoError(t, postgres.NewProductRepository(pool).Create(ctx, p))
	if stock > 0 {
		require.NoError(t, postgres.NewInventoryRepository(pool).AddStock(ctx, p.ID, branch.ID, stock))
	}
	return fixture{branch: branch, userID: u.ID, product: p}
}

func saleRequest(f fixture, qty int) dto.CommitTransactionRequest {
	price := decimal.RequireFromString("150000")
	sub := price.Mul(decimal.NewFromInt(int64(qty)))
	return dto.CommitTransactionRequest{
		BranchCode: f.branch.Code,
		UserID:     f.userID,
		Items: []dto.TransactionItemRequest{
			{ProductID: f.product.ID, ProductName: "nombre del cliente", Quantity: qty, PricePerItem: price, Subtotal: sub},
		},
		TotalAmount:    &sub,
		PaymentMethod:  entity.PaymentCash,
		AmountReceived: sub,
		ChangeAmount:   decimal.Zero,
	}
}

func stockOf(t *testing.T, pool *pgxpool.Pool, f fixture) int {
	t.Helper()
	var q int
	err := pool.QueryRow(context.Background(),
		`SELECT quantity FROM branch_inventory WHERE product_id = $1 AND branch_id = $2`,
		f.product.ID, f.branch.ID).Scan(&q)
	require.NoError(t, err)
	return q
}

func TestCommit_Postgres_VentaCompleta(t *testing.T) {
	pool := setupDB(t)
	f := seed(t, pool, 5)
	uc := sales.NewCommitTransactionUseCase(postgres.NewTxRunner(pool), nil)
	ctx := context.Background()

	req := saleRequest(f, 2)
	req.CustomerData = &dto.CustomerDataRequest{Name: "Budi", PhoneNumber: "0812-3456", DateOfBirth: "1990-04-01"}
	res, err := uc.Commit(ctx, req)
	require.NoError(t, err)
	assert.Regexp(t, `^INV-TBB-\d{8}-001$`, res.InvoiceNumber)
	assert.Equal(t, 3, stockOf(t, pool, f))

	tx, err := postgres.NewTransactionRepository(pool).GetByID(ctx, res.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.NotNil(t, tx.CustomerID)
	assert.True(t, tx.TotalAmount.Equal(decimal.RequireFromString("300000")))

	items, err := postgres.NewTransactionRepository(pool).GetItems(ctx, res.TransactionID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Lensa Progresif", items[0].ProductName)
	assert.Positive(t, items[0].ID)
	assert.Equal(t, f.product.ID, items[0].ProductID)

	c, err := postgres.NewCustomerRepository(pool).FindByPhone(ctx, "08123456")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, *tx.CustomerID, c.ID)

	// Segunda venta del día: consecutivo siguiente y cliente reutilizado.
	res2, err := uc.Commit(ctx, req)
	require.NoError(t, err)
	assert.Regexp(t, `-002$`, res2.InvoiceNumber)
	var customers int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&customers))
	assert.Equal(t, 1, customers)
}

func TestCommit_Postgres_StockInsuficienteNoDejaRastro(t *testing.T) {
	pool := setupDB(t)
	f := seed(t, pool, 1)
	uc := sales.NewCommitTransactionUseCase(postgres.NewTxRunner(pool), nil)
	ctx := context.Background()

	req := saleRequest(f, 2)
	req.CustomerData = &dto.CustomerDataRequest{Name: "Sari", PhoneNumber: "0899"}
	_, err := uc.Commit(ctx, req)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, stockErr.Available)

	assert.Equal(t, 1, stockOf(t, pool, f))
	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n))
	assert.Zero(t, n)
}

func TestCommit_Postgres_OperadorInexistenteEsStorageError(t *testing.T) {
	pool := setupDB(t)
	f := seed(t, pool, 3)
	uc := sales.NewCommitTransactionUseCase(postgres.NewTxRunner(pool), nil)

	req := saleRequest(f, 1)
	req.UserID = f.userID + 999
	_, err := uc.Commit(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrStorage)
	assert.Equal(t, 3, stockOf(t, pool, f))
}

func TestCommit_Postgres_VentasConcurrentesNoSobrevenden(t *testing.T) {
	pool := setupDB(t)
	f := seed(t, pool, 3)
	uc := sales.NewCommitTransactionUseCase(postgres.NewTxRunner(pool), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const buyers = 6
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		short    int
		invoices = map[string]bool{}
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := uc.Commit(ctx, saleRequest(f, 1))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
				invoices[res.InvoiceNumber] = true
			case errors.Is(err, domain.ErrInsufficientStock):
				short++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, ok)
	assert.Equal(t, buyers-3, short)
	assert.Len(t, invoices, 3)
	assert.Equal(t, 0, stockOf(t, pool, f))
}

func TestReportRepo_ResumenMensual(t *testing.T) {
	pool := setupDB(t)
	f := seed(t, pool, 10)
	uc := sales.NewCommitTransactionUseCase(postgres.NewTxRunner(pool), nil)
	ctx := context.Background()

	_, err := uc.Commit(ctx, saleRequest(f, 1))
	require.NoError(t, err)
	_, err = uc.Commit(ctx, saleRequest(f, 3))
	require.NoError(t, err)

	var month, year int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT EXTRACT(MONTH FROM CURRENT_DATE)::int, EXTRACT(YEAR FROM CURRENT_DATE)::int`).Scan(&month, &year))

	repo := postgres.NewReportRepository(pool)
	sum, err := repo.GetMonthlySummary(ctx, "TBB", month, year)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalTransactions)
	assert.True(t, sum.TotalRevenue.Equal(decimal.RequireFromString("600000")))

	top, err := repo.GetTopProducts(ctx, "TBB", month, year, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Lensa Progresif", top[0].ProductName)
	assert.Equal(t, 4, top[0].TotalQuantitySold)
}

func TestUserRepo_DuplicadoYActualizacion(t *testing.T) {
	pool := setupDB(t)
	f := seed(t, pool, 0)
	ctx := context.Background()
	repo := postgres.NewUserRepository(pool)

	err := repo.Create(ctx, &entity.User{Username: "kasir", PasswordHash: "x", FullName: "Otro", Role: entity.RoleHeadOffice})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	u, err := repo.GetByUsername(ctx, "kasir")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, f.branch.Code, u.BranchCode)

	u.FullName, u.Role, u.BranchID = "Kasir Utama", entity.RoleHeadOffice, nil
	require.NoError(t, repo.Update(ctx, u))
	assert.ErrorIs(t, repo.Update(ctx, &entity.User{ID: 9999, FullName: "x", Role: entity.RoleHeadOffice}), domain.ErrNotFound)
}
