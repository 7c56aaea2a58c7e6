package sales

import (
	"context"

	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

// SalesTxRunner ejecuta una función dentro de una única transacción de BD, pasando los
// repositorios atados a esa tx. Si fn devuelve error se hace rollback; si no, commit.
// La conexión vuelve al pool en cualquier caso.
type SalesTxRunner interface {
	RunSales(ctx context.Context, fn func(
		branchRepo repository.BranchRepository,
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		customerRepo repository.CustomerRepository,
		transactionRepo repository.TransactionRepository,
	) error) error
}

// StoreInfo encabezado del recibo.
type StoreInfo struct {
	Name    string
	Address string
	Phone   string
}

// Receipt datos completos para imprimir una venta.
type Receipt struct {
	Store       StoreInfo
	Transaction *entity.Transaction
	Items       []*entity.TransactionItem
	Customer    *entity.Customer
	Branch      *entity.Branch
}

// ReceiptPDFGenerator genera el recibo en PDF (implementado en infraestructura con maroto).
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, receipt *Receipt) ([]byte, error)
}
