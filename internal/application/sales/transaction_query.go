package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

// TransactionQueryUseCase lectura de ventas confirmadas y generación del recibo.
type TransactionQueryUseCase struct {
	transactionRepo repository.TransactionRepository
	branchRepo      repository.BranchRepository
	customerRepo    repository.CustomerRepository
	generator       ReceiptPDFGenerator
	store           StoreInfo
}

// NewTransactionQueryUseCase construye el caso de uso inyectando todas sus dependencias.
func NewTransactionQueryUseCase(
	transactionRepo repository.TransactionRepository,
	branchRepo repository.BranchRepository,
	customerRepo repository.CustomerRepository,
	generator ReceiptPDFGenerator,
	store StoreInfo,
) *TransactionQueryUseCase {
	return &TransactionQueryUseCase{
		transactionRepo: transactionRepo,
		branchRepo:      branchRepo,
		customerRepo:    customerRepo,
		generator:       generator,
		store:           store,
	}
}

// GetByID devuelve cabecera y líneas. scopeBranch vacío permite cualquier sucursal;
// si no, la venta debe pertenecer a esa sucursal (ErrForbidden).
func (uc *TransactionQueryUseCase) GetByID(ctx context.Context, id int64, scopeBranch string) (*dto.TransactionResponse, error) {
	t, items, err := uc.load(ctx, id, scopeBranch)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(t, items), nil
}

// DownloadReceiptPDF genera el recibo de la venta.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta no existe.
//   - domain.ErrForbidden       si la venta es de otra sucursal.
func (uc *TransactionQueryUseCase) DownloadReceiptPDF(ctx context.Context, id int64, scopeBranch string) ([]byte, string, error) {
	t, items, err := uc.load(ctx, id, scopeBranch)
	if err != nil {
		return nil, "", err
	}

	receipt := &Receipt{Store: uc.store, Transaction: t, Items: items}
	if branch, bErr := uc.branchRepo.GetByCode(ctx, t.BranchCode); bErr == nil {
		receipt.Branch = branch
	}
	if t.CustomerID != nil {
		if c, cErr := uc.customerRepo.GetByID(ctx, *t.CustomerID); cErr == nil {
			receipt.Customer = c
		}
	}

	pdfBytes, err := uc.generator.GenerateReceiptPDF(ctx, receipt)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("recibo_%s.pdf", t.InvoiceNumber), nil
}

func (uc *TransactionQueryUseCase) load(ctx context.Context, id int64, scopeBranch string) (*entity.Transaction, []*entity.TransactionItem, error) {
	if id <= 0 {
		return nil, nil, domain.NewValidationError("id", "debe ser mayor que 0")
	}
	t, err := uc.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener venta: %w", err)
	}
	if t == nil {
		return nil, nil, domain.NotFoundf("venta %d", id)
	}
	if scopeBranch != "" && t.BranchCode != scopeBranch {
		return nil, nil, domain.ErrForbidden
	}
	items, err := uc.transactionRepo.GetItems(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener líneas de venta: %w", err)
	}
	return t, items, nil
}

func toTransactionResponse(t *entity.Transaction, items []*entity.TransactionItem) *dto.TransactionResponse {
	out := &dto.TransactionResponse{
		TransactionID:   t.ID,
		InvoiceNumber:   t.InvoiceNumber,
		BranchCode:      t.BranchCode,
		UserID:          t.UserID,
		CustomerID:      t.CustomerID,
		TotalAmount:     t.TotalAmount,
		PaymentMethod:   t.PaymentMethod,
		AmountReceived:  t.AmountReceived,
		ChangeAmount:    t.ChangeAmount,
		ReferenceNumber: t.ReferenceNumber,
		Notes:           t.Notes,
		TransactionDate: t.TransactionDate,
		Items:           make([]dto.TransactionItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.TransactionItemResponse{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			PricePerItem: it.PricePerItem,
			Subtotal:     it.Subtotal,
		})
	}
	return out
}
