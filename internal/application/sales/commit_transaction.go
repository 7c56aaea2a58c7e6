package sales

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
	domsales "github.com/jhoicas/optica-pos/internal/domain/sales"
	"github.com/jhoicas/optica-pos/pkg/logger"
)

// CommitTransactionUseCase registra una venta de caja: valida el carrito, bloquea el stock,
// resuelve el cliente, asigna número de factura, guarda cabecera y líneas y descuenta inventario,
// todo en una sola transacción.
//
// No es idempotente: dos llamadas idénticas producen dos ventas y dos descuentos de stock.
type CommitTransactionUseCase struct {
	txRunner SalesTxRunner
	log      *logger.Logger
}

// NewCommitTransactionUseCase construye el caso de uso.
func NewCommitTransactionUseCase(txRunner SalesTxRunner, log *logger.Logger) *CommitTransactionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CommitTransactionUseCase{txRunner: txRunner, log: log}
}

// Commit ejecuta la venta. Errores posibles:
//   - *domain.ValidationError (ErrInvalidInput): datos faltantes o inconsistentes, sin tocar la BD.
//   - domain.ErrNotFound: sucursal o producto inexistente.
//   - *domain.InsufficientStockError: la cantidad pedida supera el stock bloqueado.
//   - *domain.StorageError: cualquier otro fallo de BD (conexión, constraint, timeout).
func (uc *CommitTransactionUseCase) Commit(ctx context.Context, in dto.CommitTransactionRequest) (*dto.CommitTransactionResponse, error) {
	lines, err := validateCommit(in)
	if err != nil {
		return nil, err
	}
	branchCode := strings.TrimSpace(in.BranchCode)

	var header *entity.Transaction
	err = uc.txRunner.RunSales(ctx, func(
		branchRepo repository.BranchRepository,
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		customerRepo repository.CustomerRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		// 1) Sucursal
		branch, err := branchRepo.GetByCode(ctx, branchCode)
		if err != nil {
			return err
		}
		if branch == nil {
			return domain.NotFoundf("sucursal %q", branchCode)
		}

		// Catálogo: nombres a congelar en las líneas
		products, err := productRepo.GetByIDs(ctx, productIDs(lines))
		if err != nil {
			return err
		}
		for _, l := range lines {
			if _, ok := products[l.ProductID]; !ok {
				return domain.NotFoundf("producto %d", l.ProductID)
			}
		}

		// 2) Stock con bloqueo de fila, en orden de producto
		for _, d := range domsales.AggregateDemand(lines) {
			stock, err := inventoryRepo.GetForUpdate(ctx, d.ProductID, branch.ID)
			if err != nil {
				return err
			}
			if stock.Quantity < d.Quantity {
				return &domain.InsufficientStockError{
					ProductID:   d.ProductID,
					ProductName: products[d.ProductID].Name,
					Requested:   d.Quantity,
					Available:   stock.Quantity,
				}
			}
		}

		// 3) Cliente
		customerID, err := resolveCustomer(ctx, customerRepo, in.CustomerData)
		if err != nil {
			return err
		}

		// 4) Número de factura (fecha del motor de BD)
		seq, day, err := transactionRepo.NextInvoiceSequence(ctx, branch.Code)
		if err != nil {
			return err
		}

		// 5) Cabecera
		header = &entity.Transaction{
			InvoiceNumber:   domsales.FormatInvoiceNumber(branch.Code, day, seq),
			BranchCode:      branch.Code,
			UserID:          in.UserID,
			TotalAmount:     *in.TotalAmount,
			PaymentMethod:   strings.TrimSpace(in.PaymentMethod),
			AmountReceived:  in.AmountReceived,
			ChangeAmount:    in.ChangeAmount,
			ReferenceNumber: strings.TrimSpace(in.ReferenceNumber),
			Notes:           strings.TrimSpace(in.Notes),
			CustomerID:      customerID,
		}
		if err := transactionRepo.Create(ctx, header); err != nil {
			return err
		}

		// 6) Líneas en una sola sentencia
		items := make([]*entity.TransactionItem, 0, len(lines))
		for _, l := range lines {
			name := products[l.ProductID].Name
			if name == "" {
				name = l.ProductName
			}
			items = append(items, &entity.TransactionItem{
				TransactionID: header.ID,
				ProductID:     l.ProductID,
				ProductName:   name,
				Quantity:      l.Quantity,
				PricePerItem:  l.PricePerItem,
				Subtotal:      l.Subtotal,
			})
		}
		if err := transactionRepo.CreateItems(ctx, items); err != nil {
			return err
		}

		// 7) Descuento de stock
		for _, d := range domsales.AggregateDemand(lines) {
			if err := inventoryRepo.Decrement(ctx, d.ProductID, branch.ID, d.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, uc.classify(err, in)
	}

	uc.log.Info().
		Str("branch_code", header.BranchCode).
		Int64("user_id", header.UserID).
		Int64("transaction_id", header.ID).
		Str("invoice_number", header.InvoiceNumber).
		Str("total_amount", header.TotalAmount.String()).
		Msg("venta registrada")

	return &dto.CommitTransactionResponse{
		Message:       "Transacción registrada",
		TransactionID: header.ID,
		InvoiceNumber: header.InvoiceNumber,
	}, nil
}

// classify deja pasar los errores de negocio del flujo de venta y envuelve el resto como StorageError.
// ErrDuplicate también se trata como fallo de almacenamiento: aquí solo lo produce un constraint.
func (uc *CommitTransactionUseCase) classify(err error, in dto.CommitTransactionRequest) error {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrNotFound):
		return err
	case errors.As(err, &stockErr):
		return err
	}
	var storageErr *domain.StorageError
	if !errors.As(err, &storageErr) {
		storageErr = &domain.StorageError{Op: "commit transaction", Err: err}
	}
	uc.log.Error().
		Err(storageErr.Err).
		Str("op", storageErr.Op).
		Str("branch_code", in.BranchCode).
		Int64("user_id", in.UserID).
		Int("items", len(in.Items)).
		Msg("venta abortada por error de almacenamiento")
	return storageErr
}

// validateCommit revisa la entrada sin tocar la BD y devuelve las líneas normalizadas.
func validateCommit(in dto.CommitTransactionRequest) ([]domsales.CartLine, error) {
	if strings.TrimSpace(in.BranchCode) == "" {
		return nil, domain.NewValidationError("branch_code", "es requerido")
	}
	if in.UserID <= 0 {
		return nil, domain.NewValidationError("user_id", "es requerido")
	}
	if in.TotalAmount == nil {
		return nil, domain.NewValidationError("total_amount", "es requerido")
	}
	if in.TotalAmount.IsNegative() {
		return nil, domain.NewValidationError("total_amount", "no puede ser negativo")
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, domain.NewValidationError("payment_method", "es requerido")
	}
	if in.AmountReceived.IsNegative() {
		return nil, domain.NewValidationError("amount_received", "no puede ser negativo")
	}
	if in.ChangeAmount.IsNegative() {
		return nil, domain.NewValidationError("change_amount", "no puede ser negativo")
	}
	if cd := in.CustomerData; cd != nil && strings.TrimSpace(cd.PhoneNumber) != "" && domsales.NormalizePhone(cd.PhoneNumber) == "" {
		return nil, domain.NewValidationError("customer_data.phone_number", "no es válido")
	}

	lines := make([]domsales.CartLine, len(in.Items))
	for i, it := range in.Items {
		lines[i] = domsales.CartLine{
			ProductID:    it.ProductID,
			ProductName:  strings.TrimSpace(it.ProductName),
			Quantity:     it.Quantity,
			PricePerItem: it.PricePerItem,
			Subtotal:     it.Subtotal,
		}
	}
	if err := domsales.ValidateCart(lines, *in.TotalAmount); err != nil {
		return nil, err
	}
	return lines, nil
}

// resolveCustomer busca al cliente por teléfono y lo crea si no existe y viene con nombre.
// Sin teléfono la venta queda sin cliente.
func resolveCustomer(ctx context.Context, repo repository.CustomerRepository, cd *dto.CustomerDataRequest) (*int64, error) {
	if cd == nil {
		return nil, nil
	}
	phone := domsales.NormalizePhone(cd.PhoneNumber)
	if phone == "" {
		return nil, nil
	}
	existing, err := repo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &existing.ID, nil
	}
	name := strings.TrimSpace(cd.Name)
	if name == "" {
		return nil, nil
	}
	c := &entity.Customer{
		Name:        name,
		PhoneNumber: phone,
		Address:     strings.TrimSpace(cd.Address),
		DateOfBirth: domsales.ParseDateOfBirth(cd.DateOfBirth),
	}
	if err := repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &c.ID, nil
}

func productIDs(lines []domsales.CartLine) []int64 {
	seen := make(map[int64]struct{}, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	return ids
}
