package inventory

import (
	"context"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

// StockUseCase reposición de stock por sucursal.
type StockUseCase struct {
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	branchRepo    repository.BranchRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
) *StockUseCase {
	return &StockUseCase{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		branchRepo:    branchRepo,
	}
}

// AddStock suma in.Quantity al stock del producto en la sucursal (crea la fila si no existe).
func (uc *StockUseCase) AddStock(ctx context.Context, productID int64, in dto.AddStockRequest) error {
	if productID <= 0 {
		return domain.NewValidationError("productId", "no es válido")
	}
	if in.Quantity <= 0 {
		return domain.NewValidationError("quantity", "debe ser mayor que 0")
	}
	if in.BranchID <= 0 {
		return domain.NewValidationError("branch_id", "es requerido")
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NotFoundf("producto %d", productID)
	}
	branch, err := uc.branchRepo.GetByID(ctx, in.BranchID)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.NotFoundf("sucursal %d", in.BranchID)
	}
	return uc.inventoryRepo.AddStock(ctx, productID, in.BranchID, in.Quantity)
}
