package usecase

import (
	"context"

	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

// CatalogTxRunner ejecuta el alta de producto y su stock inicial en una sola transacción.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		categoryRepo repository.CategoryRepository,
		branchRepo repository.BranchRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
