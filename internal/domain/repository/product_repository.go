package repository

import (
	"context"

	"github.com/jhoicas/optica-pos/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create inserta el producto y asigna product.ID.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetByIDs devuelve solo los productos existentes, indexados por ID.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error)
	// ListWithStock lista todo el catálogo con el stock de la sucursal indicada (0 si no hay fila).
	ListWithStock(ctx context.Context, branchCode string) ([]*entity.ProductWithStock, error)
}
