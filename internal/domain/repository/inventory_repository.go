package repository

import (
	"context"

	"github.com/jhoicas/optica-pos/internal/domain/entity"
)

// InventoryRepository define el puerto para consultar/actualizar stock por producto+sucursal.
// Usado dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) hasta el commit/rollback.
	// Si no hay fila devuelve Quantity 0.
	GetForUpdate(ctx context.Context, productID, branchID int64) (*entity.BranchInventory, error)
	// Decrement resta quantity del stock de la sucursal.
	Decrement(ctx context.Context, productID, branchID int64, quantity int) error
	// AddStock suma quantity (crea la fila si no existe) y marca last_restock_date.
	AddStock(ctx context.Context, productID, branchID int64, quantity int) error
}
