package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
// Sin fila devuelve cantidad 0 (no hay nada que bloquear).
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID, branchID int64) (*entity.BranchInventory, error) {
	query := `
		SELECT product_id, branch_id, quantity, last_restock_date
		FROM branch_inventory WHERE product_id = $1 AND branch_id = $2
		FOR UPDATE`
	var s entity.BranchInventory
	err := r.q.QueryRow(ctx, query, productID, branchID).Scan(
		&s.ProductID, &s.BranchID, &s.Quantity, &s.LastRestockDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.BranchInventory{ProductID: productID, BranchID: branchID}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Decrement resta quantity del stock. La fila debe existir (bloqueada antes con GetForUpdate).
func (r *InventoryRepo) Decrement(ctx context.Context, productID, branchID int64, quantity int) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE branch_inventory SET quantity = quantity - $1
		WHERE product_id = $2 AND branch_id = $3`,
		quantity, productID, branchID,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("decrement stock: sin fila para producto %d en sucursal %d", productID, branchID)
	}
	return nil
}

// AddStock suma quantity al stock (upsert) y marca la fecha de reposición.
func (r *InventoryRepo) AddStock(ctx context.Context, productID, branchID int64, quantity int) error {
	query := `
		INSERT INTO branch_inventory (product_id, branch_id, quantity, last_restock_date)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, branch_id)
		DO UPDATE SET quantity = branch_inventory.quantity + EXCLUDED.quantity, last_restock_date = now()`
	if _, err := r.q.Exec(ctx, query, productID, branchID, quantity); err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}
