package entity

import "time"

// BranchInventory representa el stock de un producto en una sucursal (clave compuesta producto+sucursal).
// Quantity nunca debe quedar negativa por una transacción confirmada.
type BranchInventory struct {
	ProductID       int64
	BranchID        int64
	Quantity        int
	LastRestockDate *time.Time
}
