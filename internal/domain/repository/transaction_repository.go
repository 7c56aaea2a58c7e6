package repository

import (
	"context"
	"time"

	"github.com/jhoicas/optica-pos/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para ventas y sus líneas.
type TransactionRepository interface {
	// NextInvoiceSequence reserva el siguiente consecutivo diario de la sucursal.
	// El día es la fecha actual del motor de BD, no la del proceso.
	NextInvoiceSequence(ctx context.Context, branchCode string) (seq int, day time.Time, err error)
	// Create inserta la cabecera y asigna ID y TransactionDate.
	Create(ctx context.Context, tx *entity.Transaction) error
	// CreateItems inserta todas las líneas en una sola sentencia.
	CreateItems(ctx context.Context, items []*entity.TransactionItem) error
	GetByID(ctx context.Context, id int64) (*entity.Transaction, error)
	GetItems(ctx context.Context, transactionID int64) ([]*entity.TransactionItem, error)
}
