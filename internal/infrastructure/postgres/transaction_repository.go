package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// NextInvoiceSequence reserva el consecutivo del día para la sucursal.
//
// La fila (branch_code, CURRENT_DATE) de invoice_sequences queda bloqueada por el upsert hasta el
// commit, así que dos ventas concurrentes de la misma sucursal se serializan aquí y no repiten número.
// La primera venta del día siembra el contador con COUNT(ventas de hoy)+1.
func (r *TransactionRepo) NextInvoiceSequence(ctx context.Context, branchCode string) (int, time.Time, error) {
	query := `
		INSERT INTO invoice_sequences (branch_code, sequence_date, last_seq)
		SELECT $1::text, CURRENT_DATE, COUNT(*) + 1
		FROM transactions
		WHERE branch_code = $1::text
		  AND transaction_date >= CURRENT_DATE
		  AND transaction_date < CURRENT_DATE + 1
		ON CONFLICT (branch_code, sequence_date)
		DO UPDATE SET last_seq = invoice_sequences.last_seq + 1
		RETURNING last_seq, sequence_date`
	var (
		seq int
		day time.Time
	)
	if err := r.q.QueryRow(ctx, query, branchCode).Scan(&seq, &day); err != nil {
		return 0, time.Time{}, fmt.Errorf("next invoice sequence: %w", err)
	}
	return seq, day, nil
}

// Create inserta la cabecera; transaction_date la fija el motor (now()).
// Un invoice_number repetido es un fallo de almacenamiento, no de negocio.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (invoice_number, branch_code, user_id, total_amount, payment_method,
			amount_received, change_amount, reference_number, notes, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING transaction_id, transaction_date`
	err := r.q.QueryRow(ctx, query,
		t.InvoiceNumber, t.BranchCode, t.UserID, t.TotalAmount, t.PaymentMethod,
		t.AmountReceived, t.ChangeAmount, nullIfEmpty(t.ReferenceNumber), nullIfEmpty(t.Notes), t.CustomerID,
	).Scan(&t.ID, &t.TransactionDate)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// CreateItems inserta todas las líneas en un único INSERT multi-fila.
// No asigna items[i].ID: el orden de RETURNING no está garantizado frente al de VALUES.
func (r *TransactionRepo) CreateItems(ctx context.Context, items []*entity.TransactionItem) error {
	if len(items) == 0 {
		return nil
	}
	query, args := buildItemsInsert(items)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert transaction items: %w", err)
	}
	if n := tag.RowsAffected(); n != int64(len(items)) {
		return fmt.Errorf("insert transaction items: %d filas insertadas, se esperaban %d", n, len(items))
	}
	return nil
}

func buildItemsInsert(items []*entity.TransactionItem) (string, []any) {
	const cols = 6
	var sb strings.Builder
	sb.WriteString(`INSERT INTO transaction_items
		(transaction_id, product_id, product_name, quantity, price_per_item, subtotal) VALUES `)
	args := make([]any, 0, len(items)*cols)
	for i, it := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * cols
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5, n+6)
		args = append(args, it.TransactionID, it.ProductID, it.ProductName, it.Quantity, it.PricePerItem, it.Subtotal)
	}
	return sb.String(), args
}

// GetByID obtiene la cabecera de una venta.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	query := `
		SELECT transaction_id, invoice_number, branch_code, user_id, total_amount, payment_method,
			amount_received, change_amount, reference_number, notes, customer_id, transaction_date
		FROM transactions WHERE transaction_id = $1`
	var (
		t          entity.Transaction
		ref, notes *string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.InvoiceNumber, &t.BranchCode, &t.UserID, &t.TotalAmount, &t.PaymentMethod,
		&t.AmountReceived, &t.ChangeAmount, &ref, &notes, &t.CustomerID, &t.TransactionDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	t.ReferenceNumber, t.Notes = derefString(ref), derefString(notes)
	return &t, nil
}

// GetItems obtiene las líneas de una venta en orden de inserción.
func (r *TransactionRepo) GetItems(ctx context.Context, transactionID int64) ([]*entity.TransactionItem, error) {
	query := `
		SELECT item_id, transaction_id, product_id, product_name, quantity, price_per_item, subtotal
		FROM transaction_items WHERE transaction_id = $1 ORDER BY item_id`
	rows, err := r.q.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransactionItem
	for rows.Next() {
		var it entity.TransactionItem
		if err := rows.Scan(&it.ID, &it.TransactionID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.PricePerItem, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan transaction item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
