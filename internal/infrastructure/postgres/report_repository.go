package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes de ventas.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// monthRange filtra transaction_date por [día 1 del mes, día 1 del mes siguiente).
const monthRange = `
	t.branch_code = $1
	AND t.transaction_date >= make_date($3::int, $2::int, 1)
	AND t.transaction_date < make_date($3::int, $2::int, 1) + INTERVAL '1 month'`

// GetMonthlySummary suma, cuenta y promedia las ventas del mes.
func (r *ReportRepo) GetMonthlySummary(ctx context.Context, branchCode string, month, year int) (repository.SalesSummary, error) {
	query := `
		SELECT COALESCE(SUM(t.total_amount), 0), COUNT(*), COALESCE(AVG(t.total_amount), 0)
		FROM transactions t
		WHERE ` + monthRange
	var s repository.SalesSummary
	if err := r.q.QueryRow(ctx, query, branchCode, month, year).Scan(
		&s.TotalRevenue, &s.TotalTransactions, &s.AverageTransactionValue,
	); err != nil {
		return repository.SalesSummary{}, fmt.Errorf("monthly summary: %w", err)
	}
	return s, nil
}

// GetTopProducts agrupa por el nombre congelado en la línea de venta.
func (r *ReportRepo) GetTopProducts(ctx context.Context, branchCode string, month, year, limit int) ([]repository.TopProduct, error) {
	query := `
		SELECT ti.product_name, SUM(ti.quantity) AS total_quantity_sold
		FROM transaction_items ti
		JOIN transactions t ON t.transaction_id = ti.transaction_id
		WHERE ` + monthRange + `
		GROUP BY ti.product_name
		ORDER BY total_quantity_sold DESC, ti.product_name
		LIMIT $4`
	rows, err := r.q.Query(ctx, query, branchCode, month, year, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProduct
	for rows.Next() {
		var p repository.TopProduct
		if err := rows.Scan(&p.ProductName, &p.TotalQuantitySold); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
