package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// SalesSummary resultado crudo del resumen mensual de una sucursal.
type SalesSummary struct {
	TotalRevenue            decimal.Decimal
	TotalTransactions       int
	AverageTransactionValue decimal.Decimal
}

// TopProduct producto más vendido del período (por unidades).
type TopProduct struct {
	ProductName       string
	TotalQuantitySold int
}

// ReportRepository consultas de solo lectura para reportes de ventas.
type ReportRepository interface {
	GetMonthlySummary(ctx context.Context, branchCode string, month, year int) (SalesSummary, error)
	GetTopProducts(ctx context.Context, branchCode string, month, year, limit int) ([]TopProduct, error)
}
