package dto

import "github.com/shopspring/decimal"

// SalesReportQuery parámetros de GET /api/reports/sales.
type SalesReportQuery struct {
	Month      int    `query:"month" validate:"required,min=1,max=12"`
	Year       int    `query:"year" validate:"required,min=2000,max=9999"`
	BranchCode string `query:"branch_code" validate:"required"`
}

// SalesSummaryDTO totales del mes.
type SalesSummaryDTO struct {
	TotalRevenue            decimal.Decimal `json:"total_revenue"`
	TotalTransactions       int             `json:"total_transactions"`
	AverageTransactionValue decimal.Decimal `json:"average_transaction_value"`
}

// TopProductDTO producto más vendido por unidades.
type TopProductDTO struct {
	ProductName       string `json:"product_name"`
	TotalQuantitySold int    `json:"total_quantity_sold"`
}

// SalesReportResponse reporte mensual de una sucursal.
type SalesReportResponse struct {
	Summary            SalesSummaryDTO `json:"summary"`
	TopSellingProducts []TopProductDTO `json:"top_selling_products"`
}
