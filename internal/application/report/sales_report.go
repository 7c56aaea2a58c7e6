// Package report contiene los casos de uso de reportes de ventas por sucursal.
package report

import (
	"context"
	"strings"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

const topProductsLimit = 5

// SalesReportUseCase genera el resumen mensual y el ranking de productos de una sucursal.
type SalesReportUseCase struct {
	reportRepo repository.ReportRepository
	branchRepo repository.BranchRepository
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(reportRepo repository.ReportRepository, branchRepo repository.BranchRepository) *SalesReportUseCase {
	return &SalesReportUseCase{reportRepo: reportRepo, branchRepo: branchRepo}
}

// MonthlySales devuelve totales del mes y los 5 productos más vendidos por unidades.
// Un mes sin ventas devuelve ceros y lista vacía.
func (uc *SalesReportUseCase) MonthlySales(ctx context.Context, q dto.SalesReportQuery) (*dto.SalesReportResponse, error) {
	branchCode := strings.TrimSpace(q.BranchCode)
	if branchCode == "" {
		return nil, domain.NewValidationError("branch_code", "es requerido")
	}
	if q.Month < 1 || q.Month > 12 {
		return nil, domain.NewValidationError("month", "debe estar entre 1 y 12")
	}
	if q.Year < 2000 || q.Year > 9999 {
		return nil, domain.NewValidationError("year", "no es válido")
	}

	branch, err := uc.branchRepo.GetByCode(ctx, branchCode)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.NotFoundf("sucursal %q", branchCode)
	}

	summary, err := uc.reportRepo.GetMonthlySummary(ctx, branch.Code, q.Month, q.Year)
	if err != nil {
		return nil, err
	}
	top, err := uc.reportRepo.GetTopProducts(ctx, branch.Code, q.Month, q.Year, topProductsLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.SalesReportResponse{
		Summary: dto.SalesSummaryDTO{
			TotalRevenue:            summary.TotalRevenue,
			TotalTransactions:       summary.TotalTransactions,
			AverageTransactionValue: summary.AverageTransactionValue.Round(2),
		},
		TopSellingProducts: make([]dto.TopProductDTO, 0, len(top)),
	}
	for _, p := range top {
		out.TopSellingProducts = append(out.TopSellingProducts, dto.TopProductDTO{
			ProductName:       p.ProductName,
			TotalQuantitySold: p.TotalQuantitySold,
		})
	}
	return out, nil
}
