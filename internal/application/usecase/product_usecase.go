package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

// DefaultBranchCode sucursal usada cuando ni la consulta ni el token indican una.
const DefaultBranchCode = "TBB"

// ProductUseCase catálogo de productos con stock por sucursal.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner CatalogTxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner CatalogTxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// List devuelve todo el catálogo con el stock de branchCode (0 si la sucursal no tiene fila).
func (uc *ProductUseCase) List(ctx context.Context, branchCode string) ([]dto.ProductResponse, error) {
	branchCode = strings.TrimSpace(branchCode)
	if branchCode == "" {
		branchCode = DefaultBranchCode
	}
	rows, err := uc.repo.ListWithStock(ctx, branchCode)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Create da de alta el producto. Si Stock > 0 crea la fila de inventario en la sucursal indicada.
// Categoría desconocida queda en NULL; sucursal desconocida aborta con ErrNotFound.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if strings.TrimSpace(in.ProductCode) == "" {
		return nil, domain.NewValidationError("product_code", "es requerido")
	}
	if !in.Price.IsPositive() {
		return nil, domain.NewValidationError("price", "debe ser mayor que 0")
	}
	if in.PurchasePrice != nil && in.PurchasePrice.IsNegative() {
		return nil, domain.NewValidationError("purchase_price", "no puede ser negativo")
	}
	if in.Stock < 0 {
		return nil, domain.NewValidationError("stock", "no puede ser negativo")
	}
	branchCode := strings.TrimSpace(in.BranchCode)
	if branchCode == "" {
		branchCode = DefaultBranchCode
	}

	product := &entity.Product{
		Code:             strings.TrimSpace(in.ProductCode),
		Name:             strings.TrimSpace(in.Name),
		BrandName:        strings.TrimSpace(in.Brand),
		Description:      in.Description,
		PurchasePrice:    in.PurchasePrice,
		SellingPrice:     in.Price,
		Unit:             strings.TrimSpace(in.Unit),
		TrackSerialBatch: in.TrackSerialBatch,
		ImageURL:         strings.TrimSpace(in.ImageURL),
	}

	err := uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		categoryRepo repository.CategoryRepository,
		branchRepo repository.BranchRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if name := strings.TrimSpace(in.Category); name != "" {
			cat, err := categoryRepo.GetByName(ctx, name)
			if err != nil {
				return err
			}
			if cat != nil {
				product.CategoryID = &cat.ID
				product.CategoryName = cat.Name
			}
		}
		branch, err := branchRepo.GetByCode(ctx, branchCode)
		if err != nil {
			return err
		}
		if branch == nil {
			return domain.NotFoundf("sucursal %q", branchCode)
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if in.Stock > 0 {
			return inventoryRepo.AddStock(ctx, product.ID, branch.ID, in.Stock)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateProductResponse{Message: "Producto creado", ProductID: product.ID}, nil
}

func toProductResponse(p *entity.ProductWithStock) dto.ProductResponse {
	category := p.CategoryName
	if category == "" {
		category = entity.DefaultCategoryName
	}
	return dto.ProductResponse{
		ID:               p.ID,
		ProductCode:      p.Code,
		Name:             p.Name,
		Category:         category,
		Brand:            p.BrandName,
		Description:      p.Description,
		Price:            p.SellingPrice,
		PurchasePrice:    p.PurchasePrice,
		Unit:             p.Unit,
		TrackSerialBatch: p.TrackSerialBatch,
		ImageURL:         p.ImageURL,
		Stock:            p.Stock,
	}
}
