package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.product_id, p.product_code, p.product_name, p.brand_name,
	p.category_id, pc.category_name, p.description, p.purchase_price, p.selling_price,
	p.unit, p.track_serial_batch, p.image_url`

// Create persiste un nuevo producto y asigna su ID. Código repetido → domain.ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (product_code, product_name, brand_name, category_id, description,
			purchase_price, selling_price, unit, track_serial_batch, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING product_id`
	err := r.q.QueryRow(ctx, query,
		p.Code, p.Name, nullIfEmpty(p.BrandName), p.CategoryID, nullIfEmpty(p.Description),
		p.PurchasePrice, p.SellingPrice, nullIfEmpty(p.Unit), p.TrackSerialBatch, nullIfEmpty(p.ImageURL),
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN product_categories pc ON pc.category_id = p.category_id
		WHERE p.product_id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByIDs obtiene varios productos en una sola consulta. Los IDs inexistentes no aparecen en el mapa.
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error) {
	out := make(map[int64]*entity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN product_categories pc ON pc.category_id = p.category_id
		WHERE p.product_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out[p.ID] = p
	}
	return out, rows.Err()
}

// ListWithStock lista el catálogo con el stock de la sucursal (0 si no hay fila o la sucursal no existe).
func (r *ProductRepo) ListWithStock(ctx context.Context, branchCode string) ([]*entity.ProductWithStock, error) {
	query := `SELECT ` + productColumns + `, COALESCE(bi.quantity, 0)
		FROM products p
		LEFT JOIN product_categories pc ON pc.category_id = p.category_id
		LEFT JOIN branch_inventory bi ON bi.product_id = p.product_id
			AND bi.branch_id = (SELECT branch_id FROM branches WHERE branch_code = $1)
		ORDER BY p.product_name, p.product_id`
	rows, err := r.q.Query(ctx, query, branchCode)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductWithStock
	for rows.Next() {
		var (
			p                                     entity.ProductWithStock
			brand, catName, desc, unit, imageURL *string
			purchase                              *decimal.Decimal
		)
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Name, &brand,
			&p.CategoryID, &catName, &desc, &purchase, &p.SellingPrice,
			&unit, &p.TrackSerialBatch, &imageURL, &p.Stock,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.BrandName, p.CategoryName, p.Description = derefString(brand), derefString(catName), derefString(desc)
		p.Unit, p.ImageURL, p.PurchasePrice = derefString(unit), derefString(imageURL), purchase
		list = append(list, &p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p                                     entity.Product
		brand, catName, desc, unit, imageURL *string
	)
	if err := row.Scan(
		&p.ID, &p.Code, &p.Name, &brand,
		&p.CategoryID, &catName, &desc, &p.PurchasePrice, &p.SellingPrice,
		&unit, &p.TrackSerialBatch, &imageURL,
	); err != nil {
		return nil, err
	}
	p.BrandName, p.CategoryName, p.Description = derefString(brand), derefString(catName), derefString(desc)
	p.Unit, p.ImageURL = derefString(unit), derefString(imageURL)
	return &p, nil
}
