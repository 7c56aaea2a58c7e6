package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para POST /api/products.
// Stock > 0 crea la fila inicial de inventario en BranchCode.
type CreateProductRequest struct {
	Name             string           `json:"name" validate:"required,max=200"`
	ProductCode      string           `json:"product_code" validate:"required,max=50"`
	Category         string           `json:"category"`
	Brand            string           `json:"brand"`
	Description      string           `json:"description"`
	Price            decimal.Decimal  `json:"price"`
	PurchasePrice    *decimal.Decimal `json:"purchase_price"`
	Unit             string           `json:"unit"`
	Stock            int              `json:"stock" validate:"gte=0"`
	TrackSerialBatch bool             `json:"track_serial_batch"`
	ImageURL         string           `json:"image_url" validate:"omitempty,url"`
	BranchCode       string           `json:"branch_code"`
}

// CreateProductResponse confirma el alta con el ID asignado.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"productId"`
}

// ProductResponse producto con el stock de una sucursal, tal como lo consume la caja.
type ProductResponse struct {
	ID               int64            `json:"id"`
	ProductCode      string           `json:"product_code"`
	Name             string           `json:"name"`
	Category         string           `json:"category"`
	Brand            string           `json:"brand"`
	Description      string           `json:"description"`
	Price            decimal.Decimal  `json:"price"`
	PurchasePrice    *decimal.Decimal `json:"purchase_price"`
	Unit             string           `json:"unit,omitempty"`
	TrackSerialBatch bool             `json:"track_serial_batch"`
	ImageURL         string           `json:"image_url"`
	Stock            int              `json:"stock"`
}

// AddStockRequest body para PATCH /api/products/:productId/stock.
type AddStockRequest struct {
	Quantity int   `json:"quantity" validate:"required,gt=0"`
	BranchID int64 `json:"branch_id" validate:"required,gt=0"`
}
