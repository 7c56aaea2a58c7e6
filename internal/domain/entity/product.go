package entity

import "github.com/shopspring/decimal"

// Product representa un artículo del catálogo. El stock se maneja por sucursal en BranchInventory.
// El núcleo de ventas solo lo lee; nunca lo modifica.
type Product struct {
	ID               int64
	Code             string // código único
	Name             string
	BrandName        string
	CategoryID       *int64
	CategoryName     string
	Description      string
	PurchasePrice    *decimal.Decimal
	SellingPrice     decimal.Decimal
	Unit             string
	TrackSerialBatch bool
	ImageURL         string
}

// ProductWithStock es un producto junto con su stock en una sucursal concreta.
type ProductWithStock struct {
	Product
	Stock int
}
