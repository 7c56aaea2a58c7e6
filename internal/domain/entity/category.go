package entity

// Category representa una categoría de productos (monturas, lentes, lentes de contacto, ...).
type Category struct {
	ID   int64
	Name string
}

// DefaultCategoryName se usa en listados cuando el producto no tiene categoría.
const DefaultCategoryName = "Lainnya"
