package sales

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/optica-pos/internal/domain"
)

// CartLine línea de carrito tal como llega de caja.
type CartLine struct {
	ProductID    int64
	ProductName  string
	Quantity     int
	PricePerItem decimal.Decimal
	Subtotal     decimal.Decimal
}

// ValidateCart comprueba los campos obligatorios de cada línea, que cada subtotal sea
// precio × cantidad y que la suma de subtotales coincida con el total declarado.
// Se rechaza en vez de recalcular: el total es lo que se cobró.
func ValidateCart(lines []CartLine, totalAmount decimal.Decimal) error {
	if len(lines) == 0 {
		return domain.NewValidationError("items", "no puede estar vacío")
	}
	sum := decimal.Zero
	for i, l := range lines {
		field := fmt.Sprintf("items[%d]", i)
		if l.ProductID <= 0 {
			return domain.NewValidationError(field+".product_id", "es requerido")
		}
		if l.Quantity <= 0 {
			return domain.NewValidationError(field+".quantity", "debe ser mayor que 0")
		}
		if l.PricePerItem.IsNegative() {
			return domain.NewValidationError(field+".price_per_item", "no puede ser negativo")
		}
		if l.Subtotal.IsNegative() {
			return domain.NewValidationError(field+".subtotal", "no puede ser negativo")
		}
		if expected := l.PricePerItem.Mul(decimal.NewFromInt(int64(l.Quantity))); !l.Subtotal.Equal(expected) {
			return domain.NewValidationError(field+".subtotal",
				fmt.Sprintf("(%s) no coincide con precio × cantidad (%s)", l.Subtotal.String(), expected.String()))
		}
		sum = sum.Add(l.Subtotal)
	}
	if !sum.Equal(totalAmount) {
		return domain.NewValidationError("total_amount",
			fmt.Sprintf("(%s) no coincide con la suma de subtotales (%s)", totalAmount.String(), sum.String()))
	}
	return nil
}

// StockDemand cantidad total requerida de un producto en el carrito.
type StockDemand struct {
	ProductID int64
	Quantity  int
}

// AggregateDemand agrupa las cantidades por producto y las ordena por ProductID ascendente.
// El orden fijo hace que dos carritos concurrentes tomen los bloqueos de fila en el mismo orden.
func AggregateDemand(lines []CartLine) []StockDemand {
	byProduct := make(map[int64]int, len(lines))
	for _, l := range lines {
		byProduct[l.ProductID] += l.Quantity
	}
	out := make([]StockDemand, 0, len(byProduct))
	for id, qty := range byProduct {
		out = append(out, StockDemand{ProductID: id, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
