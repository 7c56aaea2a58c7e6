// Package sales contiene reglas puras del punto de venta: formato del número de factura,
// validación del carrito y normalización de datos del cliente.
package sales

import (
	"fmt"
	"time"
)

const (
	invoicePrefix     = "INV"
	invoiceDateLayout = "20060102"
	// MinSequenceDigits ancho mínimo del consecutivo diario (001, 002, ...).
	MinSequenceDigits = 3
)

// FormatInvoiceNumber compone INV-{branch}-{YYYYMMDD}-{seq}. seq se rellena con ceros a 3 dígitos;
// a partir de 1000 ventas diarias crece sin truncarse.
func FormatInvoiceNumber(branchCode string, day time.Time, seq int) string {
	return fmt.Sprintf("%s-%s-%s-%0*d", invoicePrefix, branchCode, day.Format(invoiceDateLayout), MinSequenceDigits, seq)
}
