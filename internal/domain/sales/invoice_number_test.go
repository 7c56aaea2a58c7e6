package sales_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/optica-pos/internal/domain/sales"
)

func TestFormatInvoiceNumber_PrimeraVentaDelDia(t *testing.T) {
	day := time.Date(2025, time.June, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "INV-TBB-20250607-001", sales.FormatInvoiceNumber("TBB", day, 1))
}

func TestFormatInvoiceNumber_ConsecutivoMayorA999NoSeTrunca(t *testing.T) {
	day := time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-TBB-20250607-1000", sales.FormatInvoiceNumber("TBB", day, 1000))
}
