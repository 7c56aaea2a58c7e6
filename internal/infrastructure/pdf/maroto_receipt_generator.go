// Package pdf genera el recibo de venta de la óptica con Maroto v2.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────┐
//	│  Óptica + sucursal   │  N° factura + fecha │
//	│  Dirección / Tel                          │
//	│  Cliente (si hay)                         │
//	│  Cant | Producto | P.Unit | Subtotal      │
//	│  Total / Pago / Recibido / Cambio         │
//	│  QR con el número de factura              │
//	└──────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/optica-pos/internal/application/sales"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ sales.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa sales.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, r *sales.Receipt) ([]byte, error) {
	if r == nil || r.Transaction == nil {
		return nil, fmt.Errorf("pdf: recibo sin venta")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Recibo "+r.Transaction.InvoiceNumber, true).
		WithAuthor(nonEmpty(r.Store.Name, "Optik"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(storeRow(r.Store))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if r.Customer != nil {
		m.AddRows(customerRow(r.Customer))
	}

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(r.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r.Transaction))
	if r.Transaction.ReferenceNumber != "" || r.Transaction.Notes != "" {
		m.AddRows(notesRow(r.Transaction))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(r.Transaction.InvoiceNumber))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: óptica y sucursal (izq), número de factura y fecha (der).
func headerRow(r *sales.Receipt) core.Row {
	branch := r.Transaction.BranchCode
	if r.Branch != nil && r.Branch.Name != "" {
		branch = r.Branch.Name + " (" + r.Branch.Code + ")"
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(r.Store.Name, "Optik"), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Cabang: "+branch, props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("NOTA PENJUALAN", props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(r.Transaction.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 6,
			}),
			text.New(r.Transaction.TransactionDate.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func storeRow(s sales.StoreInfo) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%s   |   Tel: %s", nonEmpty(s.Address, "-"), nonEmpty(s.Phone, "-")),
			props.Text{Size: 7, Top: 1, Color: colorGray}),
	))
}

func customerRow(c *entity.Customer) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("PELANGGAN", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1}),
		text.New(fmt.Sprintf("%s   |   %s", c.Name, c.PhoneNumber), props.Text{Size: 8, Top: 5}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Qty", 1, align.Center),
		h("Produk", 5, align.Left),
		h("Harga", 3, align.Right),
		h("Subtotal", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// itemRows: una fila por línea, con el nombre congelado al momento de la venta.
func itemRows(items []*entity.TransactionItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity), props.Text{Size: 7, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(it.ProductName, props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(3).Add(text.New(money(it.PricePerItem), props.Text{Size: 7, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(money(it.Subtotal), props.Text{Size: 7, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

// totalsRow: total, método de pago, monto recibido y cambio alineados a la derecha.
func totalsRow(t *entity.Transaction) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 8, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 8, Align: align.Right, Right: 1, Top: top})
	}
	grand := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary}

	grandLabel, grandValue := grand, grand
	grandLabel.Right, grandValue.Right = 2, 1

	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			text.New("TOTAL:", grandLabel),
			label("Pembayaran:", 5),
			label("Diterima:", 10),
			label("Kembalian:", 15),
		),
		col.New(4).Add(
			text.New(money(t.TotalAmount), grandValue),
			value(t.PaymentMethod, 5),
			value(money(t.AmountReceived), 10),
			value(money(t.ChangeAmount), 15),
		),
	)
}

func notesRow(t *entity.Transaction) core.Row {
	var s string
	if t.ReferenceNumber != "" {
		s = "Ref: " + t.ReferenceNumber
	}
	if t.Notes != "" {
		if s != "" {
			s += "   |   "
		}
		s += t.Notes
	}
	return row.New(6).Add(col.New(12).Add(text.New(s, props.Text{Size: 7, Top: 1, Color: colorGray})))
}

// footerRow: QR con el número de factura para búsqueda rápida en caja.
func footerRow(invoiceNumber string) core.Row {
	return row.New(28).Add(
		col.New(4).Add(code.NewQr(invoiceNumber, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New("Terima kasih atas kunjungan Anda.", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 6, Left: 3, Color: colorPrimary,
			}),
			text.New("Simpan nota ini sebagai bukti pembelian.", props.Text{
				Size: 7, Top: 13, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func money(d decimal.Decimal) string {
	s := d.StringFixed(0)
	if d.IsNegative() {
		return "-Rp " + formatMoney(s[1:])
	}
	return "Rp " + formatMoney(s)
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
