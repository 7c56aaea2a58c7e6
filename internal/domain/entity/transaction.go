package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash     = "Tunai"
	PaymentDebit    = "Debit"
	PaymentCredit   = "Kredit"
	PaymentTransfer = "Transfer"
	PaymentQRIS     = "QRIS"
)

// Transaction es la cabecera de una venta. Inmutable una vez confirmada.
type Transaction struct {
	ID              int64
	InvoiceNumber   string // INV-{branch}-{YYYYMMDD}-{seq}
	BranchCode      string
	UserID          int64
	TotalAmount     decimal.Decimal
	PaymentMethod   string
	AmountReceived  decimal.Decimal
	ChangeAmount    decimal.Decimal
	ReferenceNumber string
	Notes           string
	CustomerID      *int64
	TransactionDate time.Time
}

// TransactionItem es una línea de venta. ProductName es una copia del nombre al momento de la venta.
type TransactionItem struct {
	ID            int64
	TransactionID int64
	ProductID     int64
	ProductName   string
	Quantity      int
	PricePerItem  decimal.Decimal
	Subtotal      decimal.Decimal
}
