package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommitTransactionRequest body de POST /api/transactions.
// UserID lo sobrescribe el handler con el usuario autenticado.
type CommitTransactionRequest struct {
	BranchCode      string                   `json:"branch_code" validate:"required,max=20"`
	UserID          int64                    `json:"user_id"`
	Items           []TransactionItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount     *decimal.Decimal         `json:"total_amount" validate:"required"`
	PaymentMethod   string                   `json:"payment_method" validate:"required,max=30"`
	AmountReceived  decimal.Decimal          `json:"amount_received"`
	ChangeAmount    decimal.Decimal          `json:"change_amount"`
	ReferenceNumber string                   `json:"reference_number" validate:"max=100"`
	Notes           string                   `json:"notes"`
	CustomerData    *CustomerDataRequest     `json:"customer_data"`
}

// TransactionItemRequest línea del carrito.
type TransactionItemRequest struct {
	ProductID    int64           `json:"product_id" validate:"required,gt=0"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity" validate:"required,gt=0"`
	PricePerItem decimal.Decimal `json:"price_per_item"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// CustomerDataRequest datos del cliente opcionales; el teléfono es la llave.
type CustomerDataRequest struct {
	Name        string `json:"name" validate:"max=200"`
	PhoneNumber string `json:"phone_number" validate:"max=30"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
}

// CommitTransactionResponse resultado de una venta confirmada.
type CommitTransactionResponse struct {
	Message       string `json:"message"`
	TransactionID int64  `json:"transactionId"`
	InvoiceNumber string `json:"invoiceNumber"`
}

// TransactionResponse cabecera y líneas de una venta (datos del recibo).
type TransactionResponse struct {
	TransactionID   int64                     `json:"transaction_id"`
	InvoiceNumber   string                    `json:"invoice_number"`
	BranchCode      string                    `json:"branch_code"`
	UserID          int64                     `json:"user_id"`
	CustomerID      *int64                    `json:"customer_id"`
	TotalAmount     decimal.Decimal           `json:"total_amount"`
	PaymentMethod   string                    `json:"payment_method"`
	AmountReceived  decimal.Decimal           `json:"amount_received"`
	ChangeAmount    decimal.Decimal           `json:"change_amount"`
	ReferenceNumber string                    `json:"reference_number,omitempty"`
	Notes           string                    `json:"notes,omitempty"`
	TransactionDate time.Time                 `json:"transaction_date"`
	Items           []TransactionItemResponse `json:"items"`
}

// TransactionItemResponse línea persistida con el nombre congelado al momento de la venta.
type TransactionItemResponse struct {
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	PricePerItem decimal.Decimal `json:"price_per_item"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}
