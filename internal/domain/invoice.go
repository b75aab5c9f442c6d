package domain

import "github.com/shopspring/decimal"

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice is a row of the invoices table. Amount is stored in cents and Date as YYYY-MM-DD.
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     int64         `json:"amount"`
	Date       string        `json:"date"`
	Status     InvoiceStatus `json:"status"`
}

// InvoiceCustomer is the customer relation embedded in an invoice row.
type InvoiceCustomer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// InvoiceWithCustomer is an invoice joined with its customer as the store returns it.
// Amount and Customer are nil when the store has no value for them.
type InvoiceWithCustomer struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customer_id"`
	Amount     *int64           `json:"amount"`
	Date       string           `json:"date"`
	Status     InvoiceStatus    `json:"status"`
	Customer   *InvoiceCustomer `json:"customers"`
}

// InvoiceAmount is the projection used for client-side sums.
type InvoiceAmount struct {
	ID     string        `json:"id"`
	Amount *int64        `json:"amount"`
	Status InvoiceStatus `json:"status"`
}

// CentsOrZero returns the amount or 0 when the store had none.
func CentsOrZero(amount *int64) int64 {
	if amount == nil {
		return 0
	}
	return *amount
}

// LatestInvoice is a row of the "latest invoices" widget.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

// InvoicesTable is a row of the paginated invoices table. Amount stays in cents.
type InvoicesTable struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	ImageURL   string        `json:"image_url"`
	Date       string        `json:"date"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

// InvoiceForm feeds the edit form; Amount is expressed in currency units, not cents.
type InvoiceForm struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     InvoiceStatus   `json:"status"`
}

// InvoiceAmountRow is an invoice amount paired with the customer name.
type InvoiceAmountRow struct {
	Amount int64  `json:"amount"`
	Name   string `json:"name"`
}
