package dashboard

import "errors"

// Error kinds. Use errors.Is on a returned *Error to classify it.
var (
	ErrTransport  = errors.New("store request failed")
	ErrFormatting = errors.New("result could not be processed")
)

// Public messages, one per reader.
const (
	MsgFetchRevenue          = "Failed to fetch revenue data."
	MsgFetchLatestInvoices   = "Failed to fetch the latest invoices."
	MsgFetchCardData         = "Failed to fetch card data."
	MsgFetchInvoices         = "Failed to fetch invoices."
	MsgFetchInvoicesPages    = "Failed to fetch total number of invoices."
	MsgFetchInvoice          = "Failed to fetch invoice."
	MsgFetchCustomers        = "Failed to fetch all customers."
	MsgFetchCustomersTable   = "Failed to fetch customer table."
	MsgFetchInvoicesByAmount = "Failed to fetch invoices by amount."
)

// Error is returned by every reader. The underlying cause is logged, never exposed.
type Error struct {
	Kind    error
	Message string
}

// Error returns the public message
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the kind
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}
