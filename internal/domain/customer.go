package domain

// Customer is a row of the customers table.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// CustomerField is the slim projection used to fill selection controls.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FormattedCustomersTable is a customer with its invoice aggregates, currency already formatted.
type FormattedCustomersTable struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int    `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}
