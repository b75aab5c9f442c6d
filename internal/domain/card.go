package domain

import "time"

// CardData holds the four summary cards of the dashboard overview.
type CardData struct {
	NumberOfCustomers    int    `json:"numberOfCustomers"`
	NumberOfInvoices     int    `json:"numberOfInvoices"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

// CardSummaryReport is the outcome of one scheduled card summary run.
type CardSummaryReport struct {
	RunID       string     `json:"run_id"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Cards       *CardData  `json:"cards,omitempty"`
	Error       string     `json:"error,omitempty"`
}
