package domain

import "time"

// PaymentEntry is the payment document a remittance detail row is built
// from. BankAccount names the company-side account the entry debits; Party
// is the beneficiary name printed on the row.
type PaymentEntry struct {
	ID            string          `json:"id"`
	ModeOfPayment string          `json:"mode_of_payment"`
	Party         string          `json:"party"`
	BankAccount   string          `json:"bank_account"`
	PostingDate   time.Time       `json:"posting_date"`
	Advices       []AdvicePayment `json:"advices"`
}

// AdvicePayment is one invoice settled by a payment entry. Each produces an
// advice ("E") row under the owning detail row.
type AdvicePayment struct {
	TotalAmount       float64   `json:"total_amount"`
	OutstandingAmount float64   `json:"outstanding_amount"`
	ReferenceName     string    `json:"reference_name"`
	DueDate           time.Time `json:"due_date"`
}
