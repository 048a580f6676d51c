package domain

import "time"

// PaymentOrder is a batch of supplier payments drawn from one company bank
// account. References keep their input order; the remittance file emits
// detail rows in exactly that order.
type PaymentOrder struct {
	ID                 string             `json:"id"`
	Company            string             `json:"company"`
	CompanyBankAccount string             `json:"company_bank_account"`
	PostingDate        time.Time          `json:"posting_date"`
	References         []PaymentReference `json:"references"`
}

// PaymentReference links one payment entry to its payout amount and the
// beneficiary-side supplier and bank account.
type PaymentReference struct {
	PaymentEntry string  `json:"payment_entry"`
	Supplier     string  `json:"supplier"`
	BankAccount  string  `json:"bank_account"`
	Amount       float64 `json:"amount"`
}
