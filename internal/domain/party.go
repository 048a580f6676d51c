package domain

// AddressType distinguishes supplier address records.
type AddressType string

const (
	AddressBilling  AddressType = "Billing"
	AddressShipping AddressType = "Shipping"
)

// Company holds the company fields the generator needs.
type Company struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Supplier is a payee. Address and bank details are separate documents
// linked by supplier name.
type Supplier struct {
	Name string `json:"name"`
}

// BankAccount covers both company-side and beneficiary-side accounts.
// ClientCode and ProductCode are only populated on company accounts
// enrolled with the bank's bulk-remittance product.
type BankAccount struct {
	Name          string `json:"name"`
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	BranchCode    string `json:"branch_code"`
	ClientCode    string `json:"client_code"`
	ProductCode   string `json:"product_code"`
}

// Address is a supplier address record. The generator resolves exactly one
// "primary" address per supplier: a record flagged primary wins, otherwise
// the first billing-type record.
type Address struct {
	Supplier  string      `json:"supplier"`
	Type      AddressType `json:"type"`
	Line1     string      `json:"line1"`
	Line2     string      `json:"line2"`
	City      string      `json:"city"`
	Pincode   string      `json:"pincode"`
	State     string      `json:"state"`
	Phone     string      `json:"phone"`
	Email     string      `json:"email"`
	IsPrimary bool        `json:"is_primary"`
}
