// Command generate rebuilds testdata/fixture.json: a small deterministic
// document set with one company, three suppliers and two payment orders.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wakala/remittance/internal/domain"
	"github.com/wakala/remittance/internal/seed"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func main() {
	const companyAccount = "Acme Industries - HDFC"

	ds := seed.Dataset{
		Companies: []domain.Company{
			{Name: "Acme Industries", Email: "finance@acme.example"},
		},
		Suppliers: []domain.Supplier{
			{Name: "Sharma Traders"},
			{Name: "Mehta Metals"},
			{Name: "Coastal Chemicals"},
		},
		BankAccounts: []domain.BankAccount{
			{
				Name: companyAccount, Bank: "HDFC Bank",
				AccountNumber: "50100212345678", BranchCode: "HDFC0001234",
				ClientCode: "CL001", ProductCode: "PROD1",
			},
			{
				Name: "Sharma Traders - SBI", Bank: "State Bank of India",
				AccountNumber: "30123456789", BranchCode: "SBIN0005943",
			},
			{
				Name: "Mehta Metals - ICICI", Bank: "ICICI Bank",
				AccountNumber: "000405001234", BranchCode: "ICIC0000044",
			},
			{
				Name: "Coastal Chemicals - BOB", Bank: "Bank of Baroda",
				AccountNumber: "29040100012345", BranchCode: "BARB0COCHEM",
			},
		},
		Addresses: []domain.Address{
			{
				Supplier: "Sharma Traders", Type: domain.AddressBilling,
				Line1: "14, Karol Bagh Market", Line2: "Block B",
				City: "New Delhi", Pincode: "110005", State: "Delhi",
				Phone: "9876501234", Email: "accounts@sharmatraders.example",
				IsPrimary: true,
			},
			{
				Supplier: "Mehta Metals", Type: domain.AddressBilling,
				Line1: "Plot 7, MIDC Industrial Area", Line2: "Taloja Phase 2",
				City: "Navi Mumbai", Pincode: "410208", State: "Maharashtra",
				Phone: "9820011223", Email: "billing@mehtametals.example",
			},
			{
				Supplier: "Coastal Chemicals", Type: domain.AddressShipping,
				Line1: "Warehouse 3, Port Road",
				City: "Visakhapatnam", Pincode: "530035", State: "Andhra Pradesh",
				Phone:     "9940055667",
				IsPrimary: true,
			},
		},
		PaymentEntries: []domain.PaymentEntry{
			{
				ID: "PE-000101", ModeOfPayment: "NEFT", Party: "Sharma Traders",
				BankAccount: companyAccount, PostingDate: day(2024, time.March, 5),
				Advices: []domain.AdvicePayment{
					{TotalAmount: 125000, OutstandingAmount: 0, ReferenceName: "PINV-2024-0041", DueDate: day(2024, time.March, 20)},
					{TotalAmount: 48000.50, OutstandingAmount: 8000.50, ReferenceName: "PINV-2024-0057", DueDate: day(2024, time.April, 1)},
				},
			},
			{
				ID: "PE-000102", ModeOfPayment: "RTGS", Party: "Mehta Metals",
				BankAccount: companyAccount, PostingDate: day(2024, time.March, 6),
				Advices: []domain.AdvicePayment{
					{TotalAmount: 310500.75, OutstandingAmount: 0, ReferenceName: "PINV-2024-0062", DueDate: day(2024, time.March, 15)},
				},
			},
			{
				ID: "PE-000103", ModeOfPayment: "NEFT", Party: "Coastal Chemicals",
				BankAccount: companyAccount, PostingDate: day(2024, time.March, 6),
				Advices: []domain.AdvicePayment{
					{TotalAmount: 75250, OutstandingAmount: 25250, ReferenceName: "PINV-2024-0063", DueDate: day(2024, time.March, 28)},
				},
			},
		},
		PaymentOrders: []domain.PaymentOrder{
			{
				ID: "PMO-00001", Company: "Acme Industries",
				CompanyBankAccount: companyAccount, PostingDate: day(2024, time.March, 7),
				References: []domain.PaymentReference{
					{PaymentEntry: "PE-000101", Supplier: "Sharma Traders", BankAccount: "Sharma Traders - SBI", Amount: 164500},
					{PaymentEntry: "PE-000102", Supplier: "Mehta Metals", BankAccount: "Mehta Metals - ICICI", Amount: 310500.75},
				},
			},
			{
				ID: "PMO-00002", Company: "Acme Industries",
				CompanyBankAccount: companyAccount, PostingDate: day(2024, time.March, 8),
				References: []domain.PaymentReference{
					{PaymentEntry: "PE-000103", Supplier: "Coastal Chemicals", BankAccount: "Coastal Chemicals - BOB", Amount: 50000},
				},
			},
		},
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		os.Exit(1)
	}

	out := filepath.Join("testdata", "fixture.json")
	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes)\n", out, len(data)+1)
}
