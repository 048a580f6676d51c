// Package seed loads a fixture dataset into an empty document store so the
// service starts with working data, mirroring how the upstream ERP would be
// populated.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/wakala/remittance/internal/domain"
	"github.com/wakala/remittance/internal/repository"
)

// Dataset is the on-disk fixture shape.
type Dataset struct {
	Companies      []domain.Company      `json:"companies"`
	Suppliers      []domain.Supplier     `json:"suppliers"`
	BankAccounts   []domain.BankAccount  `json:"bank_accounts"`
	Addresses      []domain.Address      `json:"addresses"`
	PaymentEntries []domain.PaymentEntry `json:"payment_entries"`
	PaymentOrders  []domain.PaymentOrder `json:"payment_orders"`
}

// Repositories groups the write-side repos Apply inserts through.
type Repositories struct {
	Orders  *repository.OrderRepo
	Entries *repository.EntryRepo
	Parties *repository.PartyRepo
}

// Load reads a fixture dataset from disk.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("unmarshal fixture: %w", err)
	}
	return &ds, nil
}

// Apply inserts the dataset through the repositories. Documents are
// inserted leaf-first so foreign keys resolve.
func Apply(ctx context.Context, repos Repositories, ds *Dataset, logger zerolog.Logger) error {
	for _, c := range ds.Companies {
		if err := repos.Parties.CreateCompany(ctx, c); err != nil {
			return err
		}
	}
	for _, s := range ds.Suppliers {
		if err := repos.Parties.CreateSupplier(ctx, s); err != nil {
			return err
		}
	}
	for _, a := range ds.BankAccounts {
		if err := repos.Parties.CreateBankAccount(ctx, a); err != nil {
			return err
		}
	}
	for _, a := range ds.Addresses {
		if err := repos.Parties.CreateAddress(ctx, a); err != nil {
			return err
		}
	}
	for _, e := range ds.PaymentEntries {
		if err := repos.Entries.Create(ctx, e); err != nil {
			return err
		}
	}
	for _, o := range ds.PaymentOrders {
		if err := repos.Orders.Create(ctx, o); err != nil {
			return err
		}
	}

	logger.Info().
		Int("companies", len(ds.Companies)).
		Int("suppliers", len(ds.Suppliers)).
		Int("bank_accounts", len(ds.BankAccounts)).
		Int("addresses", len(ds.Addresses)).
		Int("payment_entries", len(ds.PaymentEntries)).
		Int("payment_orders", len(ds.PaymentOrders)).
		Msg("seeded document store")
	return nil
}
