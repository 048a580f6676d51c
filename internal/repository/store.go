package repository

import (
	"context"
	"database/sql"

	"github.com/wakala/remittance/internal/domain"
)

// DocumentStore aggregates the read-side of the repositories behind the
// narrow fetch interface the generator consumes (remit.Store).
type DocumentStore struct {
	orders  *OrderRepo
	entries *EntryRepo
	parties *PartyRepo
}

func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{
		orders:  NewOrderRepo(db),
		entries: NewEntryRepo(db),
		parties: NewPartyRepo(db),
	}
}

func (s *DocumentStore) PaymentOrder(ctx context.Context, id string) (domain.PaymentOrder, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *DocumentStore) PaymentEntry(ctx context.Context, id string) (domain.PaymentEntry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *DocumentStore) BankAccount(ctx context.Context, name string) (domain.BankAccount, error) {
	return s.parties.BankAccount(ctx, name)
}

func (s *DocumentStore) CompanyEmail(ctx context.Context, company string) (string, error) {
	return s.parties.CompanyEmail(ctx, company)
}

func (s *DocumentStore) PrimaryAddress(ctx context.Context, supplier string) (domain.Address, error) {
	return s.parties.PrimaryAddress(ctx, supplier)
}
