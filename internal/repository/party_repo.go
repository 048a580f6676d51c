package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wakala/remittance/internal/domain"
)

// PartyRepo stores the master-data documents the generator reads:
// companies, suppliers, bank accounts and supplier addresses.
type PartyRepo struct {
	db *sql.DB
}

func NewPartyRepo(db *sql.DB) *PartyRepo {
	return &PartyRepo{db: db}
}

func (r *PartyRepo) CreateCompany(ctx context.Context, c domain.Company) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO companies (name, email) VALUES (?,?)", c.Name, c.Email)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

func (r *PartyRepo) CreateSupplier(ctx context.Context, s domain.Supplier) error {
	_, err := r.db.ExecContext(ctx, "INSERT INTO suppliers (name) VALUES (?)", s.Name)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *PartyRepo) CreateBankAccount(ctx context.Context, a domain.BankAccount) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bank_accounts (name, bank, account_number, branch_code, client_code, product_code)
		VALUES (?,?,?,?,?,?)`,
		a.Name, a.Bank, a.AccountNumber, a.BranchCode, a.ClientCode, a.ProductCode)
	if err != nil {
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

func (r *PartyRepo) CreateAddress(ctx context.Context, a domain.Address) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO addresses
		(supplier, address_type, line1, line2, city, pincode, state, phone, email, is_primary)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		a.Supplier, string(a.Type), a.Line1, a.Line2, a.City, a.Pincode,
		a.State, a.Phone, a.Email, boolToInt(a.IsPrimary))
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

func (r *PartyRepo) CompanyEmail(ctx context.Context, company string) (string, error) {
	var email string
	err := r.db.QueryRowContext(ctx,
		"SELECT email FROM companies WHERE name = ?", company).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("company %s: %w", company, domain.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("query company: %w", err)
	}
	return email, nil
}

func (r *PartyRepo) BankAccount(ctx context.Context, name string) (domain.BankAccount, error) {
	var a domain.BankAccount
	err := r.db.QueryRowContext(ctx,
		`SELECT name, bank, account_number, branch_code, client_code, product_code
		FROM bank_accounts WHERE name = ?`, name,
	).Scan(&a.Name, &a.Bank, &a.AccountNumber, &a.BranchCode, &a.ClientCode, &a.ProductCode)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BankAccount{}, fmt.Errorf("bank account %s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return domain.BankAccount{}, fmt.Errorf("query bank account: %w", err)
	}
	return a, nil
}

// PrimaryAddress resolves the single address used for remittance rows:
// billing-type or flagged-primary records qualify, a primary flag wins over
// plain billing, first insertion wins among equals.
func (r *PartyRepo) PrimaryAddress(ctx context.Context, supplier string) (domain.Address, error) {
	var a domain.Address
	var addrType string
	var isPrimary int
	err := r.db.QueryRowContext(ctx,
		`SELECT supplier, address_type, line1, line2, city, pincode, state, phone, email, is_primary
		FROM addresses
		WHERE supplier = ? AND (address_type = ? OR is_primary = 1)
		ORDER BY is_primary DESC, id
		LIMIT 1`,
		supplier, string(domain.AddressBilling),
	).Scan(&a.Supplier, &addrType, &a.Line1, &a.Line2, &a.City, &a.Pincode,
		&a.State, &a.Phone, &a.Email, &isPrimary)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Address{}, fmt.Errorf("primary address for supplier %s: %w", supplier, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Address{}, fmt.Errorf("query address: %w", err)
	}
	a.Type = domain.AddressType(addrType)
	a.IsPrimary = isPrimary == 1
	return a, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
