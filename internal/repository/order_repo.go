package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wakala/remittance/internal/domain"
)

// OrderRepo stores payment orders and their ordered reference lists.
type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Create(ctx context.Context, order domain.PaymentOrder) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO payment_orders (name, company, company_bank_account, posting_date)
		VALUES (?,?,?,?)`,
		order.ID, order.Company, order.CompanyBankAccount,
		order.PostingDate.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert payment order: %w", err)
	}

	for i, ref := range order.References {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO payment_order_references
			(payment_order, position, payment_entry, supplier, bank_account, amount)
			VALUES (?,?,?,?,?,?)`,
			order.ID, i, ref.PaymentEntry, ref.Supplier, ref.BankAccount, ref.Amount,
		)
		if err != nil {
			return fmt.Errorf("insert reference %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByID loads one payment order with its references in input order.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (domain.PaymentOrder, error) {
	var order domain.PaymentOrder
	var postingDate string

	err := r.db.QueryRowContext(ctx,
		"SELECT name, company, company_bank_account, posting_date FROM payment_orders WHERE name = ?",
		id,
	).Scan(&order.ID, &order.Company, &order.CompanyBankAccount, &postingDate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PaymentOrder{}, fmt.Errorf("payment order %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.PaymentOrder{}, fmt.Errorf("query payment order: %w", err)
	}
	order.PostingDate, _ = time.Parse(time.RFC3339, postingDate)

	rows, err := r.db.QueryContext(ctx,
		`SELECT payment_entry, supplier, bank_account, amount
		FROM payment_order_references
		WHERE payment_order = ?
		ORDER BY position`,
		id,
	)
	if err != nil {
		return domain.PaymentOrder{}, fmt.Errorf("query references: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ref domain.PaymentReference
		if err := rows.Scan(&ref.PaymentEntry, &ref.Supplier, &ref.BankAccount, &ref.Amount); err != nil {
			return domain.PaymentOrder{}, fmt.Errorf("scan reference: %w", err)
		}
		order.References = append(order.References, ref)
	}
	return order, rows.Err()
}

// List returns order headers (no reference lists) newest first.
func (r *OrderRepo) List(ctx context.Context, page, limit int) ([]domain.PaymentOrder, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM payment_orders").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	rows, err := r.db.QueryContext(ctx,
		`SELECT name, company, company_bank_account, posting_date
		FROM payment_orders ORDER BY posting_date DESC, name LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var orders []domain.PaymentOrder
	for rows.Next() {
		var order domain.PaymentOrder
		var postingDate string
		if err := rows.Scan(&order.ID, &order.Company, &order.CompanyBankAccount, &postingDate); err != nil {
			return nil, 0, fmt.Errorf("scan: %w", err)
		}
		order.PostingDate, _ = time.Parse(time.RFC3339, postingDate)
		orders = append(orders, order)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM payment_orders").Scan(&count)
	return count, err
}
