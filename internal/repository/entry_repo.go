package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wakala/remittance/internal/domain"
)

// EntryRepo stores payment entries and their advice rows.
type EntryRepo struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

func (r *EntryRepo) Create(ctx context.Context, entry domain.PaymentEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO payment_entries (name, mode_of_payment, party, bank_account, posting_date)
		VALUES (?,?,?,?,?)`,
		entry.ID, entry.ModeOfPayment, entry.Party, entry.BankAccount,
		entry.PostingDate.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert payment entry: %w", err)
	}

	for i, adv := range entry.Advices {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO advice_payments
			(payment_entry, position, total_amount, outstanding_amount, reference_name, due_date)
			VALUES (?,?,?,?,?,?)`,
			entry.ID, i, adv.TotalAmount, adv.OutstandingAmount, adv.ReferenceName,
			formatNullableTime(adv.DueDate),
		)
		if err != nil {
			return fmt.Errorf("insert advice %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByID loads one payment entry with its advice rows in input order.
func (r *EntryRepo) GetByID(ctx context.Context, id string) (domain.PaymentEntry, error) {
	var entry domain.PaymentEntry
	var postingDate string

	err := r.db.QueryRowContext(ctx,
		"SELECT name, mode_of_payment, party, bank_account, posting_date FROM payment_entries WHERE name = ?",
		id,
	).Scan(&entry.ID, &entry.ModeOfPayment, &entry.Party, &entry.BankAccount, &postingDate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PaymentEntry{}, fmt.Errorf("payment entry %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.PaymentEntry{}, fmt.Errorf("query payment entry: %w", err)
	}
	entry.PostingDate, _ = time.Parse(time.RFC3339, postingDate)

	rows, err := r.db.QueryContext(ctx,
		`SELECT total_amount, outstanding_amount, reference_name, due_date
		FROM advice_payments
		WHERE payment_entry = ?
		ORDER BY position`,
		id,
	)
	if err != nil {
		return domain.PaymentEntry{}, fmt.Errorf("query advices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var adv domain.AdvicePayment
		var dueDate sql.NullString
		if err := rows.Scan(&adv.TotalAmount, &adv.OutstandingAmount, &adv.ReferenceName, &dueDate); err != nil {
			return domain.PaymentEntry{}, fmt.Errorf("scan advice: %w", err)
		}
		if dueDate.Valid && dueDate.String != "" {
			adv.DueDate, _ = time.Parse(time.RFC3339, dueDate.String)
		}
		entry.Advices = append(entry.Advices, adv)
	}
	return entry, rows.Err()
}

func formatNullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}
