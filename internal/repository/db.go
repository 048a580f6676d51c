package repository

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens (or creates) a SQLite database at the given path and ensures
// all required tables exist. Pass ":memory:" for an in-memory database.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			name TEXT PRIMARY KEY,
			email TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS suppliers (
			name TEXT PRIMARY KEY
		)`,

		`CREATE TABLE IF NOT EXISTS bank_accounts (
			name TEXT PRIMARY KEY,
			bank TEXT NOT NULL,
			account_number TEXT NOT NULL,
			branch_code TEXT NOT NULL DEFAULT '',
			client_code TEXT NOT NULL DEFAULT '',
			product_code TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS addresses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			supplier TEXT NOT NULL,
			address_type TEXT NOT NULL,
			line1 TEXT NOT NULL DEFAULT '',
			line2 TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			pincode TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			is_primary INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (supplier) REFERENCES suppliers(name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_addresses_supplier ON addresses(supplier)`,

		`CREATE TABLE IF NOT EXISTS payment_entries (
			name TEXT PRIMARY KEY,
			mode_of_payment TEXT NOT NULL DEFAULT '',
			party TEXT NOT NULL DEFAULT '',
			bank_account TEXT NOT NULL,
			posting_date DATETIME NOT NULL,
			FOREIGN KEY (bank_account) REFERENCES bank_accounts(name)
		)`,

		`CREATE TABLE IF NOT EXISTS advice_payments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			payment_entry TEXT NOT NULL,
			position INTEGER NOT NULL,
			total_amount REAL NOT NULL,
			outstanding_amount REAL NOT NULL,
			reference_name TEXT NOT NULL,
			due_date DATETIME,
			FOREIGN KEY (payment_entry) REFERENCES payment_entries(name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_advice_payments_entry ON advice_payments(payment_entry)`,

		`CREATE TABLE IF NOT EXISTS payment_orders (
			name TEXT PRIMARY KEY,
			company TEXT NOT NULL,
			company_bank_account TEXT NOT NULL,
			posting_date DATETIME NOT NULL,
			FOREIGN KEY (company) REFERENCES companies(name),
			FOREIGN KEY (company_bank_account) REFERENCES bank_accounts(name)
		)`,

		`CREATE TABLE IF NOT EXISTS payment_order_references (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			payment_order TEXT NOT NULL,
			position INTEGER NOT NULL,
			payment_entry TEXT NOT NULL,
			supplier TEXT NOT NULL,
			bank_account TEXT NOT NULL,
			amount REAL NOT NULL,
			FOREIGN KEY (payment_order) REFERENCES payment_orders(name),
			FOREIGN KEY (payment_entry) REFERENCES payment_entries(name),
			FOREIGN KEY (supplier) REFERENCES suppliers(name),
			FOREIGN KEY (bank_account) REFERENCES bank_accounts(name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_order_references_order ON payment_order_references(payment_order)`,

		`CREATE TABLE IF NOT EXISTS generated_files (
			id TEXT PRIMARY KEY,
			payment_order TEXT NOT NULL,
			file_name TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (payment_order) REFERENCES payment_orders(name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_generated_files_order ON generated_files(payment_order)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}

	return nil
}
