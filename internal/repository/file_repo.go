package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wakala/remittance/internal/domain"
)

// FileRepo persists generated remittance files as private attachments of
// their payment order.
type FileRepo struct {
	db *sql.DB
}

func NewFileRepo(db *sql.DB) *FileRepo {
	return &FileRepo{db: db}
}

// Insert stores a freshly generated file and assigns its ID and creation
// time.
func (r *FileRepo) Insert(ctx context.Context, file domain.GeneratedFile) (domain.GeneratedFile, error) {
	file.ID = uuid.NewString()
	file.CreatedAt = time.Now().UTC()
	file.Size = len(file.Content)

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO generated_files (id, payment_order, file_name, content, created_at)
		VALUES (?,?,?,?,?)`,
		file.ID, file.OrderID, file.Name, file.Content,
		file.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return domain.GeneratedFile{}, fmt.Errorf("insert generated file: %w", err)
	}
	return file, nil
}

func (r *FileRepo) GetByID(ctx context.Context, id string) (domain.GeneratedFile, error) {
	var f domain.GeneratedFile
	var createdAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, payment_order, file_name, content, created_at
		FROM generated_files WHERE id = ?`, id,
	).Scan(&f.ID, &f.OrderID, &f.Name, &f.Content, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.GeneratedFile{}, fmt.Errorf("generated file %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.GeneratedFile{}, fmt.Errorf("query generated file: %w", err)
	}
	f.Size = len(f.Content)
	f.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return f, nil
}

// ListByOrder returns file metadata (no content) for one payment order,
// newest first.
func (r *FileRepo) ListByOrder(ctx context.Context, orderID string) ([]domain.GeneratedFile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, payment_order, file_name, length(content), created_at
		FROM generated_files WHERE payment_order = ? ORDER BY created_at DESC`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var files []domain.GeneratedFile
	for rows.Next() {
		var f domain.GeneratedFile
		var createdAt string
		if err := rows.Scan(&f.ID, &f.OrderID, &f.Name, &f.Size, &createdAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		f.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		files = append(files, f)
	}
	return files, rows.Err()
}

func (r *FileRepo) CountByOrder(ctx context.Context, orderID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM generated_files WHERE payment_order = ?", orderID).Scan(&count)
	return count, err
}
