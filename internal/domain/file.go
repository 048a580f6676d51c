package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned by store lookups for unknown documents.
var ErrNotFound = errors.New("document not found")

// GeneratedFile is the immutable output of one generation run. The
// generator fills Name and Content; the attachment store assigns ID and
// CreatedAt when the file is persisted.
type GeneratedFile struct {
	ID        string    `json:"id,omitempty"`
	OrderID   string    `json:"order_id,omitempty"`
	Name      string    `json:"name"`
	Content   string    `json:"-"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
