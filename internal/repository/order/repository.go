package order

import (
	"context"
	"time"

	"panelstore/internal/domain"
)

// Repository persists order records. Records are write-once: nothing updates
// a row after Save, and only the retention job deletes them.
type Repository interface {
	Save(ctx context.Context, rec domain.OrderRecord) error
	GetByID(ctx context.Context, orderID string) (*domain.OrderRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
