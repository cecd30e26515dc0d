package cart

import (
	"context"

	"panelstore/internal/domain"
)

// Repository persists per-session cart snapshots. A session maps to one
// browser profile; each mutation overwrites the whole snapshot.
//
// Load and LoadLast return domain.ErrNotFound when no snapshot exists.
type Repository interface {
	Load(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []domain.CartLine) error
	// SaveLast records the cart as it stood at checkout, kept separately so the
	// confirmation view can recover items after the live cart is cleared.
	SaveLast(ctx context.Context, sessionID string, lines []domain.CartLine) error
	LoadLast(ctx context.Context, sessionID string) ([]domain.CartLine, error)
}
