package cart

import (
	"context"
	"errors"
	"log"

	"panelstore/internal/domain"
)

// Service owns the per-session cart. Every mutation persists the full
// snapshot; every read loads it fresh. The operations are total: a storage
// read failure degrades to an empty cart and a failed write is logged and
// skipped, so callers never see an error.
type Service struct {
	repo   snapshotRepo
	logger *log.Logger
}

type snapshotRepo interface {
	Load(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []domain.CartLine) error
}

func New(repo snapshotRepo, logger *log.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get returns the current cart lines for the session.
func (s *Service) Get(ctx context.Context, sessionID string) []domain.CartLine {
	return s.load(ctx, sessionID)
}

// AddOffering appends a new line with quantity 1, or increments the quantity
// of the existing line for the same offering id.
func (s *Service) AddOffering(ctx context.Context, sessionID string, offering domain.Offering) []domain.CartLine {
	lines := addLine(s.load(ctx, sessionID), offering)
	s.persist(ctx, sessionID, lines)
	return lines
}

// ChangeQuantity adjusts a line's quantity by delta. Unknown ids are a no-op,
// and a delta that would take the quantity to zero or below is refused rather
// than removing the line.
func (s *Service) ChangeQuantity(ctx context.Context, sessionID string, offeringID, delta int) []domain.CartLine {
	lines := changeQuantity(s.load(ctx, sessionID), offeringID, delta)
	s.persist(ctx, sessionID, lines)
	return lines
}

// RemoveOffering deletes the line for the offering id if present.
func (s *Service) RemoveOffering(ctx context.Context, sessionID string, offeringID int) []domain.CartLine {
	lines := removeLine(s.load(ctx, sessionID), offeringID)
	s.persist(ctx, sessionID, lines)
	return lines
}

// Clear empties the cart and persists the empty snapshot.
func (s *Service) Clear(ctx context.Context, sessionID string) {
	s.persist(ctx, sessionID, []domain.CartLine{})
}

// Total sums price times quantity over the session's cart.
func (s *Service) Total(ctx context.Context, sessionID string) int64 {
	return domain.CartTotal(s.load(ctx, sessionID))
}

func (s *Service) load(ctx context.Context, sessionID string) []domain.CartLine {
	lines, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("load cart for session %s: %v", sessionID, err)
		}
		return nil
	}
	return lines
}

func (s *Service) persist(ctx context.Context, sessionID string, lines []domain.CartLine) {
	if err := s.repo.Save(ctx, sessionID, lines); err != nil {
		s.logger.Printf("save cart for session %s: %v", sessionID, err)
	}
}

func addLine(lines []domain.CartLine, offering domain.Offering) []domain.CartLine {
	for i := range lines {
		if lines[i].ID == offering.ID {
			lines[i].Quantity++
			return lines
		}
	}
	return append(lines, domain.CartLine{Offering: offering, Quantity: 1})
}

func changeQuantity(lines []domain.CartLine, offeringID, delta int) []domain.CartLine {
	for i := range lines {
		if lines[i].ID != offeringID {
			continue
		}
		if next := lines[i].Quantity + delta; next > 0 {
			lines[i].Quantity = next
		}
		return lines
	}
	return lines
}

func removeLine(lines []domain.CartLine, offeringID int) []domain.CartLine {
	out := lines[:0]
	for _, l := range lines {
		if l.ID != offeringID {
			out = append(out, l)
		}
	}
	return out
}
