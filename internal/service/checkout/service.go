package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"panelstore/internal/domain"
)

// Service turns a validated checkout form plus the session's cart into a
// persisted order record. Persistence is fire-and-forget: a failed write is
// logged and the hand-off still proceeds, since verification is manual anyway.
type Service struct {
	carts       cartStore
	snapshots   lastSnapshotRepo
	orders      orderRepo
	countryCode string
	logger      *log.Logger
}

type cartStore interface {
	Get(ctx context.Context, sessionID string) []domain.CartLine
	Clear(ctx context.Context, sessionID string)
}

type lastSnapshotRepo interface {
	SaveLast(ctx context.Context, sessionID string, lines []domain.CartLine) error
}

type orderRepo interface {
	Save(ctx context.Context, rec domain.OrderRecord) error
}

func New(carts cartStore, snapshots lastSnapshotRepo, orders orderRepo, countryCode string, logger *log.Logger) *Service {
	return &Service{
		carts:       carts,
		snapshots:   snapshots,
		orders:      orders,
		countryCode: countryCode,
		logger:      logger,
	}
}

// Input is the checkout form. PaymentProof carries the uploaded image as a
// data URL.
type Input struct {
	Name         string `json:"name"`
	WhatsApp     string `json:"whatsapp"`
	Email        string `json:"email"`
	Notes        string `json:"notes"`
	PaymentProof string `json:"-"`
}

// Submit validates the form, snapshots the cart into an immutable order
// record, persists it, records the last-cart snapshot for confirmation
// recovery, and clears the cart. No partial order is created on validation
// failure.
func (s *Service) Submit(ctx context.Context, sessionID string, in Input) (*domain.OrderRecord, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name required")
	}
	if strings.TrimSpace(in.WhatsApp) == "" {
		return nil, errors.New("whatsapp number required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, errors.New("email required")
	}
	if in.PaymentProof == "" {
		return nil, errors.New("payment proof required")
	}

	lines := s.carts.Get(ctx, sessionID)
	items := make([]domain.CartLine, len(lines))
	copy(items, lines)

	rec := &domain.OrderRecord{
		OrderID:      NewOrderID(),
		Name:         strings.TrimSpace(in.Name),
		WhatsApp:     NormalizePhone(in.WhatsApp, s.countryCode),
		Email:        strings.TrimSpace(in.Email),
		Notes:        strings.TrimSpace(in.Notes),
		Items:        items,
		Total:        domain.CartTotal(items),
		Date:         time.Now().UTC(),
		PaymentProof: in.PaymentProof,
	}

	if err := s.orders.Save(ctx, *rec); err != nil {
		s.logger.Printf("save order %s: %v", rec.OrderID, err)
	}
	if err := s.snapshots.SaveLast(ctx, sessionID, items); err != nil {
		s.logger.Printf("save last cart for session %s: %v", sessionID, err)
	}
	s.carts.Clear(ctx, sessionID)

	return rec, nil
}

// NewOrderID builds an identifier of the form ORDER-<millis>-<random>.
// Uniqueness is probabilistic; the primary key on the order table surfaces
// the rare collision as an insert error.
func NewOrderID() string {
	return fmt.Sprintf("ORDER-%d-%d", time.Now().UnixMilli(), rand.Intn(10000))
}

// NormalizePhone strips everything but digits and forces the configured
// country code: a leading 0 is replaced by it, and any number not already
// starting with it gets it prepended. The rule follows the Indonesian
// local-number convention and is lossy for foreign numbers.
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return ""
	}
	if strings.HasPrefix(cleaned, "0") {
		return countryCode + cleaned[1:]
	}
	if !strings.HasPrefix(cleaned, countryCode) {
		return countryCode + cleaned
	}
	return cleaned
}
