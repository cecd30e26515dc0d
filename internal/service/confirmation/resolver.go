package confirmation

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"panelstore/internal/domain"
)

// handoffTTL bounds how long an in-process hand-off is kept for the
// confirmation view before only persisted recovery remains.
const handoffTTL = time.Hour

// Resolver locates the order behind a confirmation view. Sources are tried
// in a fixed precedence order: the in-process hand-off from the submitting
// request first, then the persisted record by order id, then the last-cart
// snapshot when the record lacks items. Exhausting all three is the flow's
// single terminal failure state and surfaces as domain.ErrNotFound.
type Resolver struct {
	orders    orderGetter
	snapshots lastCartLoader
	logger    *log.Logger

	mu       sync.Mutex
	handoffs map[string]handoff
}

type handoff struct {
	rec   *domain.OrderRecord
	added time.Time
}

type orderGetter interface {
	GetByID(ctx context.Context, orderID string) (*domain.OrderRecord, error)
}

type lastCartLoader interface {
	LoadLast(ctx context.Context, sessionID string) ([]domain.CartLine, error)
}

func NewResolver(orders orderGetter, snapshots lastCartLoader, logger *log.Logger) *Resolver {
	return &Resolver{
		orders:    orders,
		snapshots: snapshots,
		logger:    logger,
		handoffs:  make(map[string]handoff),
	}
}

// Remember keeps a just-submitted order available in memory so the
// confirmation view does not depend on the persisted write having succeeded.
func (r *Resolver) Remember(rec *domain.OrderRecord) {
	if rec == nil || rec.OrderID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, h := range r.handoffs {
		if time.Since(h.added) > handoffTTL {
			delete(r.handoffs, id)
		}
	}
	r.handoffs[rec.OrderID] = handoff{rec: rec, added: time.Now()}
}

// Resolve returns the order record and its items for the confirmation view,
// or domain.ErrNotFound when nothing can be recovered.
func (r *Resolver) Resolve(ctx context.Context, sessionID, orderID string) (*domain.OrderRecord, []domain.CartLine, error) {
	if orderID == "" {
		return nil, nil, domain.ErrNotFound
	}

	if rec := r.remembered(orderID); rec != nil && len(rec.Items) > 0 {
		return rec, rec.Items, nil
	}

	rec, err := r.orders.GetByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			r.logger.Printf("load order %s: %v", orderID, err)
		}
		return nil, nil, domain.ErrNotFound
	}

	items := rec.Items
	if len(items) == 0 {
		items, err = r.snapshots.LoadLast(ctx, sessionID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				r.logger.Printf("load last cart for session %s: %v", sessionID, err)
			}
			items = nil
		}
	}
	if len(items) == 0 {
		return nil, nil, domain.ErrNotFound
	}
	return rec, items, nil
}

func (r *Resolver) remembered(orderID string) *domain.OrderRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handoffs[orderID]
	if !ok || time.Since(h.added) > handoffTTL {
		return nil
	}
	return h.rec
}
