package retention

import (
	"context"
	"log"
	"time"
)

// Pruner deletes order records older than the configured retention. A zero
// retention means keep forever and turns Run into a no-op.
type Pruner struct {
	orders    orderDeleter
	retention time.Duration
	tick      time.Duration
	logger    *log.Logger
}

type orderDeleter interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

func NewPruner(orders orderDeleter, retention time.Duration, logger *log.Logger) *Pruner {
	return &Pruner{
		orders:    orders,
		retention: retention,
		tick:      time.Hour,
		logger:    logger,
	}
}

// Run prunes once immediately and then on every tick until the context is
// cancelled.
func (p *Pruner) Run(ctx context.Context) {
	if p.retention <= 0 {
		return
	}

	p.prune(ctx)

	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.prune(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *Pruner) prune(ctx context.Context) {
	cutoff := time.Now().Add(-p.retention)
	deleted, err := p.orders.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		p.logger.Printf("prune orders: %v", err)
		return
	}
	if deleted > 0 {
		p.logger.Printf("pruned %d order(s) older than %s", deleted, cutoff.Format(time.RFC3339))
	}
}
