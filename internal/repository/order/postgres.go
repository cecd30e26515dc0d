package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"panelstore/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Save(ctx context.Context, rec domain.OrderRecord) error {
	items, err := json.Marshal(rec.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	const q = `
INSERT INTO orders (order_id, name, whatsapp, email, notes, items, total, order_date, payment_proof)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err = r.pool.Exec(ctx, q,
		rec.OrderID,
		rec.Name,
		rec.WhatsApp,
		rec.Email,
		rec.Notes,
		items,
		rec.Total,
		rec.Date,
		rec.PaymentProof,
	)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, orderID string) (*domain.OrderRecord, error) {
	const q = `
SELECT order_id, name, whatsapp, email, notes, items, total, order_date, payment_proof
FROM orders
WHERE order_id = $1
`
	var rec domain.OrderRecord
	var items []byte
	err := r.pool.QueryRow(ctx, q, orderID).Scan(
		&rec.OrderID,
		&rec.Name,
		&rec.WhatsApp,
		&rec.Email,
		&rec.Notes,
		&items,
		&rec.Total,
		&rec.Date,
		&rec.PaymentProof,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &rec.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items for %s: %w", orderID, err)
		}
	}
	return &rec, nil
}

func (r *postgresRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `
DELETE FROM orders
WHERE order_date < $1
`
	cmd, err := r.pool.Exec(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
