package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"panelstore/internal/domain"
)

type redisRepo struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) Repository {
	return &redisRepo{client: client}
}

func (r *redisRepo) Load(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	return r.load(ctx, cartKey(sessionID))
}

func (r *redisRepo) Save(ctx context.Context, sessionID string, lines []domain.CartLine) error {
	return r.save(ctx, cartKey(sessionID), lines)
}

func (r *redisRepo) SaveLast(ctx context.Context, sessionID string, lines []domain.CartLine) error {
	return r.save(ctx, lastCartKey(sessionID), lines)
}

func (r *redisRepo) LoadLast(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	return r.load(ctx, lastCartKey(sessionID))
}

func (r *redisRepo) load(ctx context.Context, key string) ([]domain.CartLine, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("unmarshal cart %s: %w", key, err)
	}
	return lines, nil
}

func (r *redisRepo) save(ctx context.Context, key string, lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart %s: %w", key, err)
	}
	// Snapshots do not expire; retention is an explicit config concern for
	// orders only.
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func lastCartKey(sessionID string) string {
	return fmt.Sprintf("last_cart:%s", sessionID)
}
