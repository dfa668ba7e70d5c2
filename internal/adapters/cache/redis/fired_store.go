package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"medisafe-companion/internal/domain/scheduler"
)

const (
	DefaultKeyPrefix = "medisafe:dose:"
	DefaultTTL       = 48 * time.Hour
)

// FiredStore guarda las marcas de cada instancia en un hash
// "{prefix}{día}:{medicación}" con un campo por slot (HSETNX).
type FiredStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewFiredStore(client *redis.Client, prefix string, ttl time.Duration) *FiredStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &FiredStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *FiredStore) key(k scheduler.InstanceKey) string {
	return s.prefix + k.String()
}

func (s *FiredStore) SetOnce(ctx context.Context, k scheduler.InstanceKey, slot scheduler.Slot, value string) (bool, error) {
	key := s.key(k)

	ok, err := s.client.HSetNX(ctx, key, string(slot), value).Result()
	if err != nil {
		return false, fmt.Errorf("hsetnx %s: %w", key, err)
	}
	if ok {
		if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
			return true, fmt.Errorf("expire %s: %w", key, err)
		}
	}
	return ok, nil
}

func (s *FiredStore) Load(ctx context.Context, k scheduler.InstanceKey) (map[scheduler.Slot]string, error) {
	key := s.key(k)

	raw, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", key, err)
	}
	out := make(map[scheduler.Slot]string, len(raw))
	for f, v := range raw {
		out[scheduler.Slot(f)] = v
	}
	return out, nil
}
