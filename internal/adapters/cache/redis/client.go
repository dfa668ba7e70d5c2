package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
