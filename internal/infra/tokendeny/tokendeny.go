// Package tokendeny is a Redis-backed denylist for revoked JWTs. Logout
// stores the token's jti until the token would have expired anyway; the
// auth middleware rejects any denylisted token.
package tokendeny

import (
	"context"
	"errors"
	"time"

	"coworking-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tokendeny:"

type Denylist interface {
	Deny(ctx context.Context, jti string, ttl time.Duration) error
	IsDenied(ctx context.Context, jti string) (bool, error)
}

type redisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(client *redis.Client) Denylist {
	return &redisDenylist{client: client}
}

func NewClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

func (d *redisDenylist) Deny(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to revoke.
		return nil
	}
	return d.client.Set(ctx, keyPrefix+jti, "1", ttl).Err()
}

func (d *redisDenylist) IsDenied(ctx context.Context, jti string) (bool, error) {
	err := d.client.Get(ctx, keyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
