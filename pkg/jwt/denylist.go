package jwt

import (
	"Foodgram-Backend/internal/utils"
	"Foodgram-Backend/internal/utils/logger"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const revokedKeyPrefix = "foodgram:revoked:"

type (
	TokenDenylist interface {
		Revoke(ctx context.Context, jti string, ttl time.Duration) error
		IsRevoked(ctx context.Context, jti string) (bool, error)
	}

	redisDenylist struct {
		client *redis.Client
	}

	noopDenylist struct{}
)

// NewTokenDenylist connects to REDIS_ADDR. Without it logout is accepted
// but tokens stay valid until they expire.
func NewTokenDenylist() TokenDenylist {
	addr := utils.GetConfig("REDIS_ADDR")
	if addr == "" {
		logger.Warn("REDIS_ADDR is not set, token revocation is disabled")
		return NewNoopDenylist()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.GetConfig("REDIS_PASSWORD"),
	})
	logger.Info("token denylist backed by redis", zap.String("addr", addr))
	return NewRedisDenylist(client)
}

func NewRedisDenylist(client *redis.Client) TokenDenylist {
	return &redisDenylist{client: client}
}

func (d *redisDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, revokedKeyPrefix+jti, 1, ttl).Err()
}

func (d *redisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := d.client.Get(ctx, revokedKeyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (noopDenylist) Revoke(context.Context, string, time.Duration) error { return nil }

func (noopDenylist) IsRevoked(context.Context, string) (bool, error) { return false, nil }

func NewNoopDenylist() TokenDenylist {
	return noopDenylist{}
}
