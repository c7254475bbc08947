package authority

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/sentinel"
)

// DefaultVerifiedKey is the Redis set holding verified authority principals.
const DefaultVerifiedKey = "agrotour:authority:verified"

// RedisOracle reads verification from a Redis set maintained by the
// authority onboarding process.
type RedisOracle struct {
	client *redis.Client
	key    string
}

type RedisOption func(*RedisOracle)

func WithVerifiedKey(key string) RedisOption {
	return func(o *RedisOracle) {
		if key != "" {
			o.key = key
		}
	}
}

func NewRedisOracle(client *redis.Client, opts ...RedisOption) *RedisOracle {
	o := &RedisOracle{client: client, key: DefaultVerifiedKey}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *RedisOracle) IsVerifiedAuthority(ctx context.Context, p domain.Principal) (bool, error) {
	ok, err := o.client.SIsMember(ctx, o.key, p.String()).Result()
	if err != nil {
		return false, fmt.Errorf("check authority %s: %w: %w", p, sentinel.ErrUnavailable, err)
	}
	return ok, nil
}

// Grant adds principals to the verified set.
func (o *RedisOracle) Grant(ctx context.Context, principals ...domain.Principal) error {
	if len(principals) == 0 {
		return nil
	}
	members := make([]any, len(principals))
	for i, p := range principals {
		members[i] = p.String()
	}
	if err := o.client.SAdd(ctx, o.key, members...).Err(); err != nil {
		return fmt.Errorf("grant authority: %w", err)
	}
	return nil
}

func (o *RedisOracle) Revoke(ctx context.Context, p domain.Principal) error {
	if err := o.client.SRem(ctx, o.key, p.String()).Err(); err != nil {
		return fmt.Errorf("revoke authority %s: %w", p, err)
	}
	return nil
}
