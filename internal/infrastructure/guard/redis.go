package guard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"signalsite/internal/ports/output"
)

var _ output.SubmissionGuard = (*Redis)(nil)

const (
	keyPrefix    = "signalsite:submission:"
	valuePending = "pending"
	valueDone    = "done"
)

// Redis is a SubmissionGuard shared by every server instance using the same
// Redis database.
type Redis struct {
	*redis.Client
	ttl time.Duration
}

// NewRedis creates a Redis guard on an existing client.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{Client: client, ttl: ttl}
}

// DialRedis parses url, connects and pings.
func DialRedis(ctx context.Context, url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return NewRedis(client, ttl), nil
}

func (r *Redis) Acquire(ctx context.Context, token string) (bool, error) {
	ok, err := r.SetNX(ctx, keyPrefix+token, valuePending, r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis: acquire: %w", err)
	}
	return ok, nil
}

func (r *Redis) Complete(ctx context.Context, token string) error {
	if err := r.Set(ctx, keyPrefix+token, valueDone, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis: complete: %w", err)
	}
	return nil
}

func (r *Redis) State(ctx context.Context, token string) (output.SubmissionState, error) {
	v, err := r.Get(ctx, keyPrefix+token).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return output.SubmissionUnknown, nil
	case err != nil:
		return output.SubmissionUnknown, fmt.Errorf("redis: state: %w", err)
	case v == valueDone:
		return output.SubmissionDone, nil
	default:
		return output.SubmissionPending, nil
	}
}

func (r *Redis) Release(ctx context.Context, token string) error {
	if err := r.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("redis: release: %w", err)
	}
	return nil
}
