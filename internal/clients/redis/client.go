package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"outreach-server/internal/config"
	"outreach-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

// StateTTL bounds how long an OAuth round trip may take.
const StateTTL = 600 * time.Second

const stateKeyPrefix = "oauth_state:"

var (
	ErrNotInitialized = errors.New("redis client not initialized")
	ErrStateNotFound  = errors.New("oauth state not found or expired")
)

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. It returns nil when Redis is disabled.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return NewWithClient(client, logger), nil
}

// NewWithClient wraps an existing connection.
func NewWithClient(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// SaveOAuthState stores value under the nonce for StateTTL.
func (c *Client) SaveOAuthState(ctx context.Context, nonce, value string) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	return c.client.Set(ctx, stateKeyPrefix+nonce, value, StateTTL).Err()
}

// ConsumeOAuthState returns the value stored for nonce and deletes it, so a state is usable once.
func (c *Client) ConsumeOAuthState(ctx context.Context, nonce string) (string, error) {
	if !c.IsEnabled() {
		return "", ErrNotInitialized
	}
	value, err := c.client.GetDel(ctx, stateKeyPrefix+nonce).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrStateNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read oauth state: %w", err)
	}
	return value, nil
}
