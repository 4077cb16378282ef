package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/models"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound is returned when a token maps to no live session.
var ErrSessionNotFound = errors.New("session not found")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Session management. A session is an opaque token mapped to the user record
// for the TTL's duration; nothing outlives it.
func (c *Client) CreateSession(token string, user models.User, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}

	return c.rdb.Set(ctx, "session:"+token, jsonData, ttl).Err()
}

func (c *Client) GetSession(token string) (models.User, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return models.User{}, ErrSessionNotFound
		}
		return models.User{}, fmt.Errorf("failed to get session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return models.User{}, fmt.Errorf("failed to unmarshal session user: %w", err)
	}

	return user, nil
}

func (c *Client) DeleteSession(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+token).Err()
}

// Cart storage. The cart belongs to its session and shares its lifetime; a
// missing key reads back as an empty cart.
func (c *Client) SaveCart(token string, cart models.Cart, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	return c.rdb.Set(ctx, "cart:"+token, jsonData, ttl).Err()
}

func (c *Client) LoadCart(token string) (models.Cart, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "cart:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return models.Cart{}, nil
		}
		return models.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return models.Cart{}, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return cart, nil
}

func (c *Client) ClearCart(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "cart:"+token).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
