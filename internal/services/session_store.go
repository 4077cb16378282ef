package services

import (
	"time"

	"pizzeria/internal/models"
)

// SessionStore holds session identities and their carts. The redis client
// implements it in production; tests substitute an in-memory fake.
type SessionStore interface {
	CreateSession(token string, user models.User, ttl time.Duration) error
	GetSession(token string) (models.User, error)
	DeleteSession(token string) error
	SaveCart(token string, cart models.Cart, ttl time.Duration) error
	LoadCart(token string) (models.Cart, error)
	ClearCart(token string) error
}
