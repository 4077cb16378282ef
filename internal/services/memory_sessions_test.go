package services

import (
	"errors"
	"time"

	"pizzeria/internal/models"
)

// memorySessions is an in-memory SessionStore standing in for redis.
type memorySessions struct {
	users map[string]models.User
	carts map[string]models.Cart
}

func newMemorySessions() *memorySessions {
	return &memorySessions{
		users: make(map[string]models.User),
		carts: make(map[string]models.Cart),
	}
}

func (m *memorySessions) CreateSession(token string, user models.User, _ time.Duration) error {
	m.users[token] = user
	return nil
}

func (m *memorySessions) GetSession(token string) (models.User, error) {
	user, ok := m.users[token]
	if !ok {
		return models.User{}, errors.New("session not found")
	}
	return user, nil
}

func (m *memorySessions) DeleteSession(token string) error {
	delete(m.users, token)
	return nil
}

func (m *memorySessions) SaveCart(token string, cart models.Cart, _ time.Duration) error {
	m.carts[token] = cart
	return nil
}

func (m *memorySessions) LoadCart(token string) (models.Cart, error) {
	return m.carts[token], nil
}

func (m *memorySessions) ClearCart(token string) error {
	delete(m.carts, token)
	return nil
}
