package services

import (
	"errors"
	"time"

	"pizzeria/internal/models"
	"pizzeria/internal/store"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type CartService interface {
	Get(token string) (models.Cart, models.CartTotals, error)
	AddItem(token string, itemID uint, quantity int) (models.Cart, error)
	SetQuantity(token string, itemID uint, quantity int) (models.Cart, error)
	RemoveItem(token string, itemID uint) (models.Cart, error)
	Clear(token string) error
}

type cartService struct {
	sessions SessionStore
	catalog  *store.Catalog
	cartTTL  time.Duration
}

func NewCartService(sessions SessionStore, catalog *store.Catalog, cartTTL time.Duration) CartService {
	return &cartService{sessions: sessions, catalog: catalog, cartTTL: cartTTL}
}

func (s *cartService) Get(token string) (models.Cart, models.CartTotals, error) {
	cart, err := s.sessions.LoadCart(token)
	if err != nil {
		return models.Cart{}, models.CartTotals{}, err
	}
	return cart, cart.Totals(), nil
}

// AddItem snapshots the item's current name and price into the cart line.
// Later catalog edits do not touch lines already in a cart.
func (s *cartService) AddItem(token string, itemID uint, quantity int) (models.Cart, error) {
	item, ok := s.catalog.MenuItem(itemID)
	if !ok {
		return models.Cart{}, ErrMenuItemNotFound
	}

	cart, err := s.sessions.LoadCart(token)
	if err != nil {
		return models.Cart{}, err
	}
	cart.Add(item, quantity)

	if err := s.sessions.SaveCart(token, cart, s.cartTTL); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *cartService) SetQuantity(token string, itemID uint, quantity int) (models.Cart, error) {
	cart, err := s.sessions.LoadCart(token)
	if err != nil {
		return models.Cart{}, err
	}
	cart.SetQuantity(itemID, quantity)

	if err := s.sessions.SaveCart(token, cart, s.cartTTL); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *cartService) RemoveItem(token string, itemID uint) (models.Cart, error) {
	cart, err := s.sessions.LoadCart(token)
	if err != nil {
		return models.Cart{}, err
	}
	cart.Remove(itemID)

	if err := s.sessions.SaveCart(token, cart, s.cartTTL); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *cartService) Clear(token string) error {
	return s.sessions.ClearCart(token)
}
