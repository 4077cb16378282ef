package services

import (
	"errors"
	"strings"

	"pizzeria/internal/models"
	"pizzeria/internal/store"
)

var (
	ErrInvalidMenuItem   = errors.New("name, description and a positive price are required")
	ErrInvalidPromotion  = errors.New("title and description are required")
	ErrPromotionNotFound = errors.New("promotion not found")
)

type CatalogService interface {
	MenuItems() []models.MenuItem
	MenuItem(id uint) (models.MenuItem, error)
	Promotions() []models.Promotion
	UpsertMenuItem(item models.MenuItem) (models.MenuItem, error)
	DeleteMenuItem(id uint) error
	UpsertPromotion(promo models.Promotion) (models.Promotion, error)
	DeletePromotion(id uint) error
}

type catalogService struct {
	catalog *store.Catalog
}

func NewCatalogService(catalog *store.Catalog) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) MenuItems() []models.MenuItem {
	return s.catalog.MenuItems()
}

func (s *catalogService) MenuItem(id uint) (models.MenuItem, error) {
	item, ok := s.catalog.MenuItem(id)
	if !ok {
		return models.MenuItem{}, ErrMenuItemNotFound
	}
	return item, nil
}

func (s *catalogService) Promotions() []models.Promotion {
	return s.catalog.Promotions()
}

// UpsertMenuItem validates and stores the item. On update the existing rating
// is preserved and a blank image keeps the previous one; on create a blank
// image falls back to the default and the rating starts at the default value.
func (s *catalogService) UpsertMenuItem(item models.MenuItem) (models.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	if item.Name == "" || item.Description == "" || item.Price <= 0 {
		return models.MenuItem{}, ErrInvalidMenuItem
	}

	if existing, ok := s.catalog.MenuItem(item.ID); ok {
		item.Rating = existing.Rating
		if item.Image == "" {
			item.Image = existing.Image
		}
	} else {
		item.Rating = models.DefaultMenuRating
		if item.Image == "" {
			item.Image = models.DefaultMenuImage
		}
	}

	return s.catalog.UpsertMenuItem(item), nil
}

func (s *catalogService) DeleteMenuItem(id uint) error {
	if !s.catalog.DeleteMenuItem(id) {
		return ErrMenuItemNotFound
	}
	return nil
}

func (s *catalogService) UpsertPromotion(promo models.Promotion) (models.Promotion, error) {
	promo.Title = strings.TrimSpace(promo.Title)
	promo.Description = strings.TrimSpace(promo.Description)
	if promo.Title == "" || promo.Description == "" {
		return models.Promotion{}, ErrInvalidPromotion
	}

	return s.catalog.UpsertPromotion(promo), nil
}

func (s *catalogService) DeletePromotion(id uint) error {
	if !s.catalog.DeletePromotion(id) {
		return ErrPromotionNotFound
	}
	return nil
}
