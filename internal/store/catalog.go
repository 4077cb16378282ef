package store

import (
	"log"
	"sync"

	"pizzeria/internal/models"
)

// CatalogPersister mirrors catalog mutations to durable storage. It is
// invoked after a mutation has been applied in memory, never before; a
// persister failure is logged and does not roll the mutation back.
type CatalogPersister interface {
	SaveMenuItems([]models.MenuItem) error
	SavePromotions([]models.Promotion) error
}

// Catalog is the process-wide collection of menu items and promotions. It is
// owned by the application root and mutated only through admin actions.
type Catalog struct {
	mu         sync.RWMutex
	items      []models.MenuItem
	promotions []models.Promotion
	persister  CatalogPersister
}

// NewCatalog seeds the catalog from previously loaded state. persister may be
// nil, in which case mutations live only in memory.
func NewCatalog(items []models.MenuItem, promotions []models.Promotion, persister CatalogPersister) *Catalog {
	return &Catalog{
		items:      append([]models.MenuItem(nil), items...),
		promotions: append([]models.Promotion(nil), promotions...),
		persister:  persister,
	}
}

func (c *Catalog) MenuItems() []models.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.MenuItem(nil), c.items...)
}

func (c *Catalog) MenuItem(id uint) (models.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func (c *Catalog) Promotions() []models.Promotion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Promotion(nil), c.promotions...)
}

// UpsertMenuItem replaces the item with the same id in place, or appends a
// new item under id max(existing)+1 when the id is unknown. Any id supplied
// on a new item is ignored.
func (c *Catalog) UpsertMenuItem(item models.MenuItem) models.MenuItem {
	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i] = item
			c.mu.Unlock()
			c.persistMenuItems()
			return item
		}
	}
	item.ID = c.nextMenuItemID()
	c.items = append(c.items, item)
	c.mu.Unlock()
	c.persistMenuItems()
	return item
}

// DeleteMenuItem removes the item by id. Removing an unknown id is a no-op.
func (c *Catalog) DeleteMenuItem(id uint) bool {
	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.mu.Unlock()
			c.persistMenuItems()
			return true
		}
	}
	c.mu.Unlock()
	return false
}

func (c *Catalog) UpsertPromotion(promo models.Promotion) models.Promotion {
	c.mu.Lock()
	for i := range c.promotions {
		if c.promotions[i].ID == promo.ID {
			c.promotions[i] = promo
			c.mu.Unlock()
			c.persistPromotions()
			return promo
		}
	}
	promo.ID = c.nextPromotionID()
	c.promotions = append(c.promotions, promo)
	c.mu.Unlock()
	c.persistPromotions()
	return promo
}

func (c *Catalog) DeletePromotion(id uint) bool {
	c.mu.Lock()
	for i := range c.promotions {
		if c.promotions[i].ID == id {
			c.promotions = append(c.promotions[:i], c.promotions[i+1:]...)
			c.mu.Unlock()
			c.persistPromotions()
			return true
		}
	}
	c.mu.Unlock()
	return false
}

// nextMenuItemID is max(existing ids)+1. Callers must hold c.mu.
func (c *Catalog) nextMenuItemID() uint {
	var max uint
	for _, item := range c.items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

func (c *Catalog) nextPromotionID() uint {
	var max uint
	for _, promo := range c.promotions {
		if promo.ID > max {
			max = promo.ID
		}
	}
	return max + 1
}

func (c *Catalog) persistMenuItems() {
	if c.persister == nil {
		return
	}
	if err := c.persister.SaveMenuItems(c.MenuItems()); err != nil {
		log.Printf("Failed to persist menu items: %v", err)
	}
}

func (c *Catalog) persistPromotions() {
	if c.persister == nil {
		return
	}
	if err := c.persister.SavePromotions(c.Promotions()); err != nil {
		log.Printf("Failed to persist promotions: %v", err)
	}
}
