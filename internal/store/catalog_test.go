package store

import (
	"testing"

	"pizzeria/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCatalogPersister struct {
	menuSaves  [][]models.MenuItem
	promoSaves [][]models.Promotion
}

func (p *recordingCatalogPersister) SaveMenuItems(items []models.MenuItem) error {
	p.menuSaves = append(p.menuSaves, items)
	return nil
}

func (p *recordingCatalogPersister) SavePromotions(promotions []models.Promotion) error {
	p.promoSaves = append(p.promoSaves, promotions)
	return nil
}

func seedItems() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Name: "Pizza Jarocha Especial", Price: 189},
		{ID: 2, Name: "Pizza Veracruzana", Price: 249},
		{ID: 6, Name: "Pizza Vegetariana", Price: 149},
	}
}

func TestUpsertMenuItemAssignsMaxPlusOne(t *testing.T) {
	catalog := NewCatalog(seedItems(), nil, nil)

	// a supplied id that does not exist is ignored
	saved := catalog.UpsertMenuItem(models.MenuItem{ID: 99, Name: "Pizza Nueva", Price: 120})
	assert.Equal(t, uint(7), saved.ID)
	require.Len(t, catalog.MenuItems(), 4)

	saved = catalog.UpsertMenuItem(models.MenuItem{Name: "Otra", Price: 99})
	assert.Equal(t, uint(8), saved.ID)
}

func TestUpsertMenuItemReplacesInPlace(t *testing.T) {
	catalog := NewCatalog(seedItems(), nil, nil)

	saved := catalog.UpsertMenuItem(models.MenuItem{ID: 2, Name: "Renamed", Price: 259})
	assert.Equal(t, uint(2), saved.ID)

	items := catalog.MenuItems()
	require.Len(t, items, 3)
	assert.Equal(t, "Renamed", items[1].Name)
	assert.Equal(t, 259.0, items[1].Price)
}

func TestDeleteMenuItem(t *testing.T) {
	catalog := NewCatalog(seedItems(), nil, nil)

	assert.True(t, catalog.DeleteMenuItem(2))
	assert.Len(t, catalog.MenuItems(), 2)

	_, found := catalog.MenuItem(2)
	assert.False(t, found)

	assert.False(t, catalog.DeleteMenuItem(99))
}

func TestUpsertPromotionIDRules(t *testing.T) {
	catalog := NewCatalog(nil, []models.Promotion{{ID: 3, Title: "Happy Hour", Description: "20% off"}}, nil)

	saved := catalog.UpsertPromotion(models.Promotion{Title: "Combo", Description: "2 pizzas"})
	assert.Equal(t, uint(4), saved.ID)

	saved = catalog.UpsertPromotion(models.Promotion{ID: 3, Title: "Happy Hour", Description: "30% off"})
	assert.Equal(t, uint(3), saved.ID)
	require.Len(t, catalog.Promotions(), 2)
	assert.Equal(t, "30% off", catalog.Promotions()[0].Description)
}

func TestCatalogPersistsAfterMutation(t *testing.T) {
	persister := &recordingCatalogPersister{}
	catalog := NewCatalog(seedItems(), nil, persister)

	catalog.UpsertMenuItem(models.MenuItem{Name: "Nueva", Price: 100})
	require.Len(t, persister.menuSaves, 1)
	assert.Len(t, persister.menuSaves[0], 4, "persister must see the post-mutation collection")

	catalog.DeleteMenuItem(1)
	require.Len(t, persister.menuSaves, 2)
	assert.Len(t, persister.menuSaves[1], 3)

	// no-op deletes do not persist
	catalog.DeleteMenuItem(99)
	assert.Len(t, persister.menuSaves, 2)

	catalog.UpsertPromotion(models.Promotion{Title: "Combo", Description: "2 pizzas"})
	assert.Len(t, persister.promoSaves, 1)
}
