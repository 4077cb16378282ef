package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pizzeria/internal/models"
	"pizzeria/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.catalogService.MenuItems()})
}

func (h *CatalogHandler) GetMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.catalogService.MenuItem(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"promotions": h.catalogService.Promotions()})
}

func (h *CatalogHandler) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// Creation never reuses a client-supplied id.
	item.ID = 0
	h.upsertMenuItem(c, item, http.StatusCreated)
}

func (h *CatalogHandler) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item.ID = id
	h.upsertMenuItem(c, item, http.StatusOK)
}

func (h *CatalogHandler) upsertMenuItem(c *gin.Context, item models.MenuItem, status int) {
	saved, err := h.catalogService.UpsertMenuItem(item)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(status, saved)
}

func (h *CatalogHandler) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteMenuItem(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *CatalogHandler) CreatePromotion(c *gin.Context) {
	var promo models.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	promo.ID = 0
	h.upsertPromotion(c, promo, http.StatusCreated)
}

func (h *CatalogHandler) UpdatePromotion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var promo models.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	promo.ID = id
	h.upsertPromotion(c, promo, http.StatusOK)
}

func (h *CatalogHandler) upsertPromotion(c *gin.Context, promo models.Promotion, status int) {
	saved, err := h.catalogService.UpsertPromotion(promo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(status, saved)
}

func (h *CatalogHandler) DeletePromotion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeletePromotion(id); err != nil {
		if errors.Is(err, services.ErrPromotionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promotion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
