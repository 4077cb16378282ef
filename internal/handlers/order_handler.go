package handlers

import (
	"errors"
	"net/http"

	"pizzeria/internal/models"
	"pizzeria/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req services.CheckoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.Checkout(sessionToken(c), currentUser(c), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrMissingDelivery),
			errors.Is(err, services.ErrInvalidPayment),
			errors.Is(err, services.ErrMissingTransferProof):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit order"})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	orders := h.orderService.OrdersForCustomer(currentUser(c).Email)
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetMine returns one of the customer's own orders and marks its thread read,
// since fetching the detail is how a customer opens the chat view.
func (h *OrderHandler) GetMine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	email := currentUser(c).Email
	if _, err := h.orderService.OrderForCustomer(email, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	h.orderService.MarkThreadRead(id)
	order, err := h.orderService.OrderForCustomer(email, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) PostCustomerMessage(c *gin.Context) {
	h.postMessage(c, models.AuthorCustomer, true)
}

func (h *OrderHandler) PostAdminMessage(c *gin.Context) {
	h.postMessage(c, models.AuthorAdmin, false)
}

// postMessage is deliberately permissive: unknown orders and blank content
// are accepted and ignored rather than rejected.
func (h *OrderHandler) postMessage(c *gin.Context, author models.MessageAuthor, ownOnly bool) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if ownOnly {
		if _, err := h.orderService.OrderForCustomer(currentUser(c).Email, id); err != nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
	}

	h.orderService.PostMessage(id, author, req.Content)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	summaries, withUnread := h.orderService.OrderSummaries()
	c.JSON(http.StatusOK, gin.H{"orders": summaries, "orders_with_unread": withUnread})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.orderService.Order(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	h.orderService.MarkThreadRead(id)
	order, err := h.orderService.Order(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}
