package handlers

import (
	"errors"
	"net/http"

	"pizzeria/internal/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reviews": h.reviewService.Reviews()})
}

func (h *ReviewHandler) Add(c *gin.Context) {
	var req struct {
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
		MenuItem string `json:"menu_item"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	review, err := h.reviewService.Add(currentUser(c).Name, req.Rating, req.Comment, req.MenuItem)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) Like(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	review, err := h.reviewService.Like(id)
	if err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like review"})
		return
	}
	c.JSON(http.StatusOK, review)
}
