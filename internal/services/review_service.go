package services

import (
	"errors"
	"strings"
	"time"

	"pizzeria/internal/models"
	"pizzeria/internal/store"
)

var (
	ErrEmptyComment   = errors.New("comment is required")
	ErrReviewNotFound = errors.New("review not found")
)

type ReviewService interface {
	Reviews() []models.Review
	Add(userName string, rating int, comment, menuItemName string) (models.Review, error)
	Like(id uint) (models.Review, error)
}

type reviewService struct {
	reviews *store.Reviews
}

func NewReviewService(reviews *store.Reviews) ReviewService {
	return &reviewService{reviews: reviews}
}

func (s *reviewService) Reviews() []models.Review {
	return s.reviews.All()
}

// Add records a review dated today. Ratings outside 1-5 are clamped.
func (s *reviewService) Add(userName string, rating int, comment, menuItemName string) (models.Review, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return models.Review{}, ErrEmptyComment
	}
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	review := models.Review{
		UserName:     userName,
		Date:         time.Now().Format("2006-01-02"),
		Rating:       rating,
		Comment:      comment,
		MenuItemName: menuItemName,
	}
	return s.reviews.Add(review), nil
}

func (s *reviewService) Like(id uint) (models.Review, error) {
	review, ok := s.reviews.Like(id)
	if !ok {
		return models.Review{}, ErrReviewNotFound
	}
	return review, nil
}
