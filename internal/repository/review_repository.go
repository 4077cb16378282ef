package repository

import (
	"pizzeria/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	LoadReviews() ([]models.Review, error)
	SaveReview(review models.Review) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) LoadReviews() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Order("id").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) SaveReview(review models.Review) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&review).Error
}
