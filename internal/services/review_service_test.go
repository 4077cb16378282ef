package services

import (
	"testing"
	"time"

	"pizzeria/internal/models"
	"pizzeria/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewFixture() ReviewService {
	return NewReviewService(store.NewReviews([]models.Review{
		{ID: 1, UserName: "Maria", Rating: 5, Comment: "great", Likes: 3},
	}, nil))
}

func TestAddReview(t *testing.T) {
	svc := reviewFixture()

	review, err := svc.Add("Carlos", 4, "very good", "Pizza Veracruzana")
	require.NoError(t, err)

	assert.Equal(t, uint(2), review.ID)
	assert.Equal(t, "Carlos", review.UserName)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Pizza Veracruzana", review.MenuItemName)
	assert.Equal(t, time.Now().Format("2006-01-02"), review.Date)
	assert.Zero(t, review.Likes)
}

func TestAddReviewRejectsBlankComment(t *testing.T) {
	svc := reviewFixture()

	_, err := svc.Add("Carlos", 4, "   ", "")
	assert.ErrorIs(t, err, ErrEmptyComment)
	assert.Len(t, svc.Reviews(), 1)
}

func TestAddReviewClampsRating(t *testing.T) {
	svc := reviewFixture()

	review, err := svc.Add("Carlos", 9, "amazing", "")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	review, err = svc.Add("Carlos", -2, "bad", "")
	require.NoError(t, err)
	assert.Equal(t, 1, review.Rating)
}

func TestLikeReview(t *testing.T) {
	svc := reviewFixture()

	review, err := svc.Like(1)
	require.NoError(t, err)
	assert.Equal(t, 4, review.Likes)

	_, err = svc.Like(99)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
