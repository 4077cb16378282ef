package store

import (
	"testing"

	"pizzeria/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewsAddAssignsDenseIDs(t *testing.T) {
	reviews := NewReviews([]models.Review{{ID: 1, UserName: "Maria", Rating: 5, Comment: "great"}}, nil)

	added := reviews.Add(models.Review{UserName: "Carlos", Rating: 4, Comment: "good"})
	assert.Equal(t, uint(2), added.ID)
	assert.Len(t, reviews.All(), 2)
}

func TestReviewsLike(t *testing.T) {
	reviews := NewReviews([]models.Review{{ID: 1, UserName: "Maria", Rating: 5, Comment: "great", Likes: 3}}, nil)

	liked, ok := reviews.Like(1)
	require.True(t, ok)
	assert.Equal(t, 4, liked.Likes)

	_, ok = reviews.Like(99)
	assert.False(t, ok)
}
