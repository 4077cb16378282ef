package store

import (
	"log"
	"sync"

	"pizzeria/internal/models"
)

type ReviewPersister interface {
	SaveReview(models.Review) error
}

// Reviews holds customer reviews. Ids follow the same count+1 rule as the
// order ledger; reviews are never deleted.
type Reviews struct {
	mu        sync.RWMutex
	reviews   []models.Review
	persister ReviewPersister
}

func NewReviews(reviews []models.Review, persister ReviewPersister) *Reviews {
	return &Reviews{
		reviews:   append([]models.Review(nil), reviews...),
		persister: persister,
	}
}

func (r *Reviews) All() []models.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Review(nil), r.reviews...)
}

func (r *Reviews) Add(review models.Review) models.Review {
	r.mu.Lock()
	review.ID = uint(len(r.reviews)) + 1
	r.reviews = append(r.reviews, review)
	r.mu.Unlock()
	r.persist(review)
	return review
}

// Like increments the review's like counter. Unknown ids are a no-op.
func (r *Reviews) Like(id uint) (models.Review, bool) {
	r.mu.Lock()
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews[i].Likes++
			updated := r.reviews[i]
			r.mu.Unlock()
			r.persist(updated)
			return updated, true
		}
	}
	r.mu.Unlock()
	return models.Review{}, false
}

func (r *Reviews) persist(review models.Review) {
	if r.persister == nil {
		return
	}
	if err := r.persister.SaveReview(review); err != nil {
		log.Printf("Failed to persist review %d: %v", review.ID, err)
	}
}
