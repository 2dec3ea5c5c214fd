package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/review"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type ReviewRepository struct {
	s *Store
}

var _ review.Repository = (*ReviewRepository)(nil)

func (r *ReviewRepository) Create(_ context.Context, rv *models.PublicReview) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rv.ID = r.s.nextID("public_reviews")
	if rv.SubmittedAt.IsZero() {
		rv.SubmittedAt = r.s.now()
	}
	r.s.reviews[rv.ID] = *rv
	return nil
}

func (r *ReviewRepository) Get(_ context.Context, id uint) (*models.PublicReview, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rv, nil
}

func (r *ReviewRepository) List(_ context.Context, status *review.Status) ([]models.PublicReview, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.PublicReview, 0, len(r.s.reviews))
	for _, rv := range r.s.reviews {
		if status != nil && rv.Status != string(*status) {
			continue
		}
		out = append(out, rv)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.After(out[j].SubmittedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *ReviewRepository) UpdateStatus(_ context.Context, id uint, status review.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rv, ok := r.s.reviews[id]
	if !ok {
		return domain.ErrNotFound
	}
	rv.Status = string(status)
	r.s.reviews[id] = rv
	return nil
}

func (r *ReviewRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reviews[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.reviews, id)
	return nil
}
