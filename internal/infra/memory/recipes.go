package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type RecipeRepository struct {
	s *Store
}

var _ recipe.Repository = (*RecipeRepository)(nil)

func (r *RecipeRepository) Create(_ context.Context, rec *models.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[rec.ChefID]; !ok {
		return domain.ErrNotFound
	}
	now := r.s.now()
	rec.ID = r.s.nextID("recipes")
	rec.CreatedAt, rec.UpdatedAt = now, now
	rec.Chef, rec.Ratings = models.User{}, nil
	r.s.recipes[rec.ID] = *rec
	return nil
}

func (r *RecipeRepository) Get(_ context.Context, id uint) (*models.Recipe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.recipes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (r *RecipeRepository) Update(_ context.Context, rec *models.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.recipes[rec.ID]; !ok {
		return domain.ErrNotFound
	}
	rec.UpdatedAt = r.s.now()
	rec.Chef, rec.Ratings = models.User{}, nil
	r.s.recipes[rec.ID] = *rec
	return nil
}

func (r *RecipeRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.recipes[id]; !ok {
		return domain.ErrNotFound
	}
	for rid, rt := range r.s.ratings {
		if rt.RecipeID == id {
			delete(r.s.ratings, rid)
		}
	}
	delete(r.s.recipes, id)
	return nil
}

func (r *RecipeRepository) IncrementViews(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.recipes[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.ViewCount++
	r.s.recipes[id] = rec
	return nil
}

func (r *RecipeRepository) GetListing(_ context.Context, id uint) (*recipe.Listing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.recipes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	l := r.listingLocked(rec)
	return &l, nil
}

func (r *RecipeRepository) List(_ context.Context, f recipe.Filter) ([]recipe.Listing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f = f.Normalized()
	out := make([]recipe.Listing, 0)
	for _, rec := range r.s.recipes {
		if f.Matches(&rec) {
			out = append(out, r.listingLocked(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Recipe, out[j].Recipe
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return out, nil
}

func (r *RecipeRepository) listingLocked(rec models.Recipe) recipe.Listing {
	var values []int
	for _, rt := range r.s.ratings {
		if rt.RecipeID == rec.ID {
			values = append(values, rt.RatingValue)
		}
	}
	return recipe.ListingFrom(rec, r.s.users[rec.ChefID].Name, values)
}
