package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type UserRepository struct {
	s *Store
}

var _ user.Repository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTakenLocked(u.Email, 0) {
		return domain.ErrDuplicate
	}
	now := r.s.now()
	u.ID = r.s.nextID("users")
	u.CreatedAt, u.UpdatedAt = now, now
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range sortedKeys(r.s.users) {
		if u := r.s.users[id]; strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) EmailTaken(_ context.Context, email string, exceptID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.emailTakenLocked(email, exceptID), nil
}

func (r *UserRepository) emailTakenLocked(email string, exceptID uint) bool {
	for id, u := range r.s.users {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *UserRepository) Update(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.emailTakenLocked(u.Email, u.ID) {
		return domain.ErrDuplicate
	}
	u.UpdatedAt = r.s.now()
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) ListChefs(_ context.Context) ([]user.ChefSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[uint]int64)
	for _, rec := range r.s.recipes {
		counts[rec.ChefID]++
	}

	out := make([]user.ChefSummary, 0)
	for _, u := range r.s.users {
		if u.Role != string(user.RoleChef) {
			continue
		}
		out = append(out, user.ChefSummary{
			ID:                 u.ID,
			Name:               u.Name,
			RoleTitle:          u.RoleTitle,
			Specialty:          u.Specialty,
			ProfilePicturePath: u.ProfilePicturePath,
			RecipeCount:        counts[u.ID],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
