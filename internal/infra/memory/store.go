// Package memory implements the repositories in process memory. It backs
// STORE_DRIVER=memory and the use case and handler tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

// Store holds every table behind one lock so cross-table operations such
// as cascading deletes stay consistent.
type Store struct {
	mu sync.RWMutex

	users   map[uint]models.User
	recipes map[uint]models.Recipe
	ratings map[uint]models.Rating
	reviews map[uint]models.PublicReview
	audit   []models.AuditLog

	seq map[string]uint
	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:   make(map[uint]models.User),
		recipes: make(map[uint]models.Recipe),
		ratings: make(map[uint]models.Rating),
		reviews: make(map[uint]models.PublicReview),
		seq:     make(map[string]uint),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the timestamp source. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

func (s *Store) Recipes() *RecipeRepository {
	return &RecipeRepository{s: s}
}

func (s *Store) Ratings() *RatingRepository {
	return &RatingRepository{s: s}
}

func (s *Store) Reviews() *ReviewRepository {
	return &ReviewRepository{s: s}
}

func (s *Store) AuditLogs() *AuditRepository {
	return &AuditRepository{s: s}
}

// nextID must be called with the write lock held.
func (s *Store) nextID(table string) uint {
	s.seq[table]++
	return s.seq[table]
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
