package recipe

import (
	"strings"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/rating"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

const (
	MaxTitleLen   = 150
	MaxTypeLen    = 100
	MaxCuisineLen = 100
)

// Listing is a recipe joined with its chef name and rating aggregate.
type Listing struct {
	Recipe        models.Recipe
	ChefName      string
	AverageRating float64
	RatingCount   int64
}

// Filter narrows a recipe listing. Zero values mean "no constraint".
type Filter struct {
	ChefID  uint
	Type    string
	Cuisine string
	Query   string
}

func (f Filter) Normalized() Filter {
	return Filter{
		ChefID:  f.ChefID,
		Type:    strings.ToLower(strings.TrimSpace(f.Type)),
		Cuisine: strings.ToLower(strings.TrimSpace(f.Cuisine)),
		Query:   strings.ToLower(strings.TrimSpace(f.Query)),
	}
}

// Matches applies the normalized filter to a recipe in memory.
func (f Filter) Matches(r *models.Recipe) bool {
	if f.ChefID != 0 && r.ChefID != f.ChefID {
		return false
	}
	if f.Type != "" && strings.ToLower(deref(r.Type)) != f.Type {
		return false
	}
	if f.Cuisine != "" && strings.ToLower(deref(r.Cuisine)) != f.Cuisine {
		return false
	}
	if f.Query != "" {
		haystack := strings.ToLower(r.Title + "\n" + r.Description + "\n" + deref(r.Ingredients))
		if !strings.Contains(haystack, f.Query) {
			return false
		}
	}
	return true
}

// CanManage reports whether the actor may update or delete the recipe:
// the owning chef or any admin.
func CanManage(actor user.Actor, r *models.Recipe) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleChef:
		return r.ChefID == actor.UserID
	default:
		return false
	}
}

// Stats aggregates a chef's recipes for the dashboard.
type Stats struct {
	OverallAverageRating float64
	TotalRecipeViews     int
	TotalRecipes         int
}

// ComputeStats averages the per-recipe averages of rated recipes only.
func ComputeStats(listings []Listing) Stats {
	var (
		stats    Stats
		averages []float64
	)
	for _, l := range listings {
		stats.TotalRecipes++
		stats.TotalRecipeViews += l.Recipe.ViewCount
		if l.RatingCount > 0 {
			averages = append(averages, l.AverageRating)
		}
	}
	if len(averages) > 0 {
		sum := 0.0
		for _, a := range averages {
			sum += a
		}
		stats.OverallAverageRating = sum / float64(len(averages))
	}
	return stats
}

// ListingFrom builds a listing from a recipe and its raw rating values.
func ListingFrom(r models.Recipe, chefName string, values []int) Listing {
	s := rating.Summarize(values)
	return Listing{
		Recipe:        r,
		ChefName:      chefName,
		AverageRating: s.Average,
		RatingCount:   s.Count,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
