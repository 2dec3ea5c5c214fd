package dto

import (
	"testing"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

func TestFirstName(t *testing.T) {
	cases := map[string]string{
		"Ana Maria Souza": "Ana",
		"  Gordon  ":      "Gordon",
		"":                "",
	}
	for in, want := range cases {
		if got := FirstName(in); got != want {
			t.Errorf("FirstName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewRecipeRoundsAverage(t *testing.T) {
	l := recipe.Listing{
		Recipe:        models.Recipe{ID: 1, Title: "Soup"},
		ChefName:      "Ana",
		AverageRating: 11.0 / 3.0,
		RatingCount:   3,
	}
	got := NewRecipe(&l)
	if got.AverageRating != 3.67 || got.ChefName != "Ana" {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestListsAreNeverNil(t *testing.T) {
	if NewRecipes(nil) == nil || NewPublicReviews(nil) == nil || NewChefSummaries(nil) == nil {
		t.Fatal("empty lists must serialize as []")
	}
}
