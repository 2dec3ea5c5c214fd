package dto

import (
	"math"
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
)

type RecipeDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Type          *string   `json:"type"`
	Cuisine       *string   `json:"cuisine"`
	Description   string    `json:"description"`
	Ingredients   *string   `json:"ingredients"`
	Instructions  *string   `json:"instructions"`
	ImageURL      *string   `json:"imageUrl"`
	ChefID        uint      `json:"chefId"`
	ChefName      string    `json:"chefName"`
	AverageRating float64   `json:"averageRating"`
	RatingCount   int64     `json:"ratingCount"`
	ViewCount     int       `json:"viewCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewRecipe(l *recipe.Listing) RecipeDTO {
	r := l.Recipe
	return RecipeDTO{
		ID:            r.ID,
		Title:         r.Title,
		Type:          r.Type,
		Cuisine:       r.Cuisine,
		Description:   r.Description,
		Ingredients:   r.Ingredients,
		Instructions:  r.Instructions,
		ImageURL:      r.ImagePath,
		ChefID:        r.ChefID,
		ChefName:      l.ChefName,
		AverageRating: Round2(l.AverageRating),
		RatingCount:   l.RatingCount,
		ViewCount:     r.ViewCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func NewRecipes(listings []recipe.Listing) []RecipeDTO {
	out := make([]RecipeDTO, 0, len(listings))
	for i := range listings {
		out = append(out, NewRecipe(&listings[i]))
	}
	return out
}

type ChefStatsDTO struct {
	OverallAverageRating float64 `json:"overallAverageRating"`
	TotalRecipeViews     int     `json:"totalRecipeViews"`
	TotalRecipes         int     `json:"totalRecipes"`
}

func NewChefStats(s recipe.Stats) ChefStatsDTO {
	return ChefStatsDTO{
		OverallAverageRating: Round2(s.OverallAverageRating),
		TotalRecipeViews:     s.TotalRecipeViews,
		TotalRecipes:         s.TotalRecipes,
	}
}

type RatingResultDTO struct {
	ID            uint      `json:"id"`
	RecipeID      uint      `json:"recipeId"`
	Rating        int       `json:"rating"`
	RatedAt       time.Time `json:"ratedAt"`
	AverageRating float64   `json:"averageRating"`
	RatingCount   int64     `json:"ratingCount"`
}

// Round2 rounds to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
