package dto

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type UserProfileDTO struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	FirstName         string    `json:"firstName"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	RoleTitle         *string   `json:"roleTitle"`
	Specialty         *string   `json:"specialty"`
	ProfilePictureURL *string   `json:"profilePictureUrl"`
	CreatedAt         time.Time `json:"createdAt"`
}

func NewUserProfile(u *models.User) UserProfileDTO {
	return UserProfileDTO{
		ID:                u.ID,
		Name:              u.Name,
		FirstName:         FirstName(u.Name),
		Email:             u.Email,
		Role:              u.Role,
		RoleTitle:         u.RoleTitle,
		Specialty:         u.Specialty,
		ProfilePictureURL: u.ProfilePicturePath,
		CreatedAt:         u.CreatedAt,
	}
}

// FirstName is the first whitespace-separated word of a full name.
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

type LoginResponseDTO struct {
	Token string         `json:"token"`
	User  UserProfileDTO `json:"user"`
}

type ChefSummaryDTO struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	RoleTitle         *string `json:"roleTitle"`
	Specialty         *string `json:"specialty"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
	RecipeCount       int64   `json:"recipeCount"`
}

func NewChefSummaries(rows []user.ChefSummary) []ChefSummaryDTO {
	out := make([]ChefSummaryDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, ChefSummaryDTO{
			ID:                c.ID,
			Name:              c.Name,
			RoleTitle:         c.RoleTitle,
			Specialty:         c.Specialty,
			ProfilePictureURL: c.ProfilePicturePath,
			RecipeCount:       c.RecipeCount,
		})
	}
	return out
}

type ProfileImageDTO struct {
	Message           string `json:"message"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}
