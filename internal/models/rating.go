package models

import "time"

// Rating is one rating event. Repeated submissions by the same user are
// stored as separate rows.
type Rating struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RatingValue int       `gorm:"not null;check:rating_value BETWEEN 1 AND 5" json:"ratingValue"`
	RatedAt     time.Time `gorm:"not null" json:"ratedAt"`

	RecipeID uint `gorm:"not null;index" json:"recipeId"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
