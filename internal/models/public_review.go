package models

import "time"

type PublicReview struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReviewText  string    `gorm:"size:1000;not null" json:"reviewText"`
	RatingValue int       `gorm:"not null;check:rating_value BETWEEN 1 AND 5" json:"ratingValue"`
	SubmittedAt time.Time `gorm:"not null;index" json:"submittedAt"`
	Status      string    `gorm:"size:20;not null;default:'Pending';index" json:"status"`

	// Set when the review was submitted with a valid token; never exposed.
	UserID *uint `gorm:"index" json:"-"`
}
