package models

import "time"

type Recipe struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title        string  `gorm:"size:150;not null" json:"title"`
	Type         *string `gorm:"size:100;index" json:"type"`
	Cuisine      *string `gorm:"size:100;index" json:"cuisine"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	Ingredients  *string `gorm:"type:text" json:"ingredients"`
	Instructions *string `gorm:"type:text" json:"instructions"`
	ImagePath    *string `gorm:"size:255" json:"imagePath"`

	ChefID uint `gorm:"not null;index" json:"chefId"`
	Chef   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ViewCount int `gorm:"not null;default:0" json:"viewCount"`

	Ratings []Rating `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
