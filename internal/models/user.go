package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null;index" json:"role"`

	// Chef-only profile fields.
	RoleTitle *string `gorm:"size:100" json:"roleTitle"`
	Specialty *string `gorm:"size:100" json:"specialty"`

	ProfilePicturePath *string `gorm:"size:255" json:"profilePicturePath"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
