package entities

import (
	"github.com/google/uuid"
)

type Fridge struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	// Unique across all users, not per user. Kept as observed.
	Title string `gorm:"uniqueIndex" json:"title"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
