package entities

import (
	"github.com/google/uuid"
)

type ShoppingCart struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	FridgeID    uuid.UUID `json:"fridge_id"`
	Name        string    `json:"name"`
	ProductType string    `json:"product_type"`
	Mass        float64   `json:"mass"`

	Fridge *Fridge `gorm:"foreignKey:FridgeID;constraint:OnDelete:CASCADE"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}
