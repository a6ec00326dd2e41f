package entities

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FridgeID         uuid.UUID `json:"fridge_id"`
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	ProductType      string    `json:"product_type"`
	ManufactureDate  time.Time `json:"manufacture_date"`
	ExpiryDate       time.Time `json:"expiry_date"`
	Mass             float64   `json:"mass"`
	Unit             string    `json:"unit"` // "г", "кг", "мл", "л"
	NutritionalValue string    `json:"nutritional_value"`

	Fridge *Fridge `gorm:"foreignKey:FridgeID;constraint:OnDelete:CASCADE"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}
