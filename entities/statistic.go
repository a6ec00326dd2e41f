package entities

import (
	"github.com/google/uuid"
)

type ProductStatistic struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"uniqueIndex:idx_statistic_name_user" json:"user_id"`
	Name        string    `gorm:"uniqueIndex:idx_statistic_name_user" json:"name"`
	ProductType string    `json:"product_type"`
	Mass        float64   `json:"mass"`

	// Rolling counters. Only grow, no decay is defined.
	QuantityDay   int `json:"quantity_day"`
	QuantityWeek  int `json:"quantity_week"`
	QuantityMonth int `json:"quantity_month"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
