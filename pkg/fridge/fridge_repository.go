package fridge

import (
	"context"

	"Fridgify-Backend/entities"

	"gorm.io/gorm"
)

type (
	FridgeRepository interface {
		CreateFridge(ctx context.Context, fridge *entities.Fridge) error
		GetFridgesByUser(ctx context.Context, userID string) ([]*entities.Fridge, error)
		DeleteFridge(ctx context.Context, id string, userID string) (int64, error)
	}

	fridgeRepository struct {
		db *gorm.DB
	}
)

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db: db}
}

func (r *fridgeRepository) CreateFridge(ctx context.Context, fridge *entities.Fridge) error {
	return r.db.WithContext(ctx).Create(fridge).Error
}

func (r *fridgeRepository) GetFridgesByUser(ctx context.Context, userID string) ([]*entities.Fridge, error) {
	var fridges []*entities.Fridge
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&fridges).Error; err != nil {
		return nil, err
	}
	return fridges, nil
}

// The owner id is part of the delete predicate so a guessed fridge id
// belonging to another user deletes nothing.
func (r *fridgeRepository) DeleteFridge(ctx context.Context, id string, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Fridge{})
	return res.RowsAffected, res.Error
}
