package cart

import (
	"context"
	"errors"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/entities"

	"gorm.io/gorm"
)

type (
	CartRepository interface {
		AddCartItem(ctx context.Context, item *entities.ShoppingCart) error
		GetCartItemsByUser(ctx context.Context, userID string) ([]*entities.ShoppingCart, error)
		RemoveCartItem(ctx context.Context, id string, userID string) (int64, error)
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// AddCartItem checks that the referenced fridge exists inside the same
// transaction as the insert.
func (r *cartRepository) AddCartItem(ctx context.Context, item *entities.ShoppingCart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var fridge entities.Fridge
		if err := tx.
			Where("id = ?", item.FridgeID).
			First(&fridge).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrFridgeNotFound
			}
			return err
		}
		return tx.Create(item).Error
	})
}

func (r *cartRepository) GetCartItemsByUser(ctx context.Context, userID string) ([]*entities.ShoppingCart, error) {
	var items []*entities.ShoppingCart
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) RemoveCartItem(ctx context.Context, id string, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.ShoppingCart{})
	return res.RowsAffected, res.Error
}
