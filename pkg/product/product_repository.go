package product

import (
	"context"
	"errors"
	"time"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/entities"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		CreateProductInFridge(ctx context.Context, product *entities.Product) error
		GetProductsByFridge(ctx context.Context, fridgeID string) ([]*entities.Product, error)
		GetExpiringByUser(ctx context.Context, userID string, before time.Time) ([]*entities.Product, error)
		DeleteProduct(ctx context.Context, id string) (int64, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// CreateProductInFridge verifies the parent fridge inside the same
// transaction as the insert. The fridge lookup filters by owner, so a
// fridge belonging to another user fails like a missing one.
func (r *productRepository) CreateProductInFridge(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var fridge entities.Fridge
		if err := tx.
			Where("id = ? AND user_id = ?", product.FridgeID, product.UserID).
			First(&fridge).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrFridgeNotFound
			}
			return err
		}
		return tx.Create(product).Error
	})
}

func (r *productRepository) GetProductsByFridge(ctx context.Context, fridgeID string) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ?", fridgeID).
		Order("expiry_date asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetExpiringByUser(ctx context.Context, userID string, before time.Time) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date <= ?", userID, before).
		Order("expiry_date asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Product{})
	return res.RowsAffected, res.Error
}
