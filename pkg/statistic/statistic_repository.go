package statistic

import (
	"context"
	"errors"

	"Fridgify-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	StatisticRepository interface {
		UpsertStatistic(ctx context.Context, userID uuid.UUID, name, productType string, mass float64, quantity int) error
		CountByUser(ctx context.Context, userID string) (int64, error)
		GetTopByCounter(ctx context.Context, userID string, counter string) ([]*entities.ProductStatistic, error)
	}

	statisticRepository struct {
		db *gorm.DB
	}
)

// Counter columns a top-products query may order by.
const (
	CounterDay   = "quantity_day"
	CounterWeek  = "quantity_week"
	CounterMonth = "quantity_month"
)

func NewStatisticRepository(db *gorm.DB) StatisticRepository {
	return &statisticRepository{db: db}
}

// UpsertStatistic adds the delta to all three rolling counters of the
// (name, user) record, creating it first when absent. Runs in one
// transaction so a failed update never leaves a half-written record.
func (r *statisticRepository) UpsertStatistic(ctx context.Context, userID uuid.UUID, name, productType string, mass float64, quantity int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record entities.ProductStatistic
		err := tx.
			Where("name = ? AND user_id = ?", name, userID).
			First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = entities.ProductStatistic{
				ID:            uuid.New(),
				UserID:        userID,
				Name:          name,
				ProductType:   productType,
				Mass:          mass,
				QuantityDay:   quantity,
				QuantityWeek:  quantity,
				QuantityMonth: quantity,
			}
			return tx.Create(&record).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&entities.ProductStatistic{}).
			Where("id = ?", record.ID).
			Updates(map[string]interface{}{
				"product_type":   productType,
				"mass":           mass,
				"quantity_day":   gorm.Expr("quantity_day + ?", quantity),
				"quantity_week":  gorm.Expr("quantity_week + ?", quantity),
				"quantity_month": gorm.Expr("quantity_month + ?", quantity),
			}).Error
	})
}

func (r *statisticRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.ProductStatistic{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statisticRepository) GetTopByCounter(ctx context.Context, userID string, counter string) ([]*entities.ProductStatistic, error) {
	var records []*entities.ProductStatistic
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(counter + " desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
