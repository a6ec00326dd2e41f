package statistic

import (
	"context"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/entities"

	"github.com/google/uuid"
)

type (
	StatisticService interface {
		UpdateStatistic(ctx context.Context, req domain.UpdateStatisticRequest, userID string) error
		GetTopProducts(ctx context.Context, userID string) (domain.TopProductsResponse, error)
	}

	statisticService struct {
		statisticRepository StatisticRepository
	}
)

func NewStatisticService(statisticRepository StatisticRepository) StatisticService {
	return &statisticService{statisticRepository: statisticRepository}
}

func (s *statisticService) UpdateStatistic(ctx context.Context, req domain.UpdateStatisticRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.statisticRepository.UpsertStatistic(ctx, userUUID, req.Name, req.ProductType, req.Mass, req.Quantity)
}

func (s *statisticService) GetTopProducts(ctx context.Context, userID string) (domain.TopProductsResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.TopProductsResponse{}, domain.ErrParseUUID
	}

	count, err := s.statisticRepository.CountByUser(ctx, userID)
	if err != nil {
		return domain.TopProductsResponse{}, err
	}
	if count == 0 {
		return domain.TopProductsResponse{}, domain.ErrStatisticNotFound
	}

	res := domain.TopProductsResponse{}
	windows := []struct {
		counter string
		dest    *[]domain.StatisticItem
	}{
		{CounterDay, &res.Day},
		{CounterWeek, &res.Week},
		{CounterMonth, &res.Month},
	}
	for _, w := range windows {
		records, err := s.statisticRepository.GetTopByCounter(ctx, userID, w.counter)
		if err != nil {
			return domain.TopProductsResponse{}, err
		}
		*w.dest = toStatisticItems(records, w.counter)
	}
	return res, nil
}

func toStatisticItems(records []*entities.ProductStatistic, counter string) []domain.StatisticItem {
	items := make([]domain.StatisticItem, 0, len(records))
	for _, rec := range records {
		quantity := rec.QuantityDay
		switch counter {
		case CounterWeek:
			quantity = rec.QuantityWeek
		case CounterMonth:
			quantity = rec.QuantityMonth
		}
		items = append(items, domain.StatisticItem{
			Name:        rec.Name,
			ProductType: rec.ProductType,
			Mass:        rec.Mass,
			Quantity:    quantity,
		})
	}
	return items
}
