package domain

import (
	"errors"
)

var (
	MessageSuccessUpdateStatistic = "product statistic updated"
	MessageSuccessGetTopProducts  = "top products retrieved successfully"

	MessageFailedUpdateStatistic = "failed to update product statistic"
	MessageFailedGetTopProducts  = "failed to retrieve top products"

	ErrStatisticNotFound = errors.New("no statistics found")
)

type (
	UpdateStatisticRequest struct {
		Name        string  `json:"name" validate:"required"`
		ProductType string  `json:"product_type"`
		Mass        float64 `json:"mass"`
		Quantity    int     `json:"quantity" validate:"required,gt=0"`
	}

	StatisticItem struct {
		Name        string  `json:"name"`
		ProductType string  `json:"product_type"`
		Mass        float64 `json:"mass"`
		Quantity    int     `json:"quantity"`
	}

	TopProductsResponse struct {
		Day   []StatisticItem `json:"day"`
		Week  []StatisticItem `json:"week"`
		Month []StatisticItem `json:"month"`
	}
)
