package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateProduct = "product added successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"

	MessageFailedCreateProduct = "failed to add product"
	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedDeleteProduct = "failed to delete product"

	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductDate = errors.New("invalid product date")
)

type (
	CreateProductRequest struct {
		Name             string  `json:"name" validate:"required"`
		ProductType      string  `json:"product_type" validate:"required"`
		ManufactureDate  string  `json:"manufacture_date" validate:"required"`
		ExpiryDate       string  `json:"expiry_date" validate:"required"`
		Mass             float64 `json:"mass" validate:"required,gt=0"`
		Unit             string  `json:"unit" validate:"required,oneof=г кг мл л"`
		NutritionalValue string  `json:"nutritional_value"`
		FridgeID         string  `json:"fridge_id" validate:"required,uuid"`
		UserID           string  `json:"user_id" validate:"required,uuid"`
	}

	ProductResponse struct {
		ID               string    `json:"id"`
		Name             string    `json:"name"`
		ProductType      string    `json:"product_type"`
		ManufactureDate  time.Time `json:"manufacture_date"`
		ExpiryDate       time.Time `json:"expiry_date"`
		Mass             float64   `json:"mass"`
		Unit             string    `json:"unit"`
		NutritionalValue string    `json:"nutritional_value"`
		FridgeID         string    `json:"fridge_id"`
		UserID           string    `json:"user_id"`
	}
)
