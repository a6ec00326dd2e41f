package domain

import (
	"errors"
)

var (
	MessageSuccessAddCartItem    = "cart item added successfully"
	MessageSuccessGetCartItems   = "cart items retrieved successfully"
	MessageSuccessRemoveCartItem = "cart item removed successfully"

	MessageFailedAddCartItem    = "failed to add cart item"
	MessageFailedGetCartItems   = "failed to retrieve cart items"
	MessageFailedRemoveCartItem = "failed to remove cart item"

	ErrCartItemNotFound = errors.New("cart item not found")
)

type (
	AddCartItemRequest struct {
		Name        string  `json:"name" validate:"required"`
		ProductType string  `json:"product_type"`
		FridgeID    string  `json:"fridge_id" validate:"required,uuid"`
		Mass        float64 `json:"mass" validate:"required,gt=0"`
	}

	CartItemResponse struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		ProductType string  `json:"product_type"`
		FridgeID    string  `json:"fridge_id"`
		Mass        float64 `json:"mass"`
		UserID      string  `json:"user_id"`
	}
)
