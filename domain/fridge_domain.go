package domain

import (
	"errors"
)

var (
	MessageSuccessCreateFridge = "fridge created successfully"
	MessageSuccessGetFridges   = "fridges retrieved successfully"
	MessageSuccessDeleteFridge = "fridge deleted successfully"

	MessageFailedCreateFridge = "failed to create fridge"
	MessageFailedGetFridges   = "failed to retrieve fridges"
	MessageFailedDeleteFridge = "failed to delete fridge"

	ErrFridgeTitleTaken = errors.New("fridge title already taken")
	ErrFridgeNotFound   = errors.New("fridge not found")
)

type (
	CreateFridgeRequest struct {
		Title  string `json:"title" validate:"required"`
		UserID string `json:"user_id" validate:"required,uuid"`
	}

	FridgeResponse struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		UserID string `json:"user_id"`
	}
)
