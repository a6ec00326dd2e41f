package fridge

import (
	"context"
	"errors"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FridgeService interface {
		CreateFridge(ctx context.Context, req domain.CreateFridgeRequest) (domain.FridgeResponse, error)
		GetFridges(ctx context.Context, userID string) ([]domain.FridgeResponse, error)
		DeleteFridge(ctx context.Context, fridgeID string, userID string) error
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
	}
)

func NewFridgeService(fridgeRepository FridgeRepository) FridgeService {
	return &fridgeService{fridgeRepository: fridgeRepository}
}

func (s *fridgeService) CreateFridge(ctx context.Context, req domain.CreateFridgeRequest) (domain.FridgeResponse, error) {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.FridgeResponse{}, domain.ErrParseUUID
	}

	fridge := &entities.Fridge{
		ID:     uuid.New(),
		UserID: userUUID,
		Title:  req.Title,
	}
	if err := s.fridgeRepository.CreateFridge(ctx, fridge); err != nil {
		// Uniqueness is enforced by the storage constraint. Under
		// concurrent duplicate titles exactly one insert wins.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.FridgeResponse{}, domain.ErrFridgeTitleTaken
		}
		return domain.FridgeResponse{}, err
	}

	return domain.FridgeResponse{
		ID:     fridge.ID.String(),
		Title:  fridge.Title,
		UserID: fridge.UserID.String(),
	}, nil
}

func (s *fridgeService) GetFridges(ctx context.Context, userID string) ([]domain.FridgeResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	fridges, err := s.fridgeRepository.GetFridgesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.FridgeResponse, 0, len(fridges))
	for _, f := range fridges {
		res = append(res, domain.FridgeResponse{
			ID:     f.ID.String(),
			Title:  f.Title,
			UserID: f.UserID.String(),
		})
	}
	return res, nil
}

func (s *fridgeService) DeleteFridge(ctx context.Context, fridgeID string, userID string) error {
	if _, err := uuid.Parse(fridgeID); err != nil {
		return domain.ErrParseUUID
	}
	if _, err := uuid.Parse(userID); err != nil {
		return domain.ErrParseUUID
	}

	rows, err := s.fridgeRepository.DeleteFridge(ctx, fridgeID, userID)
	if err != nil {
		return err
	}
	// A fridge owned by someone else is reported exactly like a missing one.
	if rows == 0 {
		return domain.ErrFridgeNotFound
	}
	return nil
}
