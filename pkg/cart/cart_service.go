package cart

import (
	"context"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/entities"

	"github.com/google/uuid"
)

type (
	CartService interface {
		AddCartItem(ctx context.Context, req domain.AddCartItemRequest, userID string) (domain.CartItemResponse, error)
		GetCartItems(ctx context.Context, userID string) ([]domain.CartItemResponse, error)
		RemoveCartItem(ctx context.Context, itemID string, userID string) error
	}

	cartService struct {
		cartRepository CartRepository
	}
)

func NewCartService(cartRepository CartRepository) CartService {
	return &cartService{cartRepository: cartRepository}
}

func (s *cartService) AddCartItem(ctx context.Context, req domain.AddCartItemRequest, userID string) (domain.CartItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CartItemResponse{}, domain.ErrParseUUID
	}
	fridgeUUID, err := uuid.Parse(req.FridgeID)
	if err != nil {
		return domain.CartItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.ShoppingCart{
		ID:          uuid.New(),
		UserID:      userUUID,
		FridgeID:    fridgeUUID,
		Name:        req.Name,
		ProductType: req.ProductType,
		Mass:        req.Mass,
	}
	if err := s.cartRepository.AddCartItem(ctx, item); err != nil {
		return domain.CartItemResponse{}, err
	}

	return toCartItemResponse(item), nil
}

func (s *cartService) GetCartItems(ctx context.Context, userID string) ([]domain.CartItemResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	items, err := s.cartRepository.GetCartItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.CartItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toCartItemResponse(item))
	}
	return res, nil
}

func (s *cartService) RemoveCartItem(ctx context.Context, itemID string, userID string) error {
	if _, err := uuid.Parse(itemID); err != nil {
		return domain.ErrParseUUID
	}
	if _, err := uuid.Parse(userID); err != nil {
		return domain.ErrParseUUID
	}

	rows, err := s.cartRepository.RemoveCartItem(ctx, itemID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func toCartItemResponse(item *entities.ShoppingCart) domain.CartItemResponse {
	return domain.CartItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		ProductType: item.ProductType,
		FridgeID:    item.FridgeID.String(),
		Mass:        item.Mass,
		UserID:      item.UserID.String(),
	}
}
