package product

import (
	"context"
	"time"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/entities"

	"github.com/google/uuid"
)

type (
	ProductService interface {
		CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error)
		GetProductsByFridge(ctx context.Context, fridgeID string) ([]domain.ProductResponse, error)
		DeleteProduct(ctx context.Context, productID string) error
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{productRepository: productRepository}
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error) {
	manufactureDate, err := time.Parse("2006-01-02", req.ManufactureDate)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrInvalidProductDate
	}
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrInvalidProductDate
	}

	fridgeUUID, err := uuid.Parse(req.FridgeID)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}

	product := &entities.Product{
		ID:               uuid.New(),
		FridgeID:         fridgeUUID,
		UserID:           userUUID,
		Name:             req.Name,
		ProductType:      req.ProductType,
		ManufactureDate:  manufactureDate,
		ExpiryDate:       expiryDate,
		Mass:             req.Mass,
		Unit:             req.Unit,
		NutritionalValue: req.NutritionalValue,
	}
	if err := s.productRepository.CreateProductInFridge(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func (s *productService) GetProductsByFridge(ctx context.Context, fridgeID string) ([]domain.ProductResponse, error) {
	if _, err := uuid.Parse(fridgeID); err != nil {
		return nil, domain.ErrParseUUID
	}

	products, err := s.productRepository.GetProductsByFridge(ctx, fridgeID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, toProductResponse(p))
	}
	return res, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if _, err := uuid.Parse(productID); err != nil {
		return domain.ErrParseUUID
	}

	rows, err := s.productRepository.DeleteProduct(ctx, productID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func toProductResponse(p *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:               p.ID.String(),
		Name:             p.Name,
		ProductType:      p.ProductType,
		ManufactureDate:  p.ManufactureDate,
		ExpiryDate:       p.ExpiryDate,
		Mass:             p.Mass,
		Unit:             p.Unit,
		NutritionalValue: p.NutritionalValue,
		FridgeID:         p.FridgeID.String(),
		UserID:           p.UserID.String(),
	}
}
