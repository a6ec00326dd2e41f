package qr

import (
	"context"
	"encoding/json"
	"fmt"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/internal/utils/storage"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 300

type (
	QRService interface {
		GenerateProductQR(ctx context.Context, req domain.GenerateQRRequest) ([]byte, error)
		UploadProductQR(ctx context.Context, req domain.GenerateQRRequest) (domain.UploadQRResponse, error)
	}

	// Payload encoded into the QR image. Field order and names match
	// what the mobile scanner expects from the desktop generator.
	qrPayload struct {
		Name             string  `json:"name"`
		ProductType      string  `json:"product_type"`
		ManufactureDate  string  `json:"manufacture_date"`
		ExpiryDate       string  `json:"expiry_date"`
		Mass             float64 `json:"mass"`
		Unit             string  `json:"unit"`
		NutritionalValue string  `json:"nutritional_value"`
	}

	qrService struct {
		s3 storage.AwsS3
	}
)

func NewQRService(s3 storage.AwsS3) QRService {
	return &qrService{s3: s3}
}

func (s *qrService) GenerateProductQR(_ context.Context, req domain.GenerateQRRequest) ([]byte, error) {
	payload := qrPayload{
		Name:             req.Name,
		ProductType:      req.ProductType,
		ManufactureDate:  req.ManufactureDate,
		ExpiryDate:       req.ExpiryDate,
		Mass:             req.Mass,
		Unit:             req.Unit,
		NutritionalValue: req.NutritionalValue,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(string(data), qrcode.Low, qrImageSize)
}

func (s *qrService) UploadProductQR(ctx context.Context, req domain.GenerateQRRequest) (domain.UploadQRResponse, error) {
	png, err := s.GenerateProductQR(ctx, req)
	if err != nil {
		return domain.UploadQRResponse{}, err
	}

	key := fmt.Sprintf("qr/%s.png", uuid.New().String())
	url, err := s.s3.UploadFile(ctx, key, png, "image/png")
	if err != nil {
		return domain.UploadQRResponse{}, err
	}

	return domain.UploadQRResponse{ImageURL: url}, nil
}
