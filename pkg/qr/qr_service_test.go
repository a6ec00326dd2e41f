package qr

import (
	"bytes"
	"context"
	"testing"

	"Fridgify-Backend/domain"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateProductQR(t *testing.T) {
	svc := NewQRService(nil)

	png, err := svc.GenerateProductQR(context.Background(), domain.GenerateQRRequest{
		Name:             "Молоко",
		ProductType:      "Молочные продукты",
		ManufactureDate:  "01-01-2025",
		ExpiryDate:       "10-01-2025",
		Mass:             1.0,
		Unit:             "л",
		NutritionalValue: "50 ккал/100 мл",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(png) == 0 || !bytes.HasPrefix(png, pngHeader) {
		t.Fatalf("want PNG image, got %d bytes", len(png))
	}
}
