package product_test

import (
	"context"
	"errors"
	"testing"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/entities"
	"Fridgify-Backend/pkg/fridge"
	"Fridgify-Backend/pkg/product"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func memdb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&entities.User{}, &entities.Fridge{}, &entities.Product{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func productRequest(fridgeID, userID string) domain.CreateProductRequest {
	return domain.CreateProductRequest{
		Name:             "Молоко",
		ProductType:      "Молочные продукты",
		ManufactureDate:  "2025-01-01",
		ExpiryDate:       "2025-01-10",
		Mass:             1.0,
		Unit:             "л",
		NutritionalValue: "50 ккал/100 мл",
		FridgeID:         fridgeID,
		UserID:           userID,
	}
}

func TestCreateProductInOwnFridge(t *testing.T) {
	db := memdb(t)
	fridgeSvc := fridge.NewFridgeService(fridge.NewFridgeRepository(db))
	svc := product.NewProductService(product.NewProductRepository(db))
	ctx := context.Background()

	owner := uuid.New().String()
	f, err := fridgeSvc.CreateFridge(ctx, domain.CreateFridgeRequest{Title: "Kitchen", UserID: owner})
	if err != nil {
		t.Fatal(err)
	}

	res, err := svc.CreateProduct(ctx, productRequest(f.ID, owner))
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != "Молоко" || res.FridgeID != f.ID {
		t.Fatalf("unexpected product: %+v", res)
	}

	items, err := svc.GetProductsByFridge(ctx, f.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("want 1 product, got %d", len(items))
	}
}

// Another user's fridge must be indistinguishable from a missing one.
func TestCreateProductForeignFridge(t *testing.T) {
	db := memdb(t)
	fridgeSvc := fridge.NewFridgeService(fridge.NewFridgeRepository(db))
	svc := product.NewProductService(product.NewProductRepository(db))
	ctx := context.Background()

	owner := uuid.New().String()
	f, err := fridgeSvc.CreateFridge(ctx, domain.CreateFridgeRequest{Title: "Kitchen", UserID: owner})
	if err != nil {
		t.Fatal(err)
	}

	stranger := uuid.New().String()
	_, err = svc.CreateProduct(ctx, productRequest(f.ID, stranger))
	if !errors.Is(err, domain.ErrFridgeNotFound) {
		t.Fatalf("want ErrFridgeNotFound, got %v", err)
	}

	_, err = svc.CreateProduct(ctx, productRequest(uuid.New().String(), stranger))
	if !errors.Is(err, domain.ErrFridgeNotFound) {
		t.Fatalf("missing fridge: want ErrFridgeNotFound, got %v", err)
	}
}

func TestCreateProductBadDate(t *testing.T) {
	db := memdb(t)
	svc := product.NewProductService(product.NewProductRepository(db))

	req := productRequest(uuid.New().String(), uuid.New().String())
	req.ExpiryDate = "10-01-2025"
	if _, err := svc.CreateProduct(context.Background(), req); !errors.Is(err, domain.ErrInvalidProductDate) {
		t.Fatalf("want ErrInvalidProductDate, got %v", err)
	}
}

func TestDeleteProductMissing(t *testing.T) {
	db := memdb(t)
	svc := product.NewProductService(product.NewProductRepository(db))

	err := svc.DeleteProduct(context.Background(), uuid.New().String())
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound, got %v", err)
	}
}
