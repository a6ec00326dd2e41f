package cart_test

import (
	"context"
	"errors"
	"testing"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/entities"
	"Fridgify-Backend/pkg/cart"
	"Fridgify-Backend/pkg/fridge"

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
	if err := db.AutoMigrate(&entities.User{}, &entities.Fridge{}, &entities.ShoppingCart{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestAddCartItemMissingFridge(t *testing.T) {
	svc := cart.NewCartService(cart.NewCartRepository(memdb(t)))

	req := domain.AddCartItemRequest{Name: "Хлеб", FridgeID: uuid.New().String(), Mass: 0.5}
	_, err := svc.AddCartItem(context.Background(), req, uuid.New().String())
	if !errors.Is(err, domain.ErrFridgeNotFound) {
		t.Fatalf("want ErrFridgeNotFound, got %v", err)
	}
}

func TestCartRoundTrip(t *testing.T) {
	db := memdb(t)
	fridgeSvc := fridge.NewFridgeService(fridge.NewFridgeRepository(db))
	svc := cart.NewCartService(cart.NewCartRepository(db))
	ctx := context.Background()

	owner := uuid.New().String()
	f, err := fridgeSvc.CreateFridge(ctx, domain.CreateFridgeRequest{Title: "Kitchen", UserID: owner})
	if err != nil {
		t.Fatal(err)
	}

	item, err := svc.AddCartItem(ctx, domain.AddCartItemRequest{Name: "Сыр", FridgeID: f.ID, Mass: 0.3}, owner)
	if err != nil {
		t.Fatal(err)
	}

	items, err := svc.GetCartItems(ctx, owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Name != "Сыр" {
		t.Fatalf("unexpected cart contents: %+v", items)
	}

	// A stranger cannot remove the item even with the right id.
	stranger := uuid.New().String()
	if err := svc.RemoveCartItem(ctx, item.ID, stranger); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("want ErrCartItemNotFound, got %v", err)
	}

	if err := svc.RemoveCartItem(ctx, item.ID, owner); err != nil {
		t.Fatal(err)
	}

	items, err = svc.GetCartItems(ctx, owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("want empty cart, got %d items", len(items))
	}
}
