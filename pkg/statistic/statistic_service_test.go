package statistic_test

import (
	"context"
	"errors"
	"testing"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/entities"
	"Fridgify-Backend/pkg/statistic"

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
	if err := db.AutoMigrate(&entities.User{}, &entities.ProductStatistic{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestStatisticAccumulation(t *testing.T) {
	svc := statistic.NewStatisticService(statistic.NewStatisticRepository(memdb(t)))
	ctx := context.Background()
	userID := uuid.New().String()

	if err := svc.UpdateStatistic(ctx, domain.UpdateStatisticRequest{Name: "Молоко", Quantity: 3}, userID); err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdateStatistic(ctx, domain.UpdateStatisticRequest{Name: "Молоко", Quantity: 5}, userID); err != nil {
		t.Fatal(err)
	}

	res, err := svc.GetTopProducts(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Day) != 1 {
		t.Fatalf("want 1 record, got %d", len(res.Day))
	}
	if res.Day[0].Quantity != 8 || res.Week[0].Quantity != 8 || res.Month[0].Quantity != 8 {
		t.Fatalf("want 8 in every window, got day=%d week=%d month=%d",
			res.Day[0].Quantity, res.Week[0].Quantity, res.Month[0].Quantity)
	}
}

func TestTopProductsOrdering(t *testing.T) {
	svc := statistic.NewStatisticService(statistic.NewStatisticRepository(memdb(t)))
	ctx := context.Background()
	userID := uuid.New().String()

	for name, quantity := range map[string]int{"Хлеб": 10, "Сыр": 3, "Яйца": 7} {
		if err := svc.UpdateStatistic(ctx, domain.UpdateStatisticRequest{Name: name, Quantity: quantity}, userID); err != nil {
			t.Fatal(err)
		}
	}

	res, err := svc.GetTopProducts(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{10, 7, 3}
	for i, q := range want {
		if res.Day[i].Quantity != q {
			t.Fatalf("day window position %d: want %d, got %d", i, q, res.Day[i].Quantity)
		}
	}
}

func TestTopProductsNoStatistics(t *testing.T) {
	svc := statistic.NewStatisticService(statistic.NewStatisticRepository(memdb(t)))

	_, err := svc.GetTopProducts(context.Background(), uuid.New().String())
	if !errors.Is(err, domain.ErrStatisticNotFound) {
		t.Fatalf("want ErrStatisticNotFound, got %v", err)
	}
}

// Records are isolated per user even for identical product names.
func TestStatisticsScopedByUser(t *testing.T) {
	svc := statistic.NewStatisticService(statistic.NewStatisticRepository(memdb(t)))
	ctx := context.Background()

	userA := uuid.New().String()
	userB := uuid.New().String()

	if err := svc.UpdateStatistic(ctx, domain.UpdateStatisticRequest{Name: "Молоко", Quantity: 4}, userA); err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdateStatistic(ctx, domain.UpdateStatisticRequest{Name: "Молоко", Quantity: 9}, userB); err != nil {
		t.Fatal(err)
	}

	res, err := svc.GetTopProducts(ctx, userA)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Day) != 1 || res.Day[0].Quantity != 4 {
		t.Fatalf("user A sees foreign statistics: %+v", res.Day)
	}
}
