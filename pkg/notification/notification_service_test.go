package notification

import (
	"context"
	"testing"
	"time"

	"Fridgify-Backend/entities"
	"Fridgify-Backend/pkg/product"
	"Fridgify-Backend/pkg/user"

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

func seedProduct(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, expiry time.Time) {
	t.Helper()
	p := &entities.Product{
		ID:         uuid.New(),
		FridgeID:   uuid.New(),
		UserID:     userID,
		Name:       name,
		ExpiryDate: expiry,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatal(err)
	}
}

func TestNotifyExpiringProducts(t *testing.T) {
	db := memdb(t)
	owner := &entities.User{ID: uuid.New(), Login: "alice", Email: "alice@example.com"}
	if err := db.Create(owner).Error; err != nil {
		t.Fatal(err)
	}

	now := time.Now()
	seedProduct(t, db, owner.ID, "Молоко", now.Add(24*time.Hour))
	seedProduct(t, db, owner.ID, "Сыр", now.Add(2*24*time.Hour))
	seedProduct(t, db, owner.ID, "Мёд", now.Add(30*24*time.Hour))

	var sentTo string
	svc := &notificationService{
		productRepository: product.NewProductRepository(db),
		userRepository:    user.NewUserRepository(db),
		sendMail: func(toEmail, subject, body string) error {
			sentTo = toEmail
			return nil
		},
	}

	res, err := svc.NotifyExpiringProducts(context.Background(), owner.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 2 {
		t.Fatalf("want 2 expiring products, got %d", res.Count)
	}
	if sentTo != "alice@example.com" {
		t.Fatalf("mail sent to %q", sentTo)
	}
}

func TestNotifyExpiringNothingToReport(t *testing.T) {
	db := memdb(t)
	owner := &entities.User{ID: uuid.New(), Login: "bob", Email: "bob@example.com"}
	if err := db.Create(owner).Error; err != nil {
		t.Fatal(err)
	}

	mailed := false
	svc := &notificationService{
		productRepository: product.NewProductRepository(db),
		userRepository:    user.NewUserRepository(db),
		sendMail: func(toEmail, subject, body string) error {
			mailed = true
			return nil
		},
	}

	res, err := svc.NotifyExpiringProducts(context.Background(), owner.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 0 || mailed {
		t.Fatalf("want no mail for empty window, count=%d mailed=%v", res.Count, mailed)
	}
}
