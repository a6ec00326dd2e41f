package migration

import (
	"fmt"
	"log"

	"Fridgify-Backend/entities"

	"gorm.io/gorm"
)

// Migrate creates the schema idempotently at startup.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Fridge{}); err != nil {
		log.Fatalf("Error migrating fridge database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingCart{}); err != nil {
		log.Fatalf("Error migrating shopping cart database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ProductStatistic{}); err != nil {
		log.Fatalf("Error migrating product statistic database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
