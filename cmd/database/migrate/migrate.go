package migration

import (
	"fmt"
	"log"

	"FreshStock-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InventorySession{}); err != nil {
		log.Fatalf("Error migrating inventory session database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Batch{}); err != nil {
		log.Fatalf("Error migrating batch database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WarningConfig{}); err != nil {
		log.Fatalf("Error migrating warning config database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WarningLog{}); err != nil {
		log.Fatalf("Error migrating warning log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AuditLog{}); err != nil {
		log.Fatalf("Error migrating audit log database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
