package migration

import (
	"fmt"
	"log"

	"LogoForge/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Purchase{}); err != nil {
		log.Fatalf("Error migrating purchase database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Logo{}); err != nil {
		log.Fatalf("Error migrating logo database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GenerationAttempt{}); err != nil {
		log.Fatalf("Error migrating generation attempt database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.BrandKit{}); err != nil {
		log.Fatalf("Error migrating brand kit database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
