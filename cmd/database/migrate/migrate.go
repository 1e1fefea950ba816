package migration

import (
	"Dinner-For-Five/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("error migrating recipe database: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
