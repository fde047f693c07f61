package db

import (
	"github.com/mjtaylor123/sunlessCoding/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func ConnectDatabase(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return database, nil
}

func MigrateDatabase(database *gorm.DB) error {
	models := []interface{}{
		&models.User{},
		&models.Post{},
	}

	migrator := database.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := database.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
