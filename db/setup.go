package db

import (
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and returns the handle. Callers own the
// handle and pass it to the stores; there is no package-level global.
func Connect(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Surface unique-index violations as gorm.ErrDuplicatedKey so the
		// stores can translate them into typed conflicts.
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	return conn, nil
}

func Migrate(conn *gorm.DB) error {
	entities := []interface{}{
		&models.User{},
		&models.PhoneNumber{},
		&models.Address{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Review{},
		&models.Reservation{},
		&models.Restaurant{},
		&models.RestaurantVenue{},
	}

	migrator := conn.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := conn.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}

// Close releases the underlying connection pool at shutdown.
func Close(conn *gorm.DB) error {
	sqlDB, err := conn.DB()

	if err != nil {
		return err
	}

	return sqlDB.Close()
}
