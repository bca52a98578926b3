package store

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test, with foreign
// keys enforced so ordering mistakes in the cascade surface as errors.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = conn.AutoMigrate(
		&models.User{},
		&models.PhoneNumber{},
		&models.Address{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Review{},
		&models.Reservation{},
		&models.Restaurant{},
		&models.RestaurantVenue{},
	)
	require.NoError(t, err)

	return conn
}

func countRows(t *testing.T, conn *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, conn.Model(model).Where(query, args...).Count(&count).Error)
	return count
}
