package service

import (
	"testing"

	"github.com/dushixiang/quill/internal/config"
	"github.com/dushixiang/quill/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		models.User{}, models.Trade{}, models.EquityTransaction{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConf{
			Secret:          "test-secret",
			ExpirationHours: 1,
		},
	}
}
