package testutil

import (
	"testing"

	"risingcreators/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GetEmptyTestDB 返回一个迁移完成的内存数据库
func GetEmptyTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.DiscoveredCreator{},
		&model.CreatorSnapshot{},
		&model.AutoDiscoveryRule{},
	)
	require.NoError(t, err)

	return db
}
