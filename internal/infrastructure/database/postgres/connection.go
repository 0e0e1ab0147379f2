package postgres

import (
	"fmt"
	"sync"

	"silentblock/internal/domain/entity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	dbInstance *gorm.DB
	once       sync.Once
	connectErr error
)

// NewDB initializes the GORM connection to the relational trigger store.
// It ensures that the connection is established only once (singleton pattern).
func NewDB(dsn string) (*gorm.DB, error) {
	once.Do(func() {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			connectErr = fmt.Errorf("failed to connect to trigger store: %w", err)
			return
		}
		dbInstance = db

		if err := AutoMigrate(dbInstance); err != nil {
			connectErr = err
			dbInstance = nil
		}
	})
	if connectErr != nil {
		return nil, connectErr
	}
	return dbInstance, nil
}

// AutoMigrate automatically migrates the trigger store schema.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.ScheduleTrigger{}); err != nil {
		return fmt.Errorf("trigger store schema migration failed: %w", err)
	}
	return nil
}

// CloseDB closes the trigger store connection if it's open.
func CloseDB() error {
	if dbInstance != nil {
		sqlDB, err := dbInstance.DB()
		if err != nil {
			return fmt.Errorf("failed to get underlying *sql.DB: %w", err)
		}
		return sqlDB.Close()
	}
	return nil
}
