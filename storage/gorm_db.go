package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitGormDB wraps the existing pool so gorm and raw SQL share connections.
func InitGormDB(sqlDB *sql.DB) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.New(log.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return gdb, nil
}

// GormLookup checks a key through gorm so the placeholder matches the dialect.
func GormLookup(tx *gorm.DB, spec IDSpec) KeyLookup {
	return func(ctx context.Context, key Key) (bool, error) {
		var n int64
		err := tx.WithContext(ctx).
			Table(spec.Table).
			Where(fmt.Sprintf("%s = ?", spec.Column), key).
			Limit(1).
			Count(&n).Error
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}
