package db

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/Leganyst/seminar-hall-booking/internal/config"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate накатывает схему: для postgres SQL-миграции goose, для sqlite AutoMigrate.
func Migrate(ctx context.Context, gormDB *gorm.DB, driver string) error {
	if driver == config.DriverSQLite {
		if err := model.AutoMigrate(gormDB); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		return nil
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("sql DB: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Version показывает текущую версию миграций (только postgres).
func Version(ctx context.Context, gormDB *gorm.DB) (int64, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return 0, fmt.Errorf("sql DB: %w", err)
	}
	v, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return 0, fmt.Errorf("get version: %w", err)
	}
	return v, nil
}
