package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/chair-scheduler/internal/config"
	"github.com/BruksfildServices01/chair-scheduler/internal/models"
)

// NewDB abre o banco configurado. SQLite é o padrão para uso local de um único operador.
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		// SQLite tem um único escritor.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	log.Info("database ready", zap.String("driver", cfg.DBDriver))
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Stylist{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		return postgres.Open(cfg.DBUrl), nil
	case "sqlite":
		if !strings.HasPrefix(cfg.DBUrl, ":memory:") && !strings.HasPrefix(cfg.DBUrl, "file:") {
			if err := os.MkdirAll(filepath.Dir(cfg.DBUrl), 0o755); err != nil {
				return nil, err
			}
		}
		return sqlite.Open(cfg.DBUrl), nil
	}
	return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
}
