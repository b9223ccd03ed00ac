package cli

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/chair-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/chair-scheduler/internal/db"
	"github.com/BruksfildServices01/chair-scheduler/internal/logger"
)

// bootstrap carrega config, logger e banco já migrado.
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := dbpkg.Migrate(db); err != nil {
		return nil, nil, nil, err
	}

	return cfg, log, db, nil
}
