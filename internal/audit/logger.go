package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/chair-scheduler/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

// List devolve os registros mais recentes primeiro.
func (l *Logger) List(ctx context.Context, entity string, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	q := l.db.WithContext(ctx).Order("id DESC").Limit(limit)
	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var out []models.AuditLog
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
