package models

import (
	"time"

	"github.com/google/uuid"
)

// Stylist é dono exclusivo dos seus agendamentos.
type Stylist struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:100;not null;index" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
