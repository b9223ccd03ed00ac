package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
)

// DayLayout é o formato da chave de dia usada nas consultas "mesmo dia".
const DayLayout = "2006-01-02"

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	StylistID uuid.UUID `gorm:"type:uuid;not null;index:idx_appointments_stylist_day,priority:1" json:"stylist_id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:30;not null" json:"customer_phone"`

	// Date é sempre o início do dia no fuso da barbearia.
	Date time.Time `gorm:"not null" json:"date"`
	Day  string    `gorm:"size:10;not null;index:idx_appointments_stylist_day,priority:2" json:"day"`

	StartHour   int `gorm:"not null" json:"start_hour"`
	StartMinute int `gorm:"not null" json:"start_minute"`
	DurationMin int `gorm:"not null;default:60" json:"duration_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ap *Appointment) Slot() timeslot.TimeSlot {
	return timeslot.New(ap.StartHour, ap.StartMinute)
}

func (ap *Appointment) SetSlot(s timeslot.TimeSlot) {
	ap.StartHour = s.Hour()
	ap.StartMinute = s.Minute()
}

// EndLabel wraps past midnight; display only.
func (ap *Appointment) EndLabel() string {
	return timeslot.FormatMinutes(ap.Slot().MinutesOfDay() + ap.DurationMin)
}

// StartsAt devolve o instante de início no fuso de Date.
func (ap *Appointment) StartsAt() time.Time {
	return ap.Slot().On(ap.Date)
}
