package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/chair-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID            uuid.UUID `json:"id"`
	StylistID     uuid.UUID `json:"stylist_id"`
	Day           string    `json:"day"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	DurationMin   int       `json:"duration_min"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	StartsAt      time.Time `json:"starts_at"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:            ap.ID,
		StylistID:     ap.StylistID,
		Day:           ap.Day,
		Start:         ap.Slot().String(),
		End:           ap.EndLabel(),
		DurationMin:   ap.DurationMin,
		CustomerName:  ap.CustomerName,
		CustomerPhone: ap.CustomerPhone,
		StartsAt:      ap.StartsAt(),
	}
}

func FromAppointments(list []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(list))
	for _, ap := range list {
		out = append(out, FromAppointment(ap))
	}
	return out
}
