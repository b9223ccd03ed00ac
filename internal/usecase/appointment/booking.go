package appointment

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/models"
	"github.com/BruksfildServices01/chair-scheduler/internal/timezone"
)

// Reminders é a frente fire-and-forget dos lembretes.
type Reminders interface {
	RequestSchedule(ap models.Appointment)
	RequestCancel(appointmentID uuid.UUID)
}

// Booking carrega as regras compartilhadas pelos casos de uso de agenda.
type Booking struct {
	Location *time.Location
	Policy   domain.Policy

	// EnforcePast liga a checagem de horário passado em criação/edição.
	EnforcePast bool

	Now func() time.Time
}

func DefaultBooking(loc *time.Location) Booking {
	return Booking{
		Location:    loc,
		Policy:      domain.DefaultPolicy(),
		EnforcePast: true,
	}
}

func (b Booking) loc() *time.Location {
	if b.Location == nil {
		return time.UTC
	}
	return b.Location
}

func (b Booking) now() time.Time {
	if b.Now != nil {
		return b.Now().In(b.loc())
	}
	return time.Now().In(b.loc())
}

func (b Booking) day(t time.Time) time.Time {
	return timezone.StartOfDay(t, b.loc())
}
