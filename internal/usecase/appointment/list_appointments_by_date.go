package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/dto"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
	"github.com/BruksfildServices01/chair-scheduler/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo    domain.Repository
	booking Booking
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	booking Booking,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo:    repo,
		booking: booking,
	}
}

// Execute aceita "today", "tomorrow" ou YYYY-MM-DD.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	stylistID uuid.UUID,
	date string,
) ([]dto.AppointmentListDTO, time.Time, error) {

	day, err := timezone.ParseDay(date, uc.booking.now(), uc.booking.loc())
	if err != nil {
		return nil, time.Time{}, httperr.ErrValidation("date")
	}

	if _, err := uc.repo.GetStylist(ctx, stylistID); err != nil {
		return nil, day, err
	}

	appointments, err := uc.repo.ListForDay(ctx, stylistID, day)
	if err != nil {
		return nil, day, err
	}

	return dto.FromAppointments(appointments), day, nil
}
