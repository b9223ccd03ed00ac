package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/dto"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
)

type ListAppointmentsByMonth struct {
	repo    domain.Repository
	booking Booking
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	booking Booking,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo:    repo,
		booking: booking,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	stylistID uuid.UUID,
	year int,
	month time.Month,
) ([]dto.AppointmentListDTO, error) {

	if month < time.January || month > time.December {
		return nil, httperr.ErrValidation("month")
	}

	if _, err := uc.repo.GetStylist(ctx, stylistID); err != nil {
		return nil, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, uc.booking.loc())
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListForPeriod(ctx, stylistID, start, end)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments), nil
}
