package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo    domain.Repository
	booking Booking
}

func NewGetAvailability(repo domain.Repository, booking Booking) *GetAvailability {
	return &GetAvailability{repo: repo, booking: booking}
}

// Execute lista os horários livres do dia para a duração pedida.
// Horários já passados hoje nunca são oferecidos.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.OpenSlot, error) {

	if in.DurationMin <= 0 {
		return nil, httperr.ErrValidation("duration_min")
	}

	if _, err := uc.repo.GetStylist(ctx, in.StylistID); err != nil {
		return nil, err
	}

	day := uc.booking.day(in.Date)

	appointments, err := uc.repo.ListForDay(ctx, in.StylistID, day)
	if err != nil {
		return nil, err
	}

	free := uc.booking.Policy.OfferableSlots(
		day,
		uc.booking.now(),
		appointments,
		in.DurationMin,
		in.ExcludeID,
	)

	slots := make([]domain.OpenSlot, 0, len(free))
	for _, s := range free {
		slots = append(slots, domain.OpenSlot{
			Start: s.String(),
			End:   timeslot.FormatMinutes(s.MinutesOfDay() + in.DurationMin),
		})
	}

	return slots, nil
}
