package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
	"github.com/BruksfildServices01/chair-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/chair-scheduler/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	get           *ucAppointment.GetAvailability
	loc           *time.Location
	defaultDurMin int
}

func NewAvailabilityHandler(
	get *ucAppointment.GetAvailability,
	loc *time.Location,
	defaultDurMin int,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		get:           get,
		loc:           loc,
		defaultDurMin: defaultDurMin,
	}
}

// Slots lista a grade completa do dia (00:00..23:30).
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	out := make([]string, 0, timeslot.SlotsPerDay)
	for s := range timeslot.All() {
		out = append(out, s.String())
	}
	httpresp.List(c, out)
}

// Availability: GET /api/stylists/:id/availability?date=&duration_min=&exclude=
func (h *AvailabilityHandler) Availability(c *gin.Context) {
	stylistID, err := parseID(c.Param("id"), "stylist_id")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	date, err := parseDay(h.loc, c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	dur := h.defaultDurMin
	if v := c.Query("duration_min"); v != "" {
		if dur, err = strconv.Atoi(v); err != nil {
			httperr.FromError(c, httperr.ErrValidation("duration_min"))
			return
		}
	}

	exclude := uuid.Nil
	if v := c.Query("exclude"); v != "" {
		if exclude, err = parseID(v, "exclude"); err != nil {
			httperr.FromError(c, err)
			return
		}
	}

	slots, err := h.get.Execute(c.Request.Context(), domain.AvailabilityInput{
		StylistID:   stylistID,
		Date:        date,
		DurationMin: dur,
		ExcludeID:   exclude,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, slots)
}
