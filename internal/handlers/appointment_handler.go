package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/chair-scheduler/internal/dto"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
	"github.com/BruksfildServices01/chair-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/chair-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create        *ucAppointment.CreateAppointment
	update        *ucAppointment.UpdateAppointment
	delete        *ucAppointment.DeleteAppointment
	listByDate    *ucAppointment.ListAppointmentsByDate
	listByMonth   *ucAppointment.ListAppointmentsByMonth
	loc           *time.Location
	defaultDurMin int
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	del *ucAppointment.DeleteAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
	loc *time.Location,
	defaultDurMin int,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:        create,
		update:        update,
		delete:        del,
		listByDate:    listByDate,
		listByMonth:   listByMonth,
		loc:           loc,
		defaultDurMin: defaultDurMin,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	StylistID     string `json:"stylist_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Date          string `json:"date"`
	Start         string `json:"start"`
	DurationMin   *int   `json:"duration_min"`
}

// parseWhen resolve dia, horário e duração; duração omitida usa o padrão.
func (h *AppointmentHandler) parseWhen(req AppointmentRequest) (time.Time, timeslot.TimeSlot, int, error) {
	date, err := parseDay(h.loc, req.Date)
	if err != nil {
		return time.Time{}, timeslot.TimeSlot{}, 0, err
	}

	start, err := parseSlot(req.Start)
	if err != nil {
		return time.Time{}, timeslot.TimeSlot{}, 0, err
	}

	dur := h.defaultDurMin
	if req.DurationMin != nil {
		dur = *req.DurationMin
	}

	return date, start, dur, nil
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	stylistID, err := parseID(req.StylistID, "stylist_id")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	date, start, dur, err := h.parseWhen(req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		StylistID:     stylistID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Date:          date,
		Start:         start,
		DurationMin:   dur,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(*ap))
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"), "id")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucAppointment.UpdateAppointmentInput{
		ID:            id,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	}

	if req.StylistID != "" {
		if in.StylistID, err = parseID(req.StylistID, "stylist_id"); err != nil {
			httperr.FromError(c, err)
			return
		}
	}

	if in.Date, in.Start, in.DurationMin, err = h.parseWhen(req); err != nil {
		httperr.FromError(c, err)
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"), "id")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// LIST
// ======================================================

// ListByDate aceita date=today|tomorrow|YYYY-MM-DD (padrão: today).
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	stylistID, err := parseID(c.Param("id"), "stylist_id")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	list, day, err := h.listByDate.Execute(c.Request.Context(), stylistID, c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Header("X-Schedule-Day", day.Format("2006-01-02"))
	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	stylistID, err := parseID(c.Param("id"), "stylist_id")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	now := time.Now().In(h.loc)

	year := now.Year()
	if y := c.Query("year"); y != "" {
		if year, err = strconv.Atoi(y); err != nil {
			httperr.FromError(c, httperr.ErrValidation("year"))
			return
		}
	}

	month := int(now.Month())
	if m := c.Query("month"); m != "" {
		if month, err = strconv.Atoi(m); err != nil {
			httperr.FromError(c, httperr.ErrValidation("month"))
			return
		}
	}

	list, err := h.listByMonth.Execute(c.Request.Context(), stylistID, year, time.Month(month))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}
