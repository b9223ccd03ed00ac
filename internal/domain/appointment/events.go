package appointment

// Ações registradas na auditoria ao longo do ciclo de vida
// NonExistent -> Booked -> Cancelled.
const (
	ActionBooked      = "appointment_booked"
	ActionRescheduled = "appointment_rescheduled"
	ActionCancelled   = "appointment_cancelled"
	ActionConflict    = "appointment_conflict"

	ActionStylistCreated = "stylist_created"
	ActionStylistDeleted = "stylist_deleted"

	EntityAppointment = "appointment"
	EntityStylist     = "stylist"
)
