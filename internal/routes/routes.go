package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/chair-scheduler/internal/audit"
	"github.com/BruksfildServices01/chair-scheduler/internal/config"
	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/chair-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/chair-scheduler/internal/middleware"
	"github.com/BruksfildServices01/chair-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/chair-scheduler/internal/usecase/appointment"
	ucStylist "github.com/BruksfildServices01/chair-scheduler/internal/usecase/stylist"
)

// Deps são os singletons montados pelo comando serve.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Log       *zap.Logger
	Reminders ucAppointment.Reminders
	Audit     audit.Sink
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	cfg := d.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middleware.RequestLogger(d.Log))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.ShopTimezone)

	scheduleRepo := infraRepo.NewScheduleGormRepository(d.DB)
	auditLogger := audit.New(d.DB)

	booking := ucAppointment.Booking{
		Location: loc,
		Policy: domain.Policy{
			OpenHour:  cfg.BusinessOpenHour,
			CloseHour: cfg.BusinessCloseHour,
		},
		EnforcePast: cfg.EnforcePastCheck,
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(scheduleRepo, d.Reminders, d.Audit, booking)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(scheduleRepo, d.Reminders, d.Audit, booking)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(scheduleRepo, d.Reminders, d.Audit)
	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(scheduleRepo, booking)
	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(scheduleRepo, booking)
	getAvailabilityUC := ucAppointment.NewGetAvailability(scheduleRepo, booking)

	createStylistUC := ucStylist.NewCreateStylist(scheduleRepo, d.Audit)
	listStylistsUC := ucStylist.NewListStylists(scheduleRepo)
	deleteStylistUC := ucStylist.NewDeleteStylist(scheduleRepo, d.Reminders, d.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)

	stylistHandler := handlers.NewStylistHandler(createStylistUC, listStylistsUC, deleteStylistUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		loc,
		cfg.DefaultDurationMin,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC, loc, cfg.DefaultDurationMin)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)
	contactsHandler := handlers.NewContactsHandler()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/slots", availabilityHandler.Slots)

			secured.GET("/stylists", stylistHandler.List)
			secured.POST("/stylists", stylistHandler.Create)
			secured.DELETE("/stylists/:id", stylistHandler.Delete)

			secured.GET("/stylists/:id/appointments", appointmentHandler.ListByDate)
			secured.GET("/stylists/:id/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/stylists/:id/availability", availabilityHandler.Availability)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.POST("/contacts/import", contactsHandler.Import)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
