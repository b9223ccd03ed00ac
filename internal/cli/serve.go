package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/chair-scheduler/internal/audit"
	"github.com/BruksfildServices01/chair-scheduler/internal/config"
	"github.com/BruksfildServices01/chair-scheduler/internal/reminder"
	"github.com/BruksfildServices01/chair-scheduler/internal/routes"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder dispatcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// ---------------- lembretes ----------------
			sched, dispatcher, closeRedis := buildReminders(ctx, cfg, log)
			defer closeRedis()

			queue := reminder.NewQueue(sched, log)
			defer queue.Close()

			if dispatcher != nil {
				go dispatcher.Run(ctx)
			}

			// ---------------- auditoria ----------------
			auditDispatcher := audit.NewDispatcher(audit.New(db), log)
			defer auditDispatcher.Close()

			// ---------------- http ----------------
			gin.SetMode(gin.ReleaseMode)
			r := gin.New()
			r.Use(gin.Recovery())

			routes.RegisterRoutes(r, routes.Deps{
				DB:        db,
				Config:    cfg,
				Log:       log,
				Reminders: queue,
				Audit:     auditDispatcher,
			})

			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           r,
				ReadHeaderTimeout: 5 * time.Second,
			}

			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server error", zap.Error(err))
					stop()
				}
			}()

			log.Info("server running",
				zap.String("addr", cfg.Addr()),
				zap.Bool("auth", cfg.AuthEnabled()),
				zap.Bool("reminders", dispatcher != nil),
			)

			<-ctx.Done()
			log.Info("shutdown signal received")

			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shCtx); err != nil {
				log.Warn("http server shutdown error", zap.Error(err))
			}
			return nil
		},
	}
}

// buildReminders liga o Redis quando habilitado; sem ele os lembretes
// viram no-op e o agendamento segue funcionando.
func buildReminders(
	ctx context.Context,
	cfg *config.Config,
	log *zap.Logger,
) (reminder.Scheduler, *reminder.Dispatcher, func()) {

	if !cfg.RemindersEnabled {
		return reminder.NopScheduler{}, nil, func() {}
	}

	client, err := reminder.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Warn("redis unavailable, reminders disabled", zap.Error(err))
		return reminder.NopScheduler{}, nil, func() {}
	}

	store := reminder.NewRedisStore(client)
	dispatcher := reminder.NewDispatcher(
		store,
		reminder.LogNotifier{Log: log},
		log,
		cfg.ReminderPollInterval,
	)

	return store, dispatcher, func() { _ = client.Close() }
}
