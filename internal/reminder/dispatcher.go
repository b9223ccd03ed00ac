package reminder

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Notifier entrega um lembrete vencido.
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

type DueSource interface {
	Due(ctx context.Context, now time.Time, limit int64) ([]Reminder, error)
}

// Dispatcher periodically polls due reminders and hands them to a Notifier.
type Dispatcher struct {
	source   DueSource
	notifier Notifier
	log      *zap.Logger
	interval time.Duration
	now      func() time.Time
}

func NewDispatcher(source DueSource, notifier Notifier, log *zap.Logger, interval time.Duration) *Dispatcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Dispatcher{
		source:   source,
		notifier: notifier,
		log:      log,
		interval: interval,
		now:      time.Now,
	}
}

// Run executa o laço até ctx ser cancelado.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.log.Info("reminder dispatcher stopping")
			return
		case <-ticker.C:
			d.tick(ctx)
		}
	}
}

func (d *Dispatcher) tick(ctx context.Context) {
	due, err := d.source.Due(ctx, d.now(), 100)
	if err != nil {
		d.log.Error("load due reminders failed", zap.Error(err))
	}

	for _, r := range due {
		if err := d.notifier.Notify(ctx, r); err != nil {
			d.log.Error("notify failed", zap.Error(err), zap.String("key", r.Key))
		}
	}
}

// LogNotifier grava o lembrete no log estruturado.
type LogNotifier struct {
	Log *zap.Logger
}

func (n LogNotifier) Notify(_ context.Context, r Reminder) error {
	n.Log.Info("reminder",
		zap.String("key", r.Key),
		zap.String("appointment_id", r.AppointmentID.String()),
		zap.String("title", r.Title),
		zap.String("body", r.Body),
		zap.Time("fire_at", r.FireAt),
	)
	return nil
}
