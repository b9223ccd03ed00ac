package audit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Sink recebe eventos de auditoria sem bloquear o chamador.
type Sink interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event
	done   chan struct{}
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100), // buffer seguro
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.logger.Log(ctx, ev); err != nil {
			d.log.Warn("audit error", zap.Error(err), zap.String("action", ev.Action))
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drena a fila; usado no shutdown.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

// Discard é o Sink usado quando não há auditoria.
type Discard struct{}

func (Discard) Dispatch(Event) {}
