package reminder

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/chair-scheduler/internal/models"
)

type opKind int

const (
	opSchedule opKind = iota
	opCancel
)

type op struct {
	kind opKind
	ap   models.Appointment
	id   uuid.UUID
}

// Queue é a fachada fire-and-forget: um único worker processa os pedidos
// em ordem FIFO, então um cancelamento sempre roda antes do reagendamento
// pedido depois dele para o mesmo agendamento.
type Queue struct {
	sched   Scheduler
	log     *zap.Logger
	timeout time.Duration
	ops     chan op
	done    chan struct{}
}

func NewQueue(sched Scheduler, log *zap.Logger) *Queue {
	q := &Queue{
		sched:   sched,
		log:     log,
		timeout: 5 * time.Second,
		ops:     make(chan op, 100),
		done:    make(chan struct{}),
	}

	go q.worker()
	return q
}

func (q *Queue) worker() {
	defer close(q.done)

	for o := range q.ops {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)

		var err error
		switch o.kind {
		case opSchedule:
			err = q.sched.Schedule(ctx, &o.ap)
		case opCancel:
			err = q.sched.Cancel(ctx, o.id)
		}
		cancel()

		if err != nil {
			q.log.Warn("reminder request failed", zap.Error(err))
		}
	}
}

func (q *Queue) RequestSchedule(ap models.Appointment) {
	q.enqueue(op{kind: opSchedule, ap: ap, id: ap.ID})
}

func (q *Queue) RequestCancel(appointmentID uuid.UUID) {
	q.enqueue(op{kind: opCancel, id: appointmentID})
}

func (q *Queue) enqueue(o op) {
	select {
	case q.ops <- o:
	default:
		// fila cheia: lembrete é best-effort, nunca bloqueia o agendamento
		q.log.Warn("reminder queue full, dropping request", zap.String("appointment_id", o.id.String()))
	}
}

// Close drena os pedidos pendentes e para o worker.
func (q *Queue) Close() {
	close(q.ops)
	<-q.done
}
