package audit

import (
	"log"
	"sync"

	"github.com/BruksfildServices01/sales-crm/internal/metrics"
)

const queueSize = 100

type Event struct {
	ActorID  string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher persists events on a background worker. Events are dropped when
// the queue is full or the dispatcher is closed; audit never fails a request.
// A nil Dispatcher discards everything.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   sync.WaitGroup

	// mu guards closed and the send on queue against Close.
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, queueSize),
	}

	d.done.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.done.Done()
	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.RecordAuditDropped()
		log.Println("audit closed, dropping event:", ev.Action)
		return
	}

	select {
	case d.queue <- ev:
	default:
		metrics.RecordAuditDropped()
		log.Println("audit queue full, dropping event:", ev.Action)
	}
}

// Close stops accepting events and waits for the queue to drain. Later
// Dispatch calls drop their event.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.done.Wait()
}
