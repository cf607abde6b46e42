// Package notify runs side-effecting notification jobs off the request path.
// Delivery is best-effort and at-most-once: a failed or dropped job is logged
// and forgotten, never surfaced to the operation that enqueued it.
package notify

import (
	"context"
	"log"
	"sync"
	"time"
)

type Kind string

const (
	KindBookingConfirmation Kind = "booking_confirmation"
	KindEventUpdate         Kind = "event_update"
)

type Job struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	// booking_confirmation payload
	UserName    string    `json:"user_name,omitempty"`
	UserEmail   string    `json:"user_email,omitempty"`
	TicketCount uint      `json:"ticket_count,omitempty"`
	EventDate   time.Time `json:"event_date,omitempty"`

	// shared / event_update payload
	EventTitle    string `json:"event_title,omitempty"`
	AffectedUsers int    `json:"affected_users,omitempty"`
	Changes       string `json:"changes,omitempty"`
}

// Sink performs the actual delivery of a job.
type Sink interface {
	Deliver(job Job) error
}

type Dispatcher struct {
	sink Sink
	jobs chan Job

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher starts a worker pool draining a bounded queue. Enqueue never
// blocks: when the queue is full the job is dropped with a warning.
func NewDispatcher(sink Sink, workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	d := &Dispatcher{
		sink: sink,
		jobs: make(chan Job, queueSize),
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for job := range d.jobs {
		if err := d.sink.Deliver(job); err != nil {
			log.Printf("[Dispatcher] delivery failed, dropping job %s (%s): %v", job.ID, job.Kind, err)
		}
	}
}

func (d *Dispatcher) Enqueue(job Job) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		log.Printf("[Dispatcher] shut down, dropping job %s (%s)", job.ID, job.Kind)
		return
	}

	select {
	case d.jobs <- job:
	default:
		log.Printf("[Dispatcher] queue full, dropping job %s (%s)", job.ID, job.Kind)
	}
}

// Shutdown stops intake and waits for in-flight jobs, bounded by ctx.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.jobs)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
