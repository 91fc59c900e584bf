package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Job types accepted by the pool.
const (
	JobOrderCreated  = "order.created"
	JobReplyReceived = "reply.received"
)

// Job is one unit of acknowledged-but-unprocessed webhook work.
type Job struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Shop       string          `json:"shop,omitempty"`
	Payload    json.RawMessage `json:"payload"`
	ReceivedAt time.Time       `json:"received_at"`
}

// JobProcessor handles jobs taken off the queue. Implementations must be safe
// for concurrent use and should be idempotent.
type JobProcessor interface {
	Process(ctx context.Context, job Job) error
	Name() string
}

// Pool accepts jobs and runs them on a fixed set of workers.
type Pool interface {
	Start(ctx context.Context) error
	// Submit blocks while the queue is full.
	Submit(ctx context.Context, job Job) error
	// Drain stops accepting jobs and waits for queued ones to finish.
	Drain(ctx context.Context) error
	Stop()
}

// HandlerFunc processes a single job type.
type HandlerFunc func(ctx context.Context, job Job) error

// Dispatcher routes jobs to a handler by Job.Type.
type Dispatcher struct {
	handlers map[string]HandlerFunc
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]HandlerFunc)}
}

// Register binds fn to jobType, replacing any earlier binding.
func (d *Dispatcher) Register(jobType string, fn HandlerFunc) {
	d.handlers[jobType] = fn
}

func (d *Dispatcher) Process(ctx context.Context, job Job) error {
	fn, ok := d.handlers[job.Type]
	if !ok {
		return fmt.Errorf("no handler registered for job type %q", job.Type)
	}
	return fn(ctx, job)
}

func (d *Dispatcher) Name() string {
	return "webhooks"
}
