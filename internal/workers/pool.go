package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"outreach-server/internal/observability"
)

var (
	errPoolNotStarted   = errors.New("webhook pool: not running")
	errPoolShuttingDown = errors.New("webhook pool: closed to new jobs")
	errPoolRunning      = errors.New("webhook pool: already running")
	errPoolClosed       = errors.New("webhook pool: closed")
	errDrainDeadline    = errors.New("webhook pool: jobs still running at drain deadline")
)

// ProcessingResult is handed to OnResult once per job.
type ProcessingResult struct {
	Job   Job
	Error error
}

type ResultCallback func(result ProcessingResult)

// PoolConfig sizes the pool. Zero values fall back to DefaultPoolConfig.
type PoolConfig struct {
	NumWorkers   int
	QueueSize    int
	DrainTimeout time.Duration
	OnResult     ResultCallback
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		NumWorkers:   4,
		QueueSize:    100,
		DrainTimeout: 30 * time.Second,
	}
}

type poolState int

const (
	stateIdle poolState = iota
	stateRunning
	stateDraining
	stateStopped
)

type pool struct {
	cfg    PoolConfig
	proc   JobProcessor
	logger *observability.Logger

	queue   chan Job
	running sync.WaitGroup

	// closing is closed once, when Drain or Stop is first called, so a
	// Submit blocked on a full queue returns.
	closing     chan struct{}
	closingOnce sync.Once

	mu     sync.RWMutex
	state  poolState
	cancel context.CancelFunc
}

// NewPool builds a pool that feeds jobs to proc.
func NewPool(config PoolConfig, proc JobProcessor, logger *observability.Logger) Pool {
	def := DefaultPoolConfig()
	if config.NumWorkers <= 0 {
		config.NumWorkers = def.NumWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = def.QueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = def.DrainTimeout
	}

	return &pool{
		cfg:     config,
		proc:    proc,
		logger:  logger,
		queue:   make(chan Job, config.QueueSize),
		closing: make(chan struct{}),
	}
}

// Start launches the workers. Jobs run under ctx, not under the submitting request's context.
func (p *pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case stateRunning, stateDraining:
		return errPoolRunning
	case stateStopped:
		return errPoolClosed
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.state = stateRunning

	p.running.Add(p.cfg.NumWorkers)
	for id := 0; id < p.cfg.NumWorkers; id++ {
		go p.run(runCtx, id)
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "processor", Value: p.proc.Name()},
		observability.Field{Key: "workers", Value: p.cfg.NumWorkers},
		observability.Field{Key: "queue_size", Value: p.cfg.QueueSize},
	), "webhook pool running")
	return nil
}

func (p *pool) Submit(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch p.state {
	case stateIdle:
		return errPoolNotStarted
	case stateDraining, stateStopped:
		return errPoolShuttingDown
	}

	select {
	case p.queue <- job:
		return nil
	case <-p.closing:
		return errPoolShuttingDown
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *pool) beginClose() {
	p.closingOnce.Do(func() { close(p.closing) })
}

// Drain stops intake and waits up to DrainTimeout for queued jobs to finish.
// On timeout the remaining jobs are cancelled.
func (p *pool) Drain(ctx context.Context) error {
	p.beginClose()

	p.mu.Lock()
	switch p.state {
	case stateIdle:
		p.mu.Unlock()
		return errPoolNotStarted
	case stateDraining, stateStopped:
		p.mu.Unlock()
		return errPoolShuttingDown
	}
	p.state = stateDraining
	close(p.queue)
	p.mu.Unlock()

	logCtx := observability.WithFields(ctx,
		observability.Field{Key: "processor", Value: p.proc.Name()},
		observability.Field{Key: "queued", Value: len(p.queue)},
	)
	p.logger.Info(logCtx, "webhook pool draining")

	if p.waitIdle(ctx, p.cfg.DrainTimeout) {
		p.logger.Info(logCtx, "webhook pool drained")
		return nil
	}

	p.logger.Warn(logCtx, "webhook pool drain deadline reached, cancelling remaining jobs")
	p.Stop()
	return errDrainDeadline
}

// waitIdle reports whether every worker returned before timeout.
func (p *pool) waitIdle(ctx context.Context, timeout time.Duration) bool {
	idle := make(chan struct{})
	go func() {
		p.running.Wait()
		close(idle)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-idle:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}

// Stop cancels in-flight jobs and discards queued ones.
func (p *pool) Stop() {
	p.beginClose()

	p.mu.Lock()
	defer p.mu.Unlock()

	prev := p.state
	if prev == stateStopped {
		return
	}
	p.state = stateStopped

	if p.cancel != nil {
		p.cancel()
	}
	if prev != stateDraining {
		close(p.queue)
	}
}

func (p *pool) run(ctx context.Context, id int) {
	defer p.running.Done()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "worker_id", Value: id},
		observability.Field{Key: "processor", Value: p.proc.Name()},
	)

	for {
		var job Job
		var ok bool
		select {
		case <-ctx.Done():
			return
		case job, ok = <-p.queue:
		}
		if !ok {
			return
		}
		p.handle(ctx, job)
	}
}

func (p *pool) handle(ctx context.Context, job Job) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "job_id", Value: job.ID},
		observability.Field{Key: "job_type", Value: job.Type},
		observability.Field{Key: "shop", Value: job.Shop},
	)

	err := p.safeProcess(ctx, job)
	if err != nil {
		p.logger.Error(ctx, "webhook job failed", err)
	} else {
		p.logger.Info(ctx, "webhook job done")
	}

	if p.cfg.OnResult != nil {
		p.cfg.OnResult(ProcessingResult{Job: job, Error: err})
	}
}

// safeProcess turns a panic in the processor into an error.
func (p *pool) safeProcess(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.ID, r)
		}
	}()
	return p.proc.Process(ctx, job)
}
