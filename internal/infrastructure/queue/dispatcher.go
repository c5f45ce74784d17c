package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gatekeep/auth-service/internal/api/metrics"
	"github.com/gatekeep/auth-service/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher is the asynchronous audit trail: auth events are routed to a
// fixed set of workers by hashing the account email, so events for the same
// account are recorded in order. Each worker emits a structured log line and
// updates the event counters, keeping the request path non-blocking.
type Dispatcher struct {
	workers []chan ports.AuthEvent
	log     zerolog.Logger
	ctx     context.Context
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuthEvent, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	d.ctx = ctx
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its email.
// Non-blocking up to channelBuffer capacity. Once the context passed to
// Start is cancelled the workers are gone, so late events are discarded
// instead of buffered.
func (d *Dispatcher) Enqueue(event ports.AuthEvent) {
	if d.ctx != nil && d.ctx.Err() != nil {
		return
	}
	i := d.shardIndex(event.Email)
	d.workers[i] <- event
	metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuthEvent) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.EventsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			metrics.EventsTotal.WithLabelValues(event.Type).Inc()
			d.log.Info().
				Str("type", event.Type).
				Str("email", event.Email).
				Time("at", event.At).
				Int("worker_id", id).
				Msg("auth event")
		}
	}
}
