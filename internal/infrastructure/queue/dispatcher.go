package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gaeliza/match-system/internal/api/metrics"
	"github.com/gaeliza/match-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ScoreApplier applies one score event to the live scoreboard.
type ScoreApplier interface {
	Apply(ctx context.Context, event ports.ScoreEvent) error
}

// Dispatcher routes score events to a fixed set of workers using consistent
// hashing on the match id, guaranteeing per-match ordering of scoreboard
// updates.
type Dispatcher struct {
	workers []chan ports.ScoreEvent
	applier ScoreApplier
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, applier ScoreApplier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ScoreEvent, numWorkers),
		applier: applier,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ScoreEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its match. The call is
// non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.ScoreEvent) {
	idx := d.shardIndex(event.MatchID)
	d.workers[idx] <- event
	metrics.ScoreQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a match id deterministically to a worker index.
func (d *Dispatcher) shardIndex(matchID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(matchID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ScoreEvent) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.ScoreQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.applier.Apply(ctx, event); err != nil {
				metrics.ScoreEventsAppliedTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("match_id", event.MatchID).
					Int("worker_id", id).
					Msg("scoreboard update failed")
				continue
			}
			metrics.ScoreEventsAppliedTotal.WithLabelValues("applied").Inc()
		}
	}
}
