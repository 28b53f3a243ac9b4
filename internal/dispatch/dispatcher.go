// Package dispatch provides the sharded work queue behind the SDK's flush
// path. It guarantees FIFO order per key while allowing parallelism across
// shards, retries transient faults with exponential backoff, and fails fast
// on permanent ones.
//
// Contract: callers must not invoke Submit concurrently for the same key;
// FIFO ordering relies on that external serialisation.
package dispatch

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/corridorhq/corridor-go/internal/faults"
)

type queuedJob struct {
	ctx context.Context
	job Job
}

// Dispatcher executes Jobs on worker goroutines partitioned by a stable
// hash of the key (e.g. a query-context id). FIFO ordering is preserved
// within a shard; jobs with different keys may run in parallel.
type Dispatcher struct {
	cfg    Config
	queues []chan queuedJob // len == cfg.Shards

	done   chan struct{} // closed in Stop()
	closed uint32        // 0 running, 1 closed

	wg sync.WaitGroup
}

// NewDispatcher constructs the dispatcher and starts its shard workers.
func NewDispatcher(cfg Config) *Dispatcher {
	cfg = cfg.withDefaults()

	d := &Dispatcher{
		cfg:    cfg,
		queues: make([]chan queuedJob, cfg.Shards),
		done:   make(chan struct{}),
	}
	for i := 0; i < cfg.Shards; i++ {
		ch := make(chan queuedJob, cfg.QueueSize)
		d.queues[i] = ch
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
	return d
}

// Submit enqueues job on the shard derived from key.
//
//   - Returns nil on success.
//   - Returns ErrClosed if the dispatcher is stopped.
//   - Returns an *OverflowError (matching ErrOverflow) if the shard stays
//     full past EnqueueTimeout.
//   - Returns ctx.Err() if the caller's context is cancelled first.
func (d *Dispatcher) Submit(ctx context.Context, key string, job Job) error {
	// Stop() may have set the flag without closing d.done yet; reject both
	// ways so no work slips in during shutdown.
	if atomic.LoadUint32(&d.closed) == 1 {
		return ErrClosed
	}
	select {
	case <-d.done:
		return ErrClosed
	default:
	}

	qj := queuedJob{ctx: ctx, job: job}
	shard := d.shardFor(key)
	ch := d.queues[shard]

	timer := time.NewTimer(d.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case ch <- qj:
		submittedTotal.WithLabelValues(shardLabel(shard)).Inc()
		return nil

	case <-d.done: // Stop() may run while waiting for space
		return ErrClosed

	case <-ctx.Done():
		return ctx.Err()

	case <-timer.C:
		overflowTotal.WithLabelValues(shardLabel(shard)).Inc()
		return &OverflowError{Shard: shard, Length: len(ch), Capacity: cap(ch)}
	}
}

// Barrier enqueues a no-op job for key and waits until it runs, proving
// every previously submitted job for that key has completed.
func (d *Dispatcher) Barrier(ctx context.Context, key string) error {
	ran := make(chan struct{})
	j := JobFunc(func(context.Context) error {
		close(ran)
		return nil
	})
	if err := d.Submit(ctx, key, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ran:
		return nil
	}
}

// Stop signals every worker to drain its queue, waits for them to finish,
// and returns. Idempotent and safe for concurrent use.
func (d *Dispatcher) Stop() {
	if !atomic.CompareAndSwapUint32(&d.closed, 0, 1) {
		return
	}
	log.Debug().Int("shards", d.cfg.Shards).Msg("dispatch: stopping, draining shards")
	close(d.done)
	d.wg.Wait()
	log.Debug().Msg("dispatch: stopped, all queues drained")
}

// Close lets Dispatcher satisfy io.Closer.
func (d *Dispatcher) Close() error {
	d.Stop()
	return nil
}

// ------------------------- internals -------------------------

func (d *Dispatcher) runWorker(idx int, ch <-chan queuedJob) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Int("shard", idx).Interface("panic", r).Msg("dispatch: worker panic")
		}
	}()

	label := shardLabel(idx)

	for {
		select {
		case qj := <-ch:
			if qj.job == nil {
				continue
			}

			// Honour the caller context so a cancelled job doesn't stall
			// the shard.
			select {
			case <-qj.ctx.Done():
				d.reportError(qj.ctx.Err())
			default:
				d.runWithRetry(qj, label)
			}

			queueDepth.WithLabelValues(label).Set(float64(len(ch)))

		case <-d.done:
			// Drain remaining jobs in FIFO order, then exit.
			drained := 0
			for {
				select {
				case qj := <-ch:
					if qj.job != nil {
						_ = qj.job.Run(qj.ctx)
						drained++
					}
				default:
					if drained > 0 {
						log.Debug().Int("shard", idx).Int("jobs", drained).Msg("dispatch: drained on stop")
					}
					queueDepth.WithLabelValues(label).Set(0)
					return
				}
			}
		}
	}
}

// runWithRetry runs one job, retrying transient faults with exponential
// backoff and failing fast on permanent ones.
func (d *Dispatcher) runWithRetry(qj queuedJob, label string) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = d.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = d.cfg.MaxInterval
	exp.Reset()

	attempts := 0
	for {
		start := time.Now()
		err := qj.job.Run(qj.ctx)
		runSeconds.WithLabelValues(label).Observe(time.Since(start).Seconds())

		if err == nil {
			return
		}
		if faults.IsPermanent(err) {
			d.reportError(err)
			return
		}
		if attempts >= d.cfg.MaxAttempts-1 {
			d.reportError(err)
			return
		}

		attempts++
		select {
		case <-time.After(exp.NextBackOff()):
		case <-d.done:
			return
		case <-qj.ctx.Done():
			d.reportError(qj.ctx.Err())
			return
		}
	}
}

func (d *Dispatcher) reportError(err error) {
	if err == nil || d.cfg.OnError == nil {
		return
	}
	func() {
		// Guard against panics in the user-supplied handler.
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("dispatch: error handler panic")
			}
		}()
		d.cfg.OnError(err)
	}()
}

func (d *Dispatcher) shardFor(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % d.cfg.Shards
}
