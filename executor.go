package corridor

import (
	"context"

	"github.com/google/uuid"

	"github.com/corridorhq/corridor-go/internal/dispatch"
	"github.com/corridorhq/corridor-go/runtime"
)

// jobQueue abstracts the dispatcher so tests can substitute a synchronous
// one.
type jobQueue interface {
	Submit(ctx context.Context, key string, job dispatch.Job) error
	Barrier(ctx context.Context, key string) error
}

// requester abstracts the HTTP transport behind one-operation calls.
type requester interface {
	Do(ctx context.Context, op *runtime.Operation) error
}

// dispatchExecutor runs a flushed batch through the sharded dispatcher. Every
// operation of one flush shares a key, so the batch lands on a single shard
// and executes in FIFO order; flushes from different contexts may run in
// parallel.
type dispatchExecutor struct {
	queue jobQueue
	svc   requester
}

func newDispatchExecutor(queue jobQueue, svc requester) *dispatchExecutor {
	return &dispatchExecutor{queue: queue, svc: svc}
}

// Execute submits one job per operation, waits for the batch via a barrier,
// and returns the first failure in operation order. A Submit failure returns
// immediately; jobs already submitted keep running and may still populate
// their return placeholders after Execute has returned.
func (e *dispatchExecutor) Execute(ctx context.Context, ops []*runtime.Operation) error {
	key := uuid.NewString()
	errs := make([]error, len(ops))

	for i, op := range ops {
		i, op := i, op
		job := dispatch.JobFunc(func(jctx context.Context) error {
			err := e.svc.Do(jctx, op)
			errs[i] = err
			return err
		})
		if err := e.queue.Submit(ctx, key, job); err != nil {
			return err
		}
	}

	if err := e.queue.Barrier(ctx, key); err != nil {
		return err
	}

	// Counters record final outcomes, once per operation; the dispatcher may
	// have run a job several times before errs settled.
	var first error
	for i, op := range ops {
		kind := op.Kind.String()
		operationsTotal.WithLabelValues(kind).Inc()
		if errs[i] != nil {
			operationFailures.WithLabelValues(kind).Inc()
			if first == nil {
				first = errs[i]
			}
		}
	}
	return first
}
