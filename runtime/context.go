package runtime

import (
	"context"

	"github.com/google/uuid"
)

// Executor performs a flushed batch of operations. Implementations must
// execute in slice order, populate each operation's Return placeholder, and
// report failure per batch. Retry policy belongs to the executor, not here.
type Executor interface {
	Execute(ctx context.Context, ops []*Operation) error
}

// QueryContext accumulates pending operations until an explicit flush.
// Queuing is in-memory bookkeeping only; it is intended for one logical call
// chain at a time and carries no locking of its own.
type QueryContext struct {
	id      string
	pending []*Operation
}

// NewQueryContext constructs an empty context with a fresh identity. The
// identity keys dispatch so operations from one context never interleave.
func NewQueryContext() *QueryContext {
	return &QueryContext{id: uuid.NewString()}
}

// ID returns the context's stable identity.
func (qc *QueryContext) ID() string { return qc.id }

// Add appends op to the pending queue. Operations execute in enqueue order
// within one flush.
func (qc *QueryContext) Add(op *Operation) {
	qc.pending = append(qc.pending, op)
}

// Len reports the number of pending operations.
func (qc *QueryContext) Len() int { return len(qc.pending) }

// Pending returns a copy of the queued operations in enqueue order.
func (qc *QueryContext) Pending() []*Operation {
	out := make([]*Operation, len(qc.pending))
	copy(out, qc.pending)
	return out
}

// Flush hands the queued operations to exec in FIFO order. The queue is
// cleared up front: once a flush begins its operations are committed, and a
// failed flush leaves their results unpopulated rather than re-queued.
func (qc *QueryContext) Flush(ctx context.Context, exec Executor) error {
	ops := qc.pending
	qc.pending = nil
	if len(ops) == 0 {
		return nil
	}
	return exec.Execute(ctx, ops)
}
