package dispatch

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by Submit after Stop has been called.
var ErrClosed = errors.New("dispatch: dispatcher closed")

// ErrOverflow marks back-pressure: a shard queue stayed full past the
// enqueue timeout.
var ErrOverflow = errors.New("dispatch: queue full")

// OverflowError reports which shard rejected the job and how full it was.
type OverflowError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("dispatch: shard %d full (%d/%d)", e.Shard, e.Length, e.Capacity)
}

// Is lets errors.Is(err, ErrOverflow) match an OverflowError.
func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }
