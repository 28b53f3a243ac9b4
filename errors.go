package corridor

import (
	"errors"

	"github.com/corridorhq/corridor-go/internal/dispatch"
	"github.com/corridorhq/corridor-go/internal/faults"
)

// ErrBackPressure is returned when the client's internal shard queue is full.
var ErrBackPressure = dispatch.ErrOverflow

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// ErrClosed is returned when operations are flushed after Close.
var ErrClosed = dispatch.ErrClosed

// IsPermanent reports whether err is a fault retrying cannot fix, e.g. a
// 404 or a validation rejection.
func IsPermanent(err error) bool { return faults.IsPermanent(err) }
