// Package faults classifies failures surfaced by the service so the
// dispatch layer can tell transient conditions apart from permanent ones.
package faults

import (
	"errors"
	"fmt"
)

// Class determines how the dispatch retry loop treats a failure.
type Class int

const (
	// Transient failures are retried with exponential backoff: 5xx
	// responses, timeouts, throttling, network errors.
	Transient Class = iota

	// Permanent failures fail fast without retry: 400, 401, 403, 404 and
	// other client errors.
	Permanent
)

func (c Class) String() string {
	switch c {
	case Transient:
		return "transient"
	case Permanent:
		return "permanent"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Fault carries the classification alongside the original error.
type Fault struct {
	Class  Class
	Status int    // HTTP status, 0 for network-level failures
	Body   string // response body kept for diagnostics
	Err    error
}

func (f *Fault) Error() string {
	if f.Status > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", f.Class, f.Status, f.Err)
	}
	return fmt.Sprintf("[%s] %v", f.Class, f.Err)
}

func (f *Fault) Unwrap() error { return f.Err }

// FromStatus classifies a non-success HTTP response for the named operation.
func FromStatus(status int, body, operation string) *Fault {
	return &Fault{
		Class:  classOf(status),
		Status: status,
		Body:   body,
		Err:    fmt.Errorf("%s: status %d", operation, status),
	}
}

// FromNetwork wraps a network-level failure. These are always transient:
// the condition may clear on the next attempt.
func FromNetwork(operation string, err error) *Fault {
	return &Fault{
		Class: Transient,
		Err:   fmt.Errorf("%s: %w", operation, err),
	}
}

// IsPermanent reports whether err (anywhere in its chain) is a fault that
// must not be retried.
func IsPermanent(err error) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Class == Permanent
	}
	return false
}

// classOf maps an HTTP status to a retry class. 408 and 429 are the two
// client errors worth retrying.
func classOf(status int) Class {
	switch {
	case status == 408, status == 429:
		return Transient
	case status >= 400 && status < 500:
		return Permanent
	default:
		return Transient
	}
}
