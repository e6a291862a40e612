package logging

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	errs "github.com/Aeastr/LogOutLoud/internal/domain/error"
)

// Sink observes every entry accepted by a logger. Returning an error (or
// panicking) removes the sink from future fan-out.
type Sink func(entry entity.LogEntry) error

// SinkToken identifies a registered sink
type SinkToken uint64

type registeredSink struct {
	token SinkToken
	sink  Sink
}

// SinkRegistry holds event sinks in registration order. Fan-out works on
// an immutable snapshot of the list, so sinks can be added or removed
// while entries are being delivered.
type SinkRegistry struct {
	mu       sync.Mutex
	sinks    atomic.Pointer[[]registeredSink]
	next     SinkToken
	timeout  time.Duration
	category string
	late     atomic.Pointer[func(error)]
}

// NewSinkRegistry creates an empty registry. When timeout is positive,
// fan-out stops waiting for a sink after timeout and moves on to the next
// one. The slow call keeps running; the sink is only removed if that call
// ends up failing.
func NewSinkRegistry(category string, timeout time.Duration) *SinkRegistry {
	r := &SinkRegistry{timeout: timeout, category: category}
	r.sinks.Store(&[]registeredSink{})
	return r
}

// OnLateFault sets the callback that receives faults of sink calls that
// outlived the timeout. It is called from the sink's own goroutine.
func (r *SinkRegistry) OnLateFault(report func(fault error)) {
	r.late.Store(&report)
}

// Add registers a sink and returns its token
func (r *SinkRegistry) Add(sink Sink) SinkToken {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	current := *r.sinks.Load()
	updated := make([]registeredSink, len(current), len(current)+1)
	copy(updated, current)
	updated = append(updated, registeredSink{token: r.next, sink: sink})
	r.sinks.Store(&updated)
	return r.next
}

// Remove unregisters the sink behind token. It returns false when the
// token is unknown or was already removed.
func (r *SinkRegistry) Remove(token SinkToken) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := *r.sinks.Load()
	for i, s := range current {
		if s.token != token {
			continue
		}
		updated := make([]registeredSink, 0, len(current)-1)
		updated = append(updated, current[:i]...)
		updated = append(updated, current[i+1:]...)
		r.sinks.Store(&updated)
		return true
	}
	return false
}

// Len returns the number of registered sinks
func (r *SinkRegistry) Len() int {
	return len(*r.sinks.Load())
}

// FanOut delivers entry to every registered sink in registration order.
// A sink that fails is removed and its fault returned; each fault is
// reported by exactly one caller even under concurrent delivery. A sink
// still running when the timeout expires is left registered.
func (r *SinkRegistry) FanOut(entry entity.LogEntry) []error {
	var faults []error
	for _, s := range *r.sinks.Load() {
		err := r.invoke(s, entry)
		if err == nil {
			continue
		}
		if fault := r.drop(s.token, err); fault != nil {
			faults = append(faults, fault)
		}
	}
	return faults
}

// drop removes the sink and returns its fault, or nil when another caller
// removed it first
func (r *SinkRegistry) drop(token SinkToken, err error) error {
	if !r.Remove(token) {
		return nil
	}
	return errs.NewSinkError(uint64(token), r.category, err)
}

func (r *SinkRegistry) invoke(s registeredSink, entry entity.LogEntry) error {
	if r.timeout <= 0 {
		return callSink(s.sink, entry)
	}

	done := make(chan error, 1)
	go func() {
		done <- callSink(s.sink, entry)
	}()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		go r.awaitLate(s.token, done)
		return nil
	}
}

func (r *SinkRegistry) awaitLate(token SinkToken, done <-chan error) {
	err := <-done
	if err == nil {
		return
	}
	fault := r.drop(token, err)
	if fault == nil {
		return
	}
	if report := r.late.Load(); report != nil {
		(*report)(fault)
	}
}

func callSink(sink Sink, entry entity.LogEntry) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errs.PanicError(recovered)
		}
	}()
	return sink(entry)
}
