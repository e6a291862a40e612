package logging

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	errs "github.com/Aeastr/LogOutLoud/internal/domain/error"
	coreport "github.com/Aeastr/LogOutLoud/internal/domain/port/core"
	"github.com/Aeastr/LogOutLoud/internal/domain/port/usecase"
)

// Logger is one named emission endpoint. It owns its severity gate,
// formatting policy and sink registry; the transport, clock and
// diagnostics channel are shared with the other loggers of its registry.
type Logger struct {
	key       string
	subsystem string

	gate      *SeverityGate
	policy    atomic.Pointer[entity.FormatPolicy]
	sinks     *SinkRegistry
	signposts *signposts

	transport   coreport.NativeTransport
	tracer      coreport.IntervalTracer
	clock       coreport.TimeProvider
	diagnostics coreport.DiagnosticLogger
}

var _ usecase.Emitter = (*Logger)(nil)

func newLogger(key string, opts Options) *Logger {
	l := &Logger{
		key:         key,
		subsystem:   opts.Subsystem,
		gate:        NewSeverityGate(opts.Severities...),
		sinks:       NewSinkRegistry(key, opts.SinkTimeout),
		signposts:   newSignposts(),
		transport:   opts.Transport,
		clock:       opts.Clock,
		diagnostics: opts.Diagnostics,
	}
	l.sinks.OnLateFault(func(fault error) {
		l.diagnostics.Error("Event sink removed after fault", fieldsOf(fault))
	})
	if tracer, ok := opts.Transport.(coreport.IntervalTracer); ok {
		l.tracer = tracer
	}
	policy := opts.Policy
	l.policy.Store(&policy)
	return l
}

// Key returns the registry key, which is also the category of every entry
func (l *Logger) Key() string {
	return l.key
}

// Subsystem returns the subsystem identifier shared by the registry
func (l *Logger) Subsystem() string {
	return l.subsystem
}

// Enabled reports whether severity passes the gate. Use it to skip
// building expensive metadata.
func (l *Logger) Enabled(severity entity.Severity) bool {
	return l.gate.Allows(severity)
}

// SetSeverities replaces the set of enabled severities
func (l *Logger) SetSeverities(severities ...entity.Severity) {
	l.gate.Set(severities...)
}

// SetMinimumSeverity enables min and every more severe level
func (l *Logger) SetMinimumSeverity(min entity.Severity) {
	l.gate.SetMinimum(min)
}

// Severities returns the enabled severities in ascending order
func (l *Logger) Severities() []entity.Severity {
	return l.gate.Allowed()
}

// Policy returns the current formatting policy
func (l *Logger) Policy() entity.FormatPolicy {
	return *l.policy.Load()
}

// SetPolicy swaps in a new formatting policy. Concurrent emits render
// with either the old or the new policy, never a mix.
func (l *Logger) SetPolicy(policy entity.FormatPolicy) {
	l.policy.Store(&policy)
}

// UpdatePolicy applies change to a copy of the current policy and swaps it
// in, retrying if another update landed first
func (l *Logger) UpdatePolicy(change func(policy *entity.FormatPolicy)) {
	for {
		current := l.policy.Load()
		updated := *current
		change(&updated)
		if l.policy.CompareAndSwap(current, &updated) {
			return
		}
	}
}

// AddSink registers an event sink and returns its token
func (l *Logger) AddSink(sink Sink) SinkToken {
	return l.sinks.Add(sink)
}

// RemoveSink unregisters a sink; it reports whether the token was registered
func (l *Logger) RemoveSink(token SinkToken) bool {
	return l.sinks.Remove(token)
}

// SinkCount returns the number of registered sinks
func (l *Logger) SinkCount() int {
	return l.sinks.Len()
}

// Log emits one entry. When severity is disabled nothing is built,
// rendered or delivered.
func (l *Logger) Log(severity entity.Severity, message string, tags entity.Tags, metadata *entity.Value) {
	l.logAt(1, severity, message, tags, metadata)
}

// Debug logs at debug severity
func (l *Logger) Debug(message string, metadata *entity.Value, tags ...entity.Tag) {
	l.logAt(1, entity.SeverityDebug, message, tags, metadata)
}

// Info logs at info severity
func (l *Logger) Info(message string, metadata *entity.Value, tags ...entity.Tag) {
	l.logAt(1, entity.SeverityInfo, message, tags, metadata)
}

// Notice logs at notice severity
func (l *Logger) Notice(message string, metadata *entity.Value, tags ...entity.Tag) {
	l.logAt(1, entity.SeverityNotice, message, tags, metadata)
}

// Warning logs at warning severity
func (l *Logger) Warning(message string, metadata *entity.Value, tags ...entity.Tag) {
	l.logAt(1, entity.SeverityWarning, message, tags, metadata)
}

// Error logs at error severity
func (l *Logger) Error(message string, metadata *entity.Value, tags ...entity.Tag) {
	l.logAt(1, entity.SeverityError, message, tags, metadata)
}

// Fault logs at fault severity
func (l *Logger) Fault(message string, metadata *entity.Value, tags ...entity.Tag) {
	l.logAt(1, entity.SeverityFault, message, tags, metadata)
}

// logAt emits with the call site depth frames above logAt
func (l *Logger) logAt(depth int, severity entity.Severity, message string, tags entity.Tags, metadata *entity.Value) {
	if !l.gate.Allows(severity) {
		return
	}
	l.emit(severity, message, tags, metadata, entity.CallerLocation(depth+1))
}

// LogAsync runs produce on its own goroutine and emits the message it
// returns. produce is never called when severity is disabled. No lock is
// held while produce runs; the gate is consulted again once it returns.
// The returned channel is closed when the call is complete.
func (l *Logger) LogAsync(
	ctx context.Context,
	severity entity.Severity,
	produce usecase.MessageProducer,
	tags entity.Tags,
	metadata *entity.Value,
) <-chan struct{} {
	done := make(chan struct{})
	if produce == nil || !l.gate.Allows(severity) {
		close(done)
		return done
	}

	location := entity.CallerLocation(1)
	ownTags := append(entity.Tags(nil), tags...)

	go func() {
		defer close(done)

		message, err := runProducer(ctx, produce)
		if err != nil {
			l.diagnostics.Warn("Deferred log message dropped", map[string]any{
				"category": l.key,
				"severity": severity.String(),
				"error":    err.Error(),
			})
			return
		}
		if !l.gate.Allows(severity) {
			return
		}
		l.emit(severity, message, ownTags, metadata, location)
	}()
	return done
}

func runProducer(ctx context.Context, produce usecase.MessageProducer) (message string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.Join(errs.ErrProducerFailed, errs.PanicError(recovered))
		}
	}()
	message, err = produce(ctx)
	if err != nil {
		return "", errors.Join(errs.ErrProducerFailed, err)
	}
	return message, nil
}

// emit builds, renders and delivers an entry that already passed the gate
func (l *Logger) emit(
	severity entity.Severity,
	message string,
	tags entity.Tags,
	metadata *entity.Value,
	location entity.SourceLocation,
) {
	policy := l.policy.Load()

	entry := entity.NewLogEntry(severity, message, tags, metadata, l.clock.Now())
	entry.Subsystem = l.subsystem
	entry.Category = l.key
	entry.Location = location
	entry.Rendered = entity.Render(entry, *policy)

	l.forward(entry)

	for _, fault := range l.sinks.FanOut(entry) {
		l.diagnostics.Error("Event sink removed after fault", fieldsOf(fault))
	}
}

// forward hands the rendered line to the native transport. Transport
// failures are reported on the diagnostics channel and never reach the
// caller.
func (l *Logger) forward(entry entity.LogEntry) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err := errs.NewTransportError(l.subsystem, l.key, entry.Severity.String(), errs.PanicError(recovered))
			l.diagnostics.Error("Native transport panicked", fieldsOf(err))
		}
	}()

	if err := l.transport.Emit(l.subsystem, l.key, entry.Severity, entry.Rendered); err != nil {
		err = errs.NewTransportError(l.subsystem, l.key, entry.Severity.String(), err)
		l.diagnostics.Warn("Native transport rejected log line", fieldsOf(err))
	}
}

// Flush flushes the shared native transport
func (l *Logger) Flush() error {
	return l.transport.Flush()
}

func fieldsOf(err error) map[string]any {
	var withFields interface{ LogFields() map[string]any }
	if errors.As(err, &withFields) {
		return withFields.LogFields()
	}
	return map[string]any{"error": err.Error()}
}
