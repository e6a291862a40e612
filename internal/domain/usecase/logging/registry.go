package logging

import (
	"sort"
	"sync"
	"time"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	coreport "github.com/Aeastr/LogOutLoud/internal/domain/port/core"
	"github.com/Aeastr/LogOutLoud/internal/domain/port/usecase"
)

// DefaultKey is the registry key of the default logger
const DefaultKey = "default"

// DefaultSinkTimeout bounds how long fan-out waits for one sink before
// moving on to the next
const DefaultSinkTimeout = time.Second

// Options configures a Registry and every logger it creates
type Options struct {
	// Subsystem identifies the process or library in the native transport
	Subsystem string
	// Transport receives every rendered line
	Transport coreport.NativeTransport
	// Clock stamps entries and times signposts
	Clock coreport.TimeProvider
	// Diagnostics receives the facade's own faults
	Diagnostics coreport.DiagnosticLogger
	// Severities is the initial allow-list of new loggers
	Severities []entity.Severity
	// Policy is the initial formatting policy of new loggers. The zero
	// policy selects entity.DefaultFormatPolicy; to render bare messages
	// call Logger.SetPolicy(entity.FormatPolicy{}).
	Policy entity.FormatPolicy
	// SinkTimeout bounds how long fan-out waits on each sink; zero waits
	// for every sink to return
	SinkTimeout time.Duration
}

// DefaultOptions allows every severity and renders with the default policy
func DefaultOptions() Options {
	return Options{
		Subsystem:   "app",
		Severities:  entity.AllSeverities(),
		Policy:      entity.DefaultFormatPolicy(),
		SinkTimeout: DefaultSinkTimeout,
	}
}

// Registry owns the named loggers of a process. Loggers are created on
// first lookup and kept for the registry's lifetime. Create one registry
// at startup and pass it to whatever needs a logger.
type Registry struct {
	opts Options

	mu      sync.Mutex
	loggers sync.Map // map[string]*Logger
}

// NewRegistry creates a registry. Missing collaborators fall back to a
// transport that discards lines, silent diagnostics and the system clock.
// A zero policy falls back to entity.DefaultFormatPolicy.
func NewRegistry(opts Options) *Registry {
	if opts.Transport == nil {
		opts.Transport = discardTransport{}
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = silentDiagnostics{}
	}
	if opts.Subsystem == "" {
		opts.Subsystem = DefaultOptions().Subsystem
	}
	if opts.Policy.IsZero() {
		opts.Policy = entity.DefaultFormatPolicy()
	}
	if opts.Severities == nil {
		opts.Severities = entity.AllSeverities()
	}
	opts.Severities = append([]entity.Severity(nil), opts.Severities...)
	return &Registry{opts: opts}
}

// Lookup returns the logger for key, creating it on first use. Concurrent
// first lookups of the same key all receive the same instance. An empty
// key resolves to the default logger.
func (r *Registry) Lookup(key string) *Logger {
	if key == "" {
		key = DefaultKey
	}
	if existing, ok := r.loggers.Load(key); ok {
		return existing.(*Logger)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.loggers.Load(key); ok {
		return existing.(*Logger)
	}
	created := newLogger(key, r.opts)
	r.loggers.Store(key, created)

	r.opts.Diagnostics.Debug("Logger created", map[string]any{
		"category":  key,
		"subsystem": r.opts.Subsystem,
	})
	return created
}

// Default returns the default logger
func (r *Registry) Default() *Logger {
	return r.Lookup(DefaultKey)
}

// Emitter implements usecase.EmitterProvider
func (r *Registry) Emitter(key string) usecase.Emitter {
	return r.Lookup(key)
}

// Keys returns the keys of every logger created so far, sorted
func (r *Registry) Keys() []string {
	var keys []string
	r.loggers.Range(func(key, _ any) bool {
		keys = append(keys, key.(string))
		return true
	})
	sort.Strings(keys)
	return keys
}

// Subsystem returns the subsystem shared by every logger
func (r *Registry) Subsystem() string {
	return r.opts.Subsystem
}

// Flush flushes the shared transport and the diagnostics channel
func (r *Registry) Flush() error {
	if err := r.opts.Transport.Flush(); err != nil {
		return err
	}
	return r.opts.Diagnostics.Flush()
}
