package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	coremocks "github.com/Aeastr/LogOutLoud/mocks/port/core"
)

var fixedTime = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

type testDeps struct {
	transport   *coremocks.MockNativeTransport
	diagnostics *coremocks.MockDiagnosticLogger
	clock       *coremocks.MockTimeProvider
}

func newTestDeps(t *testing.T) testDeps {
	deps := testDeps{
		transport:   coremocks.NewMockNativeTransport(t),
		diagnostics: coremocks.NewMockDiagnosticLogger(t),
		clock:       coremocks.NewMockTimeProvider(t),
	}
	deps.diagnostics.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	deps.clock.EXPECT().Now().Return(fixedTime).Maybe()
	return deps
}

func (d testDeps) options() Options {
	opts := DefaultOptions()
	opts.Subsystem = "com.example.app"
	opts.Transport = d.transport
	opts.Diagnostics = d.diagnostics
	opts.Clock = d.clock
	opts.SinkTimeout = 0
	return opts
}

func (d testDeps) logger(key string) *Logger {
	return NewRegistry(d.options()).Lookup(key)
}

// recordingSink collects entries; safe for use from one emitting goroutine
type recordingSink struct {
	entries []entity.LogEntry
}

func (r *recordingSink) sink(entry entity.LogEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func ptr(v entity.Value) *entity.Value {
	return &v
}
