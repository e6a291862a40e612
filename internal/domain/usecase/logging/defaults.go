package logging

import (
	"time"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
)

// Fallbacks used when a registry is built without a collaborator.

type discardTransport struct{}

func (discardTransport) Emit(string, string, entity.Severity, string) error { return nil }
func (discardTransport) Flush() error                                       { return nil }

type silentDiagnostics struct{}

func (silentDiagnostics) SetLevel(entity.Severity)     {}
func (silentDiagnostics) GetLevel() entity.Severity    { return entity.SeverityFault }
func (silentDiagnostics) Debug(string, map[string]any) {}
func (silentDiagnostics) Info(string, map[string]any)  {}
func (silentDiagnostics) Warn(string, map[string]any)  {}
func (silentDiagnostics) Error(string, map[string]any) {}
func (silentDiagnostics) Flush() error                 { return nil }

type systemClock struct{}

func (systemClock) Now() time.Time                  { return time.Now() }
func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }
