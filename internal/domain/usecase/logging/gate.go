package logging

import (
	"sync/atomic"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
)

// SeverityGate is the per-logger allow-list of severities. The set is held
// as a bitmask in a single atomic word, so readers never see a partially
// applied update.
type SeverityGate struct {
	allowed atomic.Uint32
}

// NewSeverityGate creates a gate that lets the given severities through
func NewSeverityGate(allowed ...entity.Severity) *SeverityGate {
	g := &SeverityGate{}
	g.Set(allowed...)
	return g
}

// Allows reports whether severity passes the gate
func (g *SeverityGate) Allows(severity entity.Severity) bool {
	return severity.Valid() && g.allowed.Load()&(1<<severity) != 0
}

// Set replaces the allow-list. Invalid severities are ignored.
func (g *SeverityGate) Set(allowed ...entity.Severity) {
	g.allowed.Store(severityMask(allowed))
}

// SetMinimum allows min and every more severe level
func (g *SeverityGate) SetMinimum(min entity.Severity) {
	g.Set(entity.SeveritiesAtOrAbove(min)...)
}

// Allowed returns the allow-list in ascending order
func (g *SeverityGate) Allowed() []entity.Severity {
	mask := g.allowed.Load()
	var out []entity.Severity
	for _, s := range entity.AllSeverities() {
		if mask&(1<<s) != 0 {
			out = append(out, s)
		}
	}
	return out
}

func severityMask(severities []entity.Severity) uint32 {
	var mask uint32
	for _, s := range severities {
		if s.Valid() {
			mask |= 1 << s
		}
	}
	return mask
}
