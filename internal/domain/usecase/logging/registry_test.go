package logging

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
)

func TestRegistry_Lookup(t *testing.T) {
	t.Run("should return the same instance for the same key", func(t *testing.T) {
		registry := NewRegistry(newTestDeps(t).options())

		a := registry.Lookup("network")
		b := registry.Lookup("network")
		c := registry.Lookup("db")

		assert.Same(t, a, b)
		assert.NotSame(t, a, c)
		assert.Equal(t, "network", a.Key())
		assert.Equal(t, []string{"db", "network"}, registry.Keys())
	})

	t.Run("should resolve the empty key to the default logger", func(t *testing.T) {
		registry := NewRegistry(newTestDeps(t).options())

		assert.Same(t, registry.Default(), registry.Lookup(""))
		assert.Equal(t, DefaultKey, registry.Default().Key())
	})

	t.Run("should create exactly one instance under concurrent first lookup", func(t *testing.T) {
		// Arrange
		registry := NewRegistry(newTestDeps(t).options())
		const callers = 64
		results := make([]*Logger, callers)
		start := make(chan struct{})

		// Act
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				results[i] = registry.Lookup("contended")
			}(i)
		}
		close(start)
		wg.Wait()

		// Assert
		for _, l := range results {
			require.NotNil(t, l)
			assert.Same(t, results[0], l)
		}
		assert.Equal(t, []string{"contended"}, registry.Keys())
	})

	t.Run("should give each logger its own gate and policy", func(t *testing.T) {
		registry := NewRegistry(newTestDeps(t).options())
		a := registry.Lookup("a")
		b := registry.Lookup("b")

		a.SetMinimumSeverity(entity.SeverityFault)
		a.UpdatePolicy(func(p *entity.FormatPolicy) { p.IncludeTags = false })

		assert.True(t, b.Enabled(entity.SeverityDebug))
		assert.True(t, b.Policy().IncludeTags)
		assert.False(t, a.Enabled(entity.SeverityError))
	})

	t.Run("should fill in missing collaborators", func(t *testing.T) {
		registry := NewRegistry(Options{})
		l := registry.Default()

		assert.NotPanics(t, func() { l.Fault("nothing attached", nil) })
		assert.Equal(t, "app", registry.Subsystem())
		assert.Equal(t, entity.AllSeverities(), l.Severities())
		assert.NoError(t, registry.Flush())
	})

	t.Run("should render with the default policy when none is given", func(t *testing.T) {
		// Arrange
		l := NewRegistry(Options{}).Default()
		rec := &recordingSink{}
		l.AddSink(rec.sink)
		md := entity.Object(entity.F("host", "api"))

		// Act
		l.Info("hello", &md, entity.TagNetwork)

		// Assert
		require.Len(t, rec.entries, 1)
		assert.Equal(t, `[Network] hello | {"host":"api"}`, rec.entries[0].Rendered)
		assert.Equal(t, entity.DefaultFormatPolicy(), l.Policy())
	})

	t.Run("should keep an explicit policy", func(t *testing.T) {
		opts := Options{Policy: entity.FormatPolicy{IncludeMetadata: true}}

		l := NewRegistry(opts).Default()

		assert.False(t, l.Policy().IncludeTags)
		assert.True(t, l.Policy().IncludeMetadata)
	})

	t.Run("should satisfy the emitter provider", func(t *testing.T) {
		registry := NewRegistry(newTestDeps(t).options())

		emitter := registry.Emitter("http")

		assert.Same(t, registry.Lookup("http"), emitter)
	})
}
