package logging

import (
	"errors"
	"sync"
	"time"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	errs "github.com/Aeastr/LogOutLoud/internal/domain/error"
)

// SignpostID correlates the begin and end of one interval
type SignpostID uint64

type openSignpost struct {
	name    string
	tags    entity.Tags
	started time.Time
}

// signposts tracks the intervals of one logger. Ids are issued from a
// counter, so an id above the last issued one was never handed out and an
// id at or below it that is no longer open has already ended.
type signposts struct {
	mu     sync.Mutex
	issued uint64
	open   map[SignpostID]openSignpost
}

func newSignposts() *signposts {
	return &signposts{open: make(map[SignpostID]openSignpost)}
}

func (s *signposts) begin(name string, tags entity.Tags, at time.Time) SignpostID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	id := SignpostID(s.issued)
	s.open[id] = openSignpost{name: name, tags: tags, started: at}
	return id
}

func (s *signposts) end(name string, id SignpostID) (openSignpost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == 0 || uint64(id) > s.issued {
		return openSignpost{}, errs.ErrSignpostUnknown
	}
	sp, ok := s.open[id]
	if !ok {
		return openSignpost{}, errs.ErrSignpostEnded
	}
	if sp.name != name {
		return openSignpost{}, errs.ErrSignpostNameMismatch
	}
	delete(s.open, id)
	return sp, nil
}

func (s *signposts) openCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.open)
}

// BeginSignpost opens an interval named name and returns the id that
// must be passed to EndSignpost. The begin is forwarded to the transport's
// interval primitive when it has one and logged at debug severity.
func (l *Logger) BeginSignpost(name string, tags ...entity.Tag) SignpostID {
	ownTags := append(entity.Tags(nil), tags...)
	id := l.signposts.begin(name, ownTags, l.clock.Now())

	if l.tracer != nil {
		if err := l.tracer.BeginInterval(l.subsystem, l.key, name, uint64(id)); err != nil {
			l.diagnostics.Warn("Interval begin rejected by transport", map[string]any{
				"signpost":    name,
				"signpost_id": uint64(id),
				"error":       err.Error(),
			})
		}
	}

	if l.gate.Allows(entity.SeverityDebug) {
		md := entity.Object(entity.F("signpost_id", uint64(id)))
		l.emit(entity.SeverityDebug, "Begin "+name, signpostTags(ownTags), &md, entity.CallerLocation(1))
	}
	return id
}

// EndSignpost closes the interval opened under id. Ending an unknown id,
// ending twice, or ending under another name is an ordering fault: it is
// logged at warning severity and returned, and the interval stays as it was.
func (l *Logger) EndSignpost(name string, id SignpostID) error {
	sp, err := l.signposts.end(name, id)
	if err != nil {
		fault := errs.NewSignpostError(name, uint64(id), l.key, err)
		l.diagnostics.Warn("Signpost ordering fault", fieldsOf(fault))
		if l.gate.Allows(entity.SeverityWarning) {
			md := entity.FieldsOf(fieldsOf(fault))
			l.emit(entity.SeverityWarning, fault.Error(), entity.Tags{entity.TagSignpost}, &md, entity.CallerLocation(1))
		}
		return fault
	}

	if l.tracer != nil {
		if err := l.tracer.EndInterval(l.subsystem, l.key, name, uint64(id)); err != nil {
			l.diagnostics.Warn("Interval end rejected by transport", map[string]any{
				"signpost":    name,
				"signpost_id": uint64(id),
				"error":       err.Error(),
			})
		}
	}

	if l.gate.Allows(entity.SeverityDebug) {
		elapsed := l.clock.Since(sp.started)
		md := entity.Object(
			entity.F("signpost_id", uint64(id)),
			entity.F("duration_ms", float64(elapsed.Microseconds())/1000),
		)
		l.emit(entity.SeverityDebug, "End "+name, signpostTags(sp.tags), &md, entity.CallerLocation(1))
	}
	return nil
}

// OpenSignposts returns the number of intervals begun and not yet ended
func (l *Logger) OpenSignposts() int {
	return l.signposts.openCount()
}

func signpostTags(tags entity.Tags) entity.Tags {
	if tags.Contains(entity.TagSignpost) {
		return tags
	}
	return append(entity.Tags{entity.TagSignpost}, tags...)
}

// IsOrderingFault reports whether err came from a misordered EndSignpost
func IsOrderingFault(err error) bool {
	var sp *errs.SignpostError
	return errors.As(err, &sp)
}
