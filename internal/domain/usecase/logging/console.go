package logging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	errs "github.com/Aeastr/LogOutLoud/internal/domain/error"
	"github.com/Aeastr/LogOutLoud/internal/domain/port/usecase"
)

// DefaultConsoleCapacity is the buffer size used by the console viewer
const DefaultConsoleCapacity = 1000

// ConsoleStore keeps the most recent entries of one or more loggers for an
// interactive viewer. The buffer is a fixed-size ring: appending to a full
// store evicts the oldest entry in the same critical section, so readers
// never see more than Capacity entries.
//
// Pausing freezes what readers see: the buffer contents at pause time are
// kept as a snapshot, appends keep filling the live buffer, and resuming
// makes the live buffer visible again.
type ConsoleStore struct {
	mu       sync.RWMutex
	ring     []entity.LogEntry
	head     int
	size     int
	paused   bool
	snapshot []entity.LogEntry

	subsMu  sync.Mutex
	subs    map[uint64]chan usecase.ConsoleEvent
	nextSub uint64
}

var _ usecase.ConsoleViewer = (*ConsoleStore)(nil)

// NewConsoleStore creates a store holding at most capacity entries
func NewConsoleStore(capacity int) (*ConsoleStore, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidCapacity, capacity)
	}
	return &ConsoleStore{
		ring: make([]entity.LogEntry, capacity),
		subs: make(map[uint64]chan usecase.ConsoleEvent),
	}, nil
}

// Capacity returns the maximum number of buffered entries
func (s *ConsoleStore) Capacity() int {
	return len(s.ring)
}

// Append adds entry to the live buffer, evicting the oldest entry when full
func (s *ConsoleStore) Append(entry entity.LogEntry) {
	s.mu.Lock()
	if s.size == len(s.ring) {
		s.ring[s.head] = entry
		s.head = (s.head + 1) % len(s.ring)
	} else {
		s.ring[(s.head+s.size)%len(s.ring)] = entry
		s.size++
	}
	s.mu.Unlock()

	s.notify(usecase.ConsoleEvent{Kind: usecase.ConsoleAppended, Entry: &entry})
}

// Sink returns an event sink that appends to the store
func (s *ConsoleStore) Sink() Sink {
	return func(entry entity.LogEntry) error {
		s.Append(entry)
		return nil
	}
}

// Attach registers the store as an event sink of logger
func (s *ConsoleStore) Attach(logger *Logger) SinkToken {
	return logger.AddSink(s.Sink())
}

// Clear empties the live buffer and, when paused, the frozen view too
func (s *ConsoleStore) Clear() {
	s.mu.Lock()
	clear(s.ring)
	s.head, s.size = 0, 0
	if s.paused {
		s.snapshot = nil
	}
	s.mu.Unlock()

	s.notify(usecase.ConsoleEvent{Kind: usecase.ConsoleCleared})
}

// Pause freezes the reader-visible view at the current buffer contents
func (s *ConsoleStore) Pause() {
	s.mu.Lock()
	if s.paused {
		s.mu.Unlock()
		return
	}
	s.paused = true
	s.snapshot = s.liveLocked()
	s.mu.Unlock()

	s.notify(usecase.ConsoleEvent{Kind: usecase.ConsolePaused})
}

// Resume makes the live buffer visible again
func (s *ConsoleStore) Resume() {
	s.mu.Lock()
	if !s.paused {
		s.mu.Unlock()
		return
	}
	s.paused = false
	s.snapshot = nil
	s.mu.Unlock()

	s.notify(usecase.ConsoleEvent{Kind: usecase.ConsoleResumed})
}

// Paused reports whether the view is frozen
func (s *ConsoleStore) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused
}

// Len returns the number of reader-visible entries
func (s *ConsoleStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.paused {
		return len(s.snapshot)
	}
	return s.size
}

// Entries returns a copy of the reader-visible entries, oldest first
func (s *ConsoleStore) Entries() []entity.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.paused {
		out := make([]entity.LogEntry, len(s.snapshot))
		copy(out, s.snapshot)
		return out
	}
	return s.liveLocked()
}

func (s *ConsoleStore) liveLocked() []entity.LogEntry {
	out := make([]entity.LogEntry, s.size)
	for i := 0; i < s.size; i++ {
		out[i] = s.ring[(s.head+i)%len(s.ring)]
	}
	return out
}

// Filter returns the visible entries whose severity is in levels and whose
// rendered text contains search, ignoring case. An empty search matches
// every entry; an empty levels list matches none.
func (s *ConsoleStore) Filter(levels []entity.Severity, search string) []entity.LogEntry {
	return FilterEntries(s.Entries(), levels, search)
}

// FilterEntries applies the console filter to any entry list, keeping order
func FilterEntries(entries []entity.LogEntry, levels []entity.Severity, search string) []entity.LogEntry {
	mask := severityMask(levels)
	needle := strings.ToLower(search)

	out := make([]entity.LogEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Severity.Valid() || mask&(1<<e.Severity) == 0 {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Text()), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ExportText joins the rendered lines of selection with newlines, in the
// order the entries appear in the visible buffer. Selected entries that are
// no longer visible are skipped. A nil selection exports every visible entry.
func (s *ConsoleStore) ExportText(selection []entity.LogEntry) string {
	visible := s.Entries()
	if selection == nil {
		return joinLines(visible)
	}

	wanted := make(map[uuid.UUID]struct{}, len(selection))
	for _, e := range selection {
		wanted[e.ID] = struct{}{}
	}
	picked := make([]entity.LogEntry, 0, len(selection))
	for _, e := range visible {
		if _, ok := wanted[e.ID]; ok {
			picked = append(picked, e)
		}
	}
	return joinLines(picked)
}

func joinLines(entries []entity.LogEntry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Text()
	}
	return strings.Join(lines, "\n")
}

// Subscribe registers for change notifications. Events that do not fit in
// the channel buffer are dropped rather than blocking writers. Call the
// returned func to unsubscribe; it closes the channel.
func (s *ConsoleStore) Subscribe(buffer int) (<-chan usecase.ConsoleEvent, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan usecase.ConsoleEvent, buffer)

	s.subsMu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs[id] = ch
	s.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			close(ch)
			s.subsMu.Unlock()
		})
	}
}

func (s *ConsoleStore) notify(event usecase.ConsoleEvent) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
