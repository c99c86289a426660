package habit

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"habitbox/internal/kv"
	"habitbox/internal/logging"
	"habitbox/internal/timeline"
)

// StorageKey is where the full habit list lives in the kv store.
const StorageKey = "habits"

// ErrPinned is returned by Remove on a pinned habit when the pin guard is on.
var ErrPinned = errors.New("habit: habit is pinned")

type Option func(*Store)

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the clock new ids are derived from.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.ids = NewIDSource(now)
	}
}

// WithPinGuard makes pinned habits refuse removal.
func WithPinGuard(on bool) Option {
	return func(s *Store) {
		s.pinGuard = on
	}
}

// Store holds the current habit list and writes the whole list back to its
// kv store after every change.
type Store struct {
	kv       kv.Store
	habits   List
	ids      *IDSource
	log      *log.Logger
	pinGuard bool
}

// Load reads the stored list. A missing or unusable value falls back to
// Defaults; only a failing backend is reported as an error.
func Load(store kv.Store, opts ...Option) (*Store, error) {
	s := &Store{kv: store, log: logging.Discard(), ids: NewIDSource(nil)}
	for _, opt := range opts {
		opt(s)
	}

	raw, ok, err := store.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("read habits: %w", err)
	}
	switch {
	case !ok:
		s.log.Debug("no stored habits, using defaults")
		s.habits = Defaults()
	default:
		l, err := Decode(raw)
		if err != nil {
			s.log.Warn("stored habits unusable, using defaults", "err", err)
			s.habits = Defaults()
		} else {
			s.habits = l
		}
	}
	s.ids.Observe(s.habits.MaxID())
	return s, nil
}

// Habits returns a copy of the current list.
func (s *Store) Habits() List {
	return s.habits.Clone()
}

func (s *Store) Add(name string, pinned bool) (bool, error) {
	next, changed := s.habits.Add(s.ids.Next(), name, pinned)
	return s.commit(next, changed)
}

// ToggleDone flips the habit's completion for today.
func (s *Store) ToggleDone(id int64, today time.Time) (bool, error) {
	next, changed := s.habits.ToggleDone(id, timeline.Format(today))
	return s.commit(next, changed)
}

func (s *Store) TogglePin(id int64) (bool, error) {
	next, changed := s.habits.TogglePin(id)
	return s.commit(next, changed)
}

func (s *Store) Remove(id int64) (bool, error) {
	if s.pinGuard {
		if h, ok := s.habits.Find(id); ok && h.NonRemovable {
			return false, fmt.Errorf("%w: %q", ErrPinned, h.Name)
		}
	}
	next, changed := s.habits.Remove(id)
	return s.commit(next, changed)
}

func (s *Store) commit(next List, changed bool) (bool, error) {
	if !changed {
		return false, nil
	}
	s.habits = next
	if err := s.save(); err != nil {
		return true, err
	}
	return true, nil
}

func (s *Store) save() error {
	data, err := Encode(s.habits)
	if err != nil {
		return fmt.Errorf("encode habits: %w", err)
	}
	if err := s.kv.Set(StorageKey, data); err != nil {
		return fmt.Errorf("write habits: %w", err)
	}
	s.log.Debug("saved habits", "count", len(s.habits))
	return nil
}
