package goal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"habitbox/internal/kv"
	"habitbox/internal/logging"
)

// StorageKey is used only when goals are persisted.
const StorageKey = "goals"

const schemaURL = "https://habitbox.local/schema/goals.json"

const listSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["text", "done"],
		"properties": {
			"text": {"type": "string", "pattern": "\\S"},
			"done": {"type": "boolean"}
		}
	}
}`

var ErrInvalidList = errors.New("goal: invalid stored list")

var schema = func() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, strings.NewReader(listSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(schemaURL)
}()

// Store holds the goal list. Without a kv store it lives in memory only and
// starts from Defaults on every run.
type Store struct {
	kv    kv.Store
	goals List
	log   *log.Logger
}

// New returns an in-memory store seeded with Defaults.
func New() *Store {
	return &Store{goals: Defaults(), log: logging.Discard()}
}

// LoadPersistent reads goals from store, falling back to Defaults when the
// key is missing or the value does not validate. Later changes are written
// back under StorageKey.
func LoadPersistent(store kv.Store, logger *log.Logger) (*Store, error) {
	s := New()
	s.kv = store
	if logger != nil {
		s.log = logger
	}
	raw, ok, err := store.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("read goals: %w", err)
	}
	if !ok {
		return s, nil
	}
	l, err := Decode(raw)
	if err != nil {
		s.log.Warn("stored goals unusable, using defaults", "err", err)
		return s, nil
	}
	s.goals = l
	return s, nil
}

// Persistent reports whether changes are written to a kv store.
func (s *Store) Persistent() bool {
	return s.kv != nil
}

func (s *Store) Goals() List {
	return append(List(nil), s.goals...)
}

func (s *Store) Add(text string) (bool, error) {
	next, changed := s.goals.Add(text)
	return s.commit(next, changed)
}

func (s *Store) Toggle(i int) (bool, error) {
	next, changed := s.goals.Toggle(i)
	return s.commit(next, changed)
}

func (s *Store) Remove(i int) (bool, error) {
	next, changed := s.goals.Remove(i)
	return s.commit(next, changed)
}

func (s *Store) commit(next List, changed bool) (bool, error) {
	if !changed {
		return false, nil
	}
	s.goals = next
	if s.kv == nil {
		return true, nil
	}
	data, err := json.Marshal(s.goals)
	if err != nil {
		return true, fmt.Errorf("encode goals: %w", err)
	}
	if err := s.kv.Set(StorageKey, string(data)); err != nil {
		return true, fmt.Errorf("write goals: %w", err)
	}
	s.log.Debug("saved goals", "count", len(s.goals))
	return true, nil
}

func Decode(raw string) (List, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidList, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidList, err)
	}
	var l List
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidList, err)
	}
	for i := range l {
		l[i].Text = strings.TrimSpace(l[i].Text)
	}
	return l, nil
}
