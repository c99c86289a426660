package goal

import (
	"errors"
	"reflect"
	"testing"

	"habitbox/internal/kv"
)

func TestToggleFlipsOnlyIndex(t *testing.T) {
	s := New()
	before := s.Goals()
	if changed, err := s.Toggle(0); err != nil || !changed {
		t.Fatalf("toggle: changed=%v err=%v", changed, err)
	}
	after := s.Goals()
	if !after[0].Done {
		t.Fatalf("expected goal 0 done")
	}
	if after[0].Text != before[0].Text {
		t.Fatalf("text changed: %q", after[0].Text)
	}
	if !reflect.DeepEqual(after[1:], before[1:]) {
		t.Fatalf("other goals changed: %+v", after)
	}
	if before[0].Done {
		t.Fatalf("earlier snapshot mutated")
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{in: "Learn Go", want: "Learn Go", changed: true},
		{in: "  Run a marathon ", want: "Run a marathon", changed: true},
		{in: ""},
		{in: "   "},
	}
	for _, tt := range tests {
		l, changed := Defaults().Add(tt.in)
		if changed != tt.changed {
			t.Fatalf("Add(%q): expected changed=%v", tt.in, tt.changed)
		}
		if !changed {
			if len(l) != 3 {
				t.Fatalf("Add(%q): expected 3 goals, got %d", tt.in, len(l))
			}
			continue
		}
		if got := l[len(l)-1]; got.Text != tt.want || got.Done {
			t.Fatalf("Add(%q): unexpected goal %+v", tt.in, got)
		}
	}
}

func TestOutOfRangeIsNoop(t *testing.T) {
	s := New()
	for _, i := range []int{-1, 3, 100} {
		if changed, _ := s.Toggle(i); changed {
			t.Fatalf("Toggle(%d) changed list", i)
		}
		if changed, _ := s.Remove(i); changed {
			t.Fatalf("Remove(%d) changed list", i)
		}
	}
	if !reflect.DeepEqual(s.Goals(), Defaults()) {
		t.Fatalf("list changed: %+v", s.Goals())
	}
}

func TestRemove(t *testing.T) {
	l, changed := Defaults().Remove(1)
	if !changed || len(l) != 2 {
		t.Fatalf("unexpected remove result: %+v", l)
	}
	if l[0].Text != "Build a standout portfolio" || l[1].Text != "Stay consistent with fitness" {
		t.Fatalf("unexpected order: %+v", l)
	}
}

func TestRemaining(t *testing.T) {
	l, _ := Defaults().Toggle(2)
	if got := l.Remaining(); got != 2 {
		t.Fatalf("expected 2 remaining, got %d", got)
	}
}

func TestInMemoryStoreIsNotPersistent(t *testing.T) {
	if New().Persistent() {
		t.Fatalf("default store should not persist")
	}
}

func TestPersistentStore(t *testing.T) {
	mem := kv.NewMemory()
	s, err := LoadPersistent(mem, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !s.Persistent() {
		t.Fatalf("expected persistent store")
	}
	if _, err := s.Add("Learn Go"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Toggle(3); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	again, err := LoadPersistent(mem, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := again.Goals()
	if len(got) != 4 || got[3].Text != "Learn Go" || !got[3].Done {
		t.Fatalf("unexpected reloaded goals: %+v", got)
	}
}

func TestPersistentStoreFallsBackOnDrift(t *testing.T) {
	mem := kv.NewMemory()
	_ = mem.Set(StorageKey, `[{"text":"Only text"}]`)
	s, err := LoadPersistent(mem, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(s.Goals(), Defaults()) {
		t.Fatalf("expected defaults, got %+v", s.Goals())
	}
	if _, err := Decode(`[{"text":"Only text"}]`); !errors.Is(err, ErrInvalidList) {
		t.Fatalf("expected ErrInvalidList, got %v", err)
	}
}
