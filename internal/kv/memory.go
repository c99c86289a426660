package kv

// Memory is a map-backed Store. It is what tests and --ephemeral runs use.
type Memory struct {
	values map[string]string
	writes int
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	m.writes++
	return nil
}

// Writes counts Set calls.
func (m *Memory) Writes() int {
	return m.writes
}

func (m *Memory) Close() error {
	return nil
}
