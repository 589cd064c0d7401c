package store

// Memory is an in-memory KV used by tests and as a degraded fallback when
// the on-disk database cannot be opened. Values do not survive the process.
type Memory struct {
	data map[string]string

	// FailWrites makes Set/Delete return FailErr, for exercising the
	// best-effort write contract.
	FailWrites bool
	// FailReads makes Get return FailErr.
	FailReads bool
	// FailErr is the error returned when a failure mode is enabled.
	FailErr error
}

var _ KV = (*Memory)(nil)

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get implements KV.
func (m *Memory) Get(key string) (string, bool, error) {
	if m.FailReads {
		return "", false, m.FailErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KV.
func (m *Memory) Set(key, value string) error {
	if m.FailWrites {
		return m.FailErr
	}
	m.data[key] = value
	return nil
}

// Delete implements KV.
func (m *Memory) Delete(key string) error {
	if m.FailWrites {
		return m.FailErr
	}
	delete(m.data, key)
	return nil
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	return len(m.data)
}
