package hid

import "errors"

// MockDevice is a scripted in-memory Device for tests. Writes are
// recorded; reads are served from ReadQueue one entry per call.
type MockDevice struct {
	Writes       [][]byte
	FailWriteAt  int // 1-based index of the write that errors (0 = never)
	ShortWriteAt int // 1-based index of the write that comes up short

	ReadQueue  [][]byte
	FailReadAt int // 1-based index of the read that errors
	Reads      int

	Closed int
}

var (
	errMockWrite = errors.New("mock: write failure")
	errMockRead  = errors.New("mock: read failure")
)

func (m *MockDevice) Write(p []byte) (int, error) {
	m.Writes = append(m.Writes, append([]byte(nil), p...))
	switch len(m.Writes) {
	case m.FailWriteAt:
		return 0, errMockWrite
	case m.ShortWriteAt:
		return len(p) - 1, nil
	}
	return len(p), nil
}

func (m *MockDevice) Read(p []byte) (int, error) {
	m.Reads++
	if m.Reads == m.FailReadAt {
		return 0, errMockRead
	}
	if len(m.ReadQueue) == 0 {
		return 0, nil
	}
	b := m.ReadQueue[0]
	m.ReadQueue = m.ReadQueue[1:]
	return copy(p, b), nil
}

func (m *MockDevice) Close() error {
	m.Closed++
	return nil
}
