package bcex

import (
	"sync"
	"sync/atomic"
)

// mockConnecter is a transport stand-in for tests: it records every frame
// handed to Send instead of touching the network.
type mockConnecter struct {
	mx      sync.Mutex
	sent    [][]byte
	sendErr error
	closed  uint32
}

func newMockConnecter() *mockConnecter {
	return &mockConnecter{}
}

func (m *mockConnecter) Send(data []byte) error {
	m.mx.Lock()
	defer m.mx.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	frame := make([]byte, len(data))
	copy(frame, data)
	m.sent = append(m.sent, frame)
	return nil
}

func (m *mockConnecter) Close() error {
	atomic.StoreUint32(&m.closed, 1)
	return nil
}

func (m *mockConnecter) isClosed() bool {
	return atomic.LoadUint32(&m.closed) == 1
}

func (m *mockConnecter) sentFrames() [][]byte {
	m.mx.Lock()
	defer m.mx.Unlock()
	frames := make([][]byte, len(m.sent))
	copy(frames, m.sent)
	return frames
}

func (m *mockConnecter) failWith(err error) {
	m.mx.Lock()
	m.sendErr = err
	m.mx.Unlock()
}
