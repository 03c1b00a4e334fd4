package utils

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockLogger records calls for assertions in tests. It is safe for
// concurrent use.
type MockLogger struct {
	mock.Mock

	mu       sync.Mutex
	warns    int
	lastWarn string
}

func (m *MockLogger) Debug(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) Info(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) Warn(msg string, keysAndValues ...any) {
	m.mu.Lock()
	m.warns++
	m.lastWarn = msg
	m.mu.Unlock()
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) Error(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) SetLevel(level LogLevel) {
	m.Called(level)
}

// WarnCallCount returns how many times Warn was called.
func (m *MockLogger) WarnCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.warns
}

// LastWarnMessage returns the message of the latest Warn call.
func (m *MockLogger) LastWarnMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastWarn
}
