package opt300x

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

const devAddr = byte(0b1000100)

// MockI2CBus is a mock implementation of I2CBus using testify/mock.
type MockI2CBus struct {
	mock.Mock
}

func (m *MockI2CBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	return args.Error(0)
}

func (m *MockI2CBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	if data, ok := args.Get(0).([]byte); ok && len(data) <= len(buffer) {
		copy(buffer, data)
	}
	return args.Error(1)
}

func (m *MockI2CBus) WriteReadToAddr(ctx context.Context, address byte, out, in []byte) error {
	args := m.Called(ctx, address, out, in)
	if data, ok := args.Get(0).([]byte); ok && len(data) <= len(in) {
		copy(in, data)
	}
	return args.Error(1)
}

func (m *MockI2CBus) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// expectWrite registers a single expected register write with exact
// big-endian payload bytes.
func expectWrite(bus *MockI2CBus, register byte, value uint16) *mock.Call {
	return bus.On("WriteToAddr", mock.Anything, devAddr,
		[]byte{register, byte(value >> 8), byte(value)}).Return(nil).Once()
}

// expectRead registers a single expected register read returning value
// as two big-endian bytes.
func expectRead(bus *MockI2CBus, register byte, value uint16) *mock.Call {
	return bus.On("WriteReadToAddr", mock.Anything, devAddr,
		[]byte{register}, mock.Anything).
		Return([]byte{byte(value >> 8), byte(value)}, nil).Once()
}

func newTestSensor(t *testing.T) (*OneShot, *MockI2CBus) {
	t.Helper()
	bus := new(MockI2CBus)
	return NewOpt3001(bus, DefaultAddress()), bus
}
