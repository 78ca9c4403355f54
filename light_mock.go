package opt300x

import "context"

// LuxReader is the read surface of a continuously measuring light
// sensor, satisfied by *Continuous.
type LuxReader interface {
	ReadLux(ctx context.Context) (float32, error)
}

var _ LuxReader = &Continuous{}

// LuxBehaviorFunc produces the lux value or error a mock light meter
// reports.
type LuxBehaviorFunc func(ctx context.Context) (float32, error)

// MockLightMeter is a hardware-free LuxReader driven by a behavior
// function, for hosts that need to test against a light sensor without
// a bus attached.
//
// A behavior returning a fixed reading stands in for a stable scene:
//
//	meter := NewMockLightMeter(func(ctx context.Context) (float32, error) {
//		return 512.64, nil
//	})
//
// and one returning an error exercises the host's failure handling:
//
//	meter := NewMockLightMeter(func(ctx context.Context) (float32, error) {
//		return 0, errors.New("bus stuck")
//	})
type MockLightMeter struct {
	behavior LuxBehaviorFunc
}

func NewMockLightMeter(behavior LuxBehaviorFunc) *MockLightMeter {
	return &MockLightMeter{behavior: behavior}
}

func (m *MockLightMeter) ReadLux(ctx context.Context) (float32, error) {
	return m.behavior(ctx)
}
