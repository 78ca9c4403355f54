package opt300x

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newContinuousSensor(t *testing.T) (*Continuous, *MockI2CBus) {
	t.Helper()
	sensor, bus := newTestSensor(t)
	expectWrite(bus, regConfig, cfgDefault|bitM0|bitM1)
	continuous, err := sensor.IntoContinuous(context.Background())
	assert.NoError(t, err)
	return continuous, bus
}

func TestContinuous_ReadLux(t *testing.T) {
	tests := []struct {
		register uint16
		expected float32
	}{
		{0x0001, 0.01},
		{0x0FFF, 40.95},
		{0x3456, 88.80},
		{0x789A, 2818.56},
		{0xBFFF, 83865.60},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%#04x", test.register), func(t *testing.T) {
			sensor, bus := newContinuousSensor(t)
			expectRead(bus, regResult, test.register)
			lux, err := sensor.ReadLux(context.Background())
			assert.NoError(t, err)
			assert.InDelta(t, test.expected, lux, 0.005)
			bus.AssertExpectations(t)
		})
	}
}

func TestContinuous_ReadRaw(t *testing.T) {
	sensor, bus := newContinuousSensor(t)
	expectRead(bus, regResult, 0x3456)
	raw, err := sensor.ReadRaw(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Raw{Exponent: 0x3, Mantissa: 0x456}, raw)
	bus.AssertExpectations(t)
}

func TestContinuous_SettersAvailable(t *testing.T) {
	sensor, bus := newContinuousSensor(t)
	cfg := cfgDefault | bitM0 | bitM1
	expectWrite(bus, regConfig, cfg|0b10)
	err := sensor.SetFaultCount(context.Background(), FaultCount4)
	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestContinuous_ReadStatus(t *testing.T) {
	sensor, bus := newContinuousSensor(t)
	expectRead(bus, regConfig, cfgDefault|bitFL)
	status, err := sensor.ReadStatus(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Status{WasTooLow: true}, status)
	bus.AssertExpectations(t)
}

func TestIntoOneShot_TransportFailureKeepsHandle(t *testing.T) {
	sensor, bus := newContinuousSensor(t)
	bus.On("WriteToAddr", mock.Anything, devAddr, mock.Anything).
		Return(errors.New("i2c write failed")).Once()

	oneShot, err := sensor.IntoOneShot(context.Background())
	assert.Nil(t, oneShot)
	assert.ErrorContains(t, err, "could not enter one-shot mode")
	// the original handle stays usable with an untouched mirror
	assert.Equal(t, Config(cfgDefault|bitM0|bitM1), sensor.Config())

	expectWrite(bus, regConfig, cfgDefault)
	oneShot, err = sensor.IntoOneShot(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, oneShot)
	bus.AssertExpectations(t)
}

func TestMockLightMeter(t *testing.T) {
	meter := NewMockLightMeter(func(ctx context.Context) (float32, error) {
		return 512.64, nil
	})
	lux, err := meter.ReadLux(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, float32(512.64), lux)
}
