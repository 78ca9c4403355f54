package opt300x

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

const cfgDefault = uint16(ConfigDefault)

func TestDevice_SetFaultCount(t *testing.T) {
	tests := []struct {
		name     string
		count    FaultCount
		expected uint16
	}{
		{"one", FaultCount1, cfgDefault},
		{"two", FaultCount2, cfgDefault | 0b01},
		{"four", FaultCount4, cfgDefault | 0b10},
		{"eight", FaultCount8, cfgDefault | 0b11},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sensor, bus := newTestSensor(t)
			expectWrite(bus, regConfig, test.expected)
			err := sensor.SetFaultCount(context.Background(), test.count)
			assert.NoError(t, err)
			assert.Equal(t, Config(test.expected), sensor.Config())
			bus.AssertExpectations(t)
		})
	}
}

func TestDevice_SetLuxRange(t *testing.T) {
	tests := []struct {
		name     string
		rn       LuxRange
		expected uint16
	}{
		{"auto", LuxRangeAuto(), cfgDefault},
		{"manual 0", LuxRangeManual(0), cfgDefault & 0x0FFF},
		{"manual max", LuxRangeManual(0b1011), cfgDefault&0x0FFF | 0b1011<<12},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sensor, bus := newTestSensor(t)
			expectWrite(bus, regConfig, test.expected)
			err := sensor.SetLuxRange(context.Background(), test.rn)
			assert.NoError(t, err)
			bus.AssertExpectations(t)
		})
	}
}

func TestDevice_SetLuxRange_InvalidManualValue(t *testing.T) {
	for _, rn := range []uint8{12, 13, 255} {
		sensor, bus := newTestSensor(t)
		err := sensor.SetLuxRange(context.Background(), LuxRangeManual(rn))
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, ConfigDefault, sensor.Config())
		// validation failures must not touch the bus
		bus.AssertNotCalled(t, "WriteToAddr")
	}
}

func TestDevice_SetIntegrationTime(t *testing.T) {
	tests := []struct {
		name     string
		time     IntegrationTime
		expected uint16
	}{
		{"100ms", IntegrationTime100ms, cfgDefault &^ bitCT},
		{"800ms", IntegrationTime800ms, cfgDefault | bitCT},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sensor, bus := newTestSensor(t)
			expectWrite(bus, regConfig, test.expected)
			err := sensor.SetIntegrationTime(context.Background(), test.time)
			assert.NoError(t, err)
			bus.AssertExpectations(t)
		})
	}
}

func TestDevice_SetInterruptPinPolarity(t *testing.T) {
	tests := []struct {
		name     string
		polarity InterruptPinPolarity
		expected uint16
	}{
		{"low", PolarityLow, cfgDefault &^ bitPOL},
		{"high", PolarityHigh, cfgDefault | bitPOL},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sensor, bus := newTestSensor(t)
			expectWrite(bus, regConfig, test.expected)
			err := sensor.SetInterruptPinPolarity(context.Background(), test.polarity)
			assert.NoError(t, err)
			bus.AssertExpectations(t)
		})
	}
}

func TestDevice_SetComparisonMode(t *testing.T) {
	tests := []struct {
		name     string
		mode     ComparisonMode
		expected uint16
	}{
		{"latched window", LatchedWindow, cfgDefault | bitL},
		{"transparent hysteresis", TransparentHysteresis, cfgDefault &^ bitL},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sensor, bus := newTestSensor(t)
			expectWrite(bus, regConfig, test.expected)
			err := sensor.SetComparisonMode(context.Background(), test.mode)
			assert.NoError(t, err)
			bus.AssertExpectations(t)
		})
	}
}

func TestDevice_ExponentMasking(t *testing.T) {
	t.Run("enable", func(t *testing.T) {
		sensor, bus := newTestSensor(t)
		expectWrite(bus, regConfig, cfgDefault|bitME)
		assert.NoError(t, sensor.EnableExponentMasking(context.Background()))
		bus.AssertExpectations(t)
	})
	t.Run("disable", func(t *testing.T) {
		sensor, bus := newTestSensor(t)
		expectWrite(bus, regConfig, cfgDefault&^bitME)
		assert.NoError(t, sensor.DisableExponentMasking(context.Background()))
		bus.AssertExpectations(t)
	})
}

func TestDevice_SettersCompose(t *testing.T) {
	// every setter starts from the mirror left by the previous one
	sensor, bus := newTestSensor(t)
	expectWrite(bus, regConfig, cfgDefault|0b11)
	expectWrite(bus, regConfig, cfgDefault|0b11|bitME)
	expectWrite(bus, regConfig, (cfgDefault|0b11|bitME)&^bitCT)

	ctx := context.Background()
	assert.NoError(t, sensor.SetFaultCount(ctx, FaultCount8))
	assert.NoError(t, sensor.EnableExponentMasking(ctx))
	assert.NoError(t, sensor.SetIntegrationTime(ctx, IntegrationTime100ms))
	bus.AssertExpectations(t)
}
