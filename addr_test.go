package opt300x

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlaveAddr_Default(t *testing.T) {
	assert.Equal(t, baseAddress, DefaultAddress().addr())
}

func TestSlaveAddr_Alternatives(t *testing.T) {
	tests := []struct {
		name     string
		a1, a0   bool
		expected byte
	}{
		{"gnd gnd", false, false, baseAddress},
		{"gnd vdd", false, true, baseAddress | 0b01},
		{"vdd gnd", true, false, baseAddress | 0b10},
		{"vdd vdd", true, true, baseAddress | 0b11},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, AlternativeAddress(test.a1, test.a0).addr())
		})
	}
}

func TestOpt3007_FixedAddress(t *testing.T) {
	sensor := NewOpt3007(new(MockI2CBus))
	assert.Equal(t, baseAddress, sensor.addr)
	assert.Equal(t, OPT3007, sensor.Model())
}
