package opt300x

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaw_Decode(t *testing.T) {
	tests := []struct {
		register uint16
		expected Raw
	}{
		{0x0001, Raw{0x0, 0x001}},
		{0x0FFF, Raw{0x0, 0xFFF}},
		{0x3456, Raw{0x3, 0x456}},
		{0x789A, Raw{0x7, 0x89A}},
		{0x8800, Raw{0x8, 0x800}},
		{0x9400, Raw{0x9, 0x400}},
		{0xA200, Raw{0xA, 0x200}},
		{0xB100, Raw{0xB, 0x100}},
		{0xB001, Raw{0xB, 0x001}},
		{0xBFFF, Raw{0xB, 0xFFF}},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%#04x", test.register), func(t *testing.T) {
			assert.Equal(t, test.expected, decodeRaw(test.register))
		})
	}
}

func TestRaw_Lux(t *testing.T) {
	tests := []struct {
		register uint16
		expected float32
	}{
		{0x0001, 0.01},
		{0x0FFF, 40.95},
		{0x3456, 88.80},
		{0x789A, 2818.56},
		{0x8800, 5242.88},
		{0x9400, 5242.88},
		{0xA200, 5242.88},
		{0xB100, 5242.88},
		{0xB001, 20.48},
		{0xBFFF, 83865.60},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%#04x", test.register), func(t *testing.T) {
			assert.InDelta(t, test.expected, decodeRaw(test.register).Lux(), 0.005)
		})
	}
}

func TestStatus_Decode(t *testing.T) {
	tests := []struct {
		name     string
		register uint16
		expected Status
	}{
		{"all clear", 0x0000, Status{}},
		{"overflow", bitOVF, Status{HasOverflown: true}},
		{"conversion ready", bitCRF, Status{ConversionReady: true}},
		{"too high", bitFH, Status{WasTooHigh: true}},
		{"too low", bitFL, Status{WasTooLow: true}},
		{"all set", bitOVF | bitCRF | bitFH | bitFL, Status{
			HasOverflown:    true,
			ConversionReady: true,
			WasTooHigh:      true,
			WasTooLow:       true,
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, decodeStatus(test.register))
		})
	}
}
