package opt300x

// Raw is the undecoded content of the result register: a 4-bit exponent
// and a 12-bit mantissa.
type Raw struct {
	Exponent uint8
	Mantissa uint16
}

// Lux decodes the raw value: mantissa * 0.01 * 2^exponent. The product
// is computed in float64 so that the documented maximum (exponent 11,
// mantissa 4095, about 83865.6 lux) does not lose precision before the
// final narrowing.
func (r Raw) Lux() float32 {
	return float32(float64(uint32(1)<<r.Exponent) * 0.01 * float64(r.Mantissa))
}

func decodeRaw(value uint16) Raw {
	return Raw{
		Exponent: uint8(value >> 12),
		Mantissa: value & 0xFFF,
	}
}

// Status is a snapshot of the flag bits of the configuration register.
// It is decoded from a fresh register read on every call, never cached.
type Status struct {
	// HasOverflown indicates an overflow condition during the conversion.
	HasOverflown bool
	// ConversionReady indicates that a conversion completed since the
	// configuration register was last read.
	ConversionReady bool
	// WasTooHigh indicates a result above the high limit.
	WasTooHigh bool
	// WasTooLow indicates a result below the low limit.
	WasTooLow bool
}

func decodeStatus(config uint16) Status {
	return Status{
		HasOverflown:    config&bitOVF != 0,
		ConversionReady: config&bitCRF != 0,
		WasTooHigh:      config&bitFH != 0,
		WasTooLow:       config&bitFL != 0,
	}
}

// Measurement pairs a conversion result with the status flags read
// during the same acquisition.
type Measurement[T any] struct {
	Result T
	Status Status
}
