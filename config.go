package opt300x

// Register map (per datasheet)
const (
	regResult         byte = 0x00
	regConfig         byte = 0x01
	regLowLimit       byte = 0x02
	regHighLimit      byte = 0x03
	regManufacturerID byte = 0x7E
	regDeviceID       byte = 0x7F
)

// Configuration register bit definitions:
// Bit15..12: RN[3:0] full-scale range (0b1100 = automatic)
// Bit11: CT conversion time (0 = 100ms, 1 = 800ms)
// Bit10..9: M[1:0] conversion mode (00 = shutdown, 01 = single-shot, 11 = continuous)
// Bit8: OVF overflow flag (read-only)
// Bit7: CRF conversion ready flag (read-only)
// Bit6: FH flag high
// Bit5: FL flag low
// Bit4: L latch
// Bit3: POL interrupt pin polarity
// Bit2: ME exponent mask enable
// Bit1..0: FC[1:0] fault count
const (
	bitCT  uint16 = 1 << 11
	bitM1  uint16 = 1 << 10
	bitM0  uint16 = 1 << 9
	bitOVF uint16 = 1 << 8
	bitCRF uint16 = 1 << 7
	bitFH  uint16 = 1 << 6
	bitFL  uint16 = 1 << 5
	bitL   uint16 = 1 << 4
	bitPOL uint16 = 1 << 3
	bitME  uint16 = 1 << 2
)

// rangeAuto is the reserved RN code enabling automatic full-scale ranging.
const rangeAuto uint8 = 0b1100

// Config mirrors the last value written to the configuration register.
// The driver never reads it back for normal operation.
type Config uint16

// ConfigDefault is the power-on-reset content of the configuration
// register: automatic range, 800ms conversion time, shutdown mode,
// latched comparison.
const ConfigDefault Config = 0xC810

func (c Config) withHigh(mask uint16) Config {
	return c | Config(mask)
}

func (c Config) withLow(mask uint16) Config {
	return c &^ Config(mask)
}

// FaultCount is the number of consecutive fault events required to
// trigger the interrupt reporting mechanism.
type FaultCount uint8

const (
	FaultCount1 FaultCount = 0b00
	FaultCount2 FaultCount = 0b01
	FaultCount4 FaultCount = 0b10
	FaultCount8 FaultCount = 0b11
)

// IntegrationTime is the duration of a single conversion. Longer
// conversions yield better resolution.
type IntegrationTime uint8

const (
	IntegrationTime100ms IntegrationTime = iota
	IntegrationTime800ms
)

// InterruptPinPolarity selects the active state of the INT pin.
type InterruptPinPolarity uint8

const (
	PolarityLow InterruptPinPolarity = iota
	PolarityHigh
)

// ComparisonMode selects how limit comparisons drive the flag bits and
// the INT pin.
type ComparisonMode uint8

const (
	TransparentHysteresis ComparisonMode = iota
	LatchedWindow
)

// LuxRange selects the full-scale lux range: either a manual range
// code 0-11 or the automatic full-scale setting.
type LuxRange struct {
	auto  bool
	value uint8
}

func LuxRangeAuto() LuxRange {
	return LuxRange{auto: true}
}

func LuxRangeManual(value uint8) LuxRange {
	return LuxRange{value: value}
}
