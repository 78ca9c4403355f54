package opt300x

import (
	"context"
	"encoding/binary"
	"fmt"
)

var ErrInvalidInput = fmt.Errorf("invalid input data")

// Model identifies the supported device variants. The set is closed:
// all variants share the register map, they differ in spectral response
// and address pin availability.
type Model uint8

const (
	OPT3001 Model = iota
	OPT3002
	OPT3004
	OPT3006
	OPT3007
)

func (m Model) String() string {
	switch m {
	case OPT3001:
		return "OPT3001"
	case OPT3002:
		return "OPT3002"
	case OPT3004:
		return "OPT3004"
	case OPT3006:
		return "OPT3006"
	case OPT3007:
		return "OPT3007"
	}
	return "unknown"
}

// device carries the state shared by both mode handles: the transport,
// the bus address, the configuration mirror and the low-limit shadow.
type device struct {
	transport I2CBus
	addr      byte
	model     Model
	config    Config
	lowLimit  uint16
}

func newDevice(transport I2CBus, model Model, addr byte) device {
	return device{
		transport: transport,
		addr:      addr,
		model:     model,
		config:    ConfigDefault,
	}
}

// Model returns the device variant this driver was constructed for.
func (d *device) Model() Model {
	return d.model
}

// Config returns the cached configuration register mirror.
func (d *device) Config() Config {
	return d.config
}

func (d *device) readRegister(ctx context.Context, register byte) (uint16, error) {
	var buf [2]byte
	err := d.transport.WriteReadToAddr(ctx, d.addr, []byte{register}, buf[:])
	if err != nil {
		return 0, fmt.Errorf("could not read register %#x: %w", register, err)
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func (d *device) writeRegister(ctx context.Context, register byte, value uint16) error {
	err := d.transport.WriteToAddr(ctx, d.addr, []byte{register, byte(value >> 8), byte(value)})
	if err != nil {
		return fmt.Errorf("could not write register %#x: %w", register, err)
	}
	return nil
}

// setConfig writes the configuration register and updates the mirror
// only once the write succeeded. A failed write leaves the mirror at
// the last value the device actually holds.
func (d *device) setConfig(ctx context.Context, config Config) error {
	err := d.writeRegister(ctx, regConfig, uint16(config))
	if err != nil {
		return err
	}
	d.config = config
	return nil
}

// ReadStatus reads and decodes the flag bits of the configuration
// register. The device clears the conversion ready flag as a side
// effect of this read.
func (d *device) ReadStatus(ctx context.Context) (Status, error) {
	config, err := d.readRegister(ctx, regConfig)
	if err != nil {
		return Status{}, err
	}
	return decodeStatus(config), nil
}

// GetManufacturerID reads the manufacturer ID register.
func (d *device) GetManufacturerID(ctx context.Context) (uint16, error) {
	return d.readRegister(ctx, regManufacturerID)
}

// GetDeviceID reads the device ID register.
func (d *device) GetDeviceID(ctx context.Context) (uint16, error) {
	return d.readRegister(ctx, regDeviceID)
}

// SetFaultCount sets the number of consecutive fault events required
// before the interrupt reporting mechanism triggers.
func (d *device) SetFaultCount(ctx context.Context, count FaultCount) error {
	config := uint16(d.config) &^ 0b11
	config |= uint16(count) & 0b11
	return d.setConfig(ctx, Config(config))
}

// SetLuxRange sets the full-scale lux range. Manual values above 11
// fail with ErrInvalidInput without touching the bus.
func (d *device) SetLuxRange(ctx context.Context, r LuxRange) error {
	value := r.value
	if r.auto {
		value = rangeAuto
	} else if r.value >= rangeAuto {
		return ErrInvalidInput
	}
	config := uint16(d.config) & 0x0FFF
	return d.setConfig(ctx, Config(config|uint16(value)<<12))
}

// SetIntegrationTime sets the conversion time.
func (d *device) SetIntegrationTime(ctx context.Context, time IntegrationTime) error {
	if time == IntegrationTime800ms {
		return d.setConfig(ctx, d.config.withHigh(bitCT))
	}
	return d.setConfig(ctx, d.config.withLow(bitCT))
}

// SetInterruptPinPolarity sets the active state of the INT pin.
func (d *device) SetInterruptPinPolarity(ctx context.Context, polarity InterruptPinPolarity) error {
	if polarity == PolarityHigh {
		return d.setConfig(ctx, d.config.withHigh(bitPOL))
	}
	return d.setConfig(ctx, d.config.withLow(bitPOL))
}

// SetComparisonMode selects how limit comparisons drive the flags and
// the INT pin.
func (d *device) SetComparisonMode(ctx context.Context, mode ComparisonMode) error {
	if mode == LatchedWindow {
		return d.setConfig(ctx, d.config.withHigh(bitL))
	}
	return d.setConfig(ctx, d.config.withLow(bitL))
}

// EnableExponentMasking masks the exponent of the result register to
// zero in manual range modes.
func (d *device) EnableExponentMasking(ctx context.Context) error {
	return d.setConfig(ctx, d.config.withHigh(bitME))
}

// DisableExponentMasking restores the default exponent reporting.
func (d *device) DisableExponentMasking(ctx context.Context) error {
	return d.setConfig(ctx, d.config.withLow(bitME))
}

// SetLowLimitRaw sets the low limit register from an (exponent,
// mantissa) pair. Exponents above 11 and mantissas above 4095 fail with
// ErrInvalidInput without touching the bus. Setting the low limit
// disables the end-of-conversion mode.
func (d *device) SetLowLimitRaw(ctx context.Context, exponent uint8, mantissa uint16) error {
	if exponent > 0b1011 || mantissa > 0xFFF {
		return ErrInvalidInput
	}
	limit := uint16(exponent)<<12 | mantissa
	err := d.writeRegister(ctx, regLowLimit, limit)
	if err != nil {
		return err
	}
	d.lowLimit = limit
	return nil
}

// SetHighLimitRaw sets the high limit register from an (exponent,
// mantissa) pair, with the same validation as SetLowLimitRaw.
func (d *device) SetHighLimitRaw(ctx context.Context, exponent uint8, mantissa uint16) error {
	if exponent > 0b1011 || mantissa > 0xFFF {
		return ErrInvalidInput
	}
	return d.writeRegister(ctx, regHighLimit, uint16(exponent)<<12|mantissa)
}

// EnableEndOfConversionMode forces the two highest bits of the low
// limit exponent to 0b11, repurposing the low limit register as an
// end-of-conversion signal. The low-limit shadow is left untouched so
// the configured limit can be restored.
func (d *device) EnableEndOfConversionMode(ctx context.Context) error {
	return d.writeRegister(ctx, regLowLimit, d.lowLimit|0b1100<<12)
}

// DisableEndOfConversionMode restores the low limit register to the
// last value set through SetLowLimitRaw (zero by default).
func (d *device) DisableEndOfConversionMode(ctx context.Context) error {
	return d.writeRegister(ctx, regLowLimit, d.lowLimit)
}
