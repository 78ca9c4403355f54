// Package opt300x is a driver for the Texas Instruments OPT300x ambient
// light sensor family (single-chip lux meters with an I2C/SMBus
// interface). The driver distinguishes one-shot and continuous
// acquisition through two handle types: operations only valid in one
// mode are only available on the matching handle.
package opt300x

import (
	"context"
	"fmt"
)

// ErrWouldBlock is returned by one-shot reads while a conversion is
// pending on the device. The caller decides whether to spin, sleep or
// integrate the retry with its own scheduler; the driver itself never
// blocks.
var ErrWouldBlock = fmt.Errorf("conversion not ready")

// OneShot is a device handle in single-shot mode: the device stays
// shut down and performs one conversion per request. It is the mode
// the device powers up in.
type OneShot struct {
	device
	// started tracks a requested conversion whose result has not been
	// consumed yet.
	started bool
}

// NewOpt3001 creates an OPT3001 handle in one-shot mode. The transport
// must not be shared across drivers without external serialization.
func NewOpt3001(transport I2CBus, addr SlaveAddr) *OneShot {
	return &OneShot{device: newDevice(transport, OPT3001, addr.addr())}
}

// NewOpt3002 creates an OPT3002 handle in one-shot mode.
func NewOpt3002(transport I2CBus, addr SlaveAddr) *OneShot {
	return &OneShot{device: newDevice(transport, OPT3002, addr.addr())}
}

// NewOpt3004 creates an OPT3004 handle in one-shot mode.
func NewOpt3004(transport I2CBus, addr SlaveAddr) *OneShot {
	return &OneShot{device: newDevice(transport, OPT3004, addr.addr())}
}

// NewOpt3006 creates an OPT3006 handle in one-shot mode.
func NewOpt3006(transport I2CBus, addr SlaveAddr) *OneShot {
	return &OneShot{device: newDevice(transport, OPT3006, addr.addr())}
}

// NewOpt3007 creates an OPT3007 handle in one-shot mode. The OPT3007
// has no address selection pins.
func NewOpt3007(transport I2CBus) *OneShot {
	return &OneShot{device: newDevice(transport, OPT3007, baseAddress)}
}

// Destroy releases the handle and returns the transport.
func (s *OneShot) Destroy() I2CBus {
	return s.transport
}

// IntoContinuous switches the device into continuous measurement mode
// with a single configuration write and returns the new handle. On
// failure the mode is not assumed to have changed: the error is
// returned and the receiver stays valid and unchanged. After a
// successful switch the receiver must not be used anymore.
//
// The conversion ready flag is cleared by the device as a side effect
// of the mode change.
func (s *OneShot) IntoContinuous(ctx context.Context) (*Continuous, error) {
	err := s.setConfig(ctx, s.config.withHigh(bitM0).withHigh(bitM1))
	if err != nil {
		return nil, fmt.Errorf("could not enter continuous mode: %w", err)
	}
	s.started = false
	return &Continuous{device: s.device}, nil
}

// ReadRaw polls a single conversion. The first call requests a
// conversion from the device and returns ErrWouldBlock; subsequent
// calls check the ready flag and return ErrWouldBlock until the result
// is available, then read it together with the status captured by the
// same poll. Blocked calls perform a single bus transaction.
func (s *OneShot) ReadRaw(ctx context.Context) (Measurement[Raw], error) {
	if !s.started {
		// The device clears the mode bits itself once the conversion
		// completes, so the trigger write bypasses the mirror.
		config := s.config.withHigh(bitM0)
		err := s.writeRegister(ctx, regConfig, uint16(config))
		if err != nil {
			return Measurement[Raw]{}, fmt.Errorf("could not request conversion: %w", err)
		}
		s.started = true
		return Measurement[Raw]{}, ErrWouldBlock
	}
	status, err := s.ReadStatus(ctx)
	if err != nil {
		return Measurement[Raw]{}, err
	}
	if !status.ConversionReady {
		return Measurement[Raw]{}, ErrWouldBlock
	}
	value, err := s.readRegister(ctx, regResult)
	if err != nil {
		return Measurement[Raw]{}, err
	}
	s.started = false
	return Measurement[Raw]{Result: decodeRaw(value), Status: status}, nil
}

// ReadLux polls a single conversion and decodes the result into lux.
// See ReadRaw for the poll protocol.
func (s *OneShot) ReadLux(ctx context.Context) (Measurement[float32], error) {
	measurement, err := s.ReadRaw(ctx)
	if err != nil {
		return Measurement[float32]{}, err
	}
	return Measurement[float32]{
		Result: measurement.Result.Lux(),
		Status: measurement.Status,
	}, nil
}
