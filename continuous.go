package opt300x

import (
	"context"
	"fmt"
)

// Continuous is a device handle in continuous measurement mode: the
// device converts back to back without host intervention and the
// result register always holds the latest conversion.
type Continuous struct {
	device
}

// Destroy releases the handle and returns the transport.
func (c *Continuous) Destroy() I2CBus {
	return c.transport
}

// IntoOneShot switches the device into one-shot mode with a single
// configuration write and returns the new handle. This shuts the
// device down until a conversion is requested. On failure the error is
// returned and the receiver stays valid and unchanged. After a
// successful switch the receiver must not be used anymore.
func (c *Continuous) IntoOneShot(ctx context.Context) (*OneShot, error) {
	err := c.setConfig(ctx, c.config.withLow(bitM0).withLow(bitM1))
	if err != nil {
		return nil, fmt.Errorf("could not enter one-shot mode: %w", err)
	}
	return &OneShot{device: c.device}, nil
}

// ReadRaw reads the result of the most recent conversion in raw
// (exponent, mantissa) format.
func (c *Continuous) ReadRaw(ctx context.Context) (Raw, error) {
	value, err := c.readRegister(ctx, regResult)
	if err != nil {
		return Raw{}, err
	}
	return decodeRaw(value), nil
}

// ReadLux reads the result of the most recent conversion in lux.
func (c *Continuous) ReadLux(ctx context.Context) (float32, error) {
	raw, err := c.ReadRaw(ctx)
	if err != nil {
		return 0, err
	}
	return raw.Lux(), nil
}
