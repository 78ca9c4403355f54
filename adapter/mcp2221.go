package adapter

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/karalabe/hid"

	"github.com/mklimuk/opt300x"
	"github.com/mklimuk/opt300x/cmd/opt300x/console"
)

const VendorID = 0x04D8
const ProductID = 0x00DD

// MCP2221 I2C engine command codes (per datasheet)
const (
	cmdStatusSetParams  byte = 0x10
	cmdGetI2CData       byte = 0x40
	cmdI2CWrite         byte = 0x90
	cmdI2CRead          byte = 0x91
	cmdI2CReadRepStart  byte = 0x93
	cmdI2CWriteNoStop   byte = 0x94
	subCancelTransfer   byte = 0x10
	responseNotAllowed  byte = 0x01
	responseReadPending byte = 0x41
)

const reportSize = 64

// MCP2221 drives the I2C engine of the Microchip MCP2221/MCP2221A
// USB-to-I2C bridge over 64-byte HID reports. All bus operations are
// serialized on an internal mutex since the engine handles one
// transfer at a time.
type MCP2221 struct {
	mx           sync.Mutex
	dev          *hid.Device
	request      []byte
	response     []byte
	responseWait time.Duration
}

var _ opt300x.I2CBus = &MCP2221{}

// Status reports the state of the adapter's I2C engine.
type Status struct {
	I2CDataBufferCounter   int    `yaml:"i2c_data_buffer_counter"`
	I2CSpeedDivider        int    `yaml:"i2c_speed_divider"`
	I2CTimeout             int    `yaml:"i2c_timeout"`
	CurrentAddress         string `yaml:"current_address"`
	LastWriteRequestedSize uint16 `yaml:"last_write_requested_size"`
	LastWriteSentSize      uint16 `yaml:"last_write_sent_size"`
	ReadPending            int    `yaml:"read_pending"`
}

func NewMCP2221() *MCP2221 {
	return &MCP2221{
		request:      make([]byte, reportSize),
		response:     make([]byte, reportSize),
		responseWait: 50 * time.Millisecond,
	}
}

// Init locates and opens the adapter. The handle stays open until
// Close; operations on an uninitialized adapter open it on demand.
func (d *MCP2221) Init() error {
	d.mx.Lock()
	defer d.mx.Unlock()
	return d.open()
}

func (d *MCP2221) open() error {
	if d.dev != nil {
		return nil
	}
	devs := hid.Enumerate(VendorID, ProductID)
	if len(devs) == 0 {
		return fmt.Errorf("MCP2221 device not found")
	}
	if len(devs) > 1 {
		return fmt.Errorf("ambiguous device identification: %d adapters attached", len(devs))
	}
	dev, err := devs[0].Open()
	if err != nil {
		return fmt.Errorf("error opening device: %w", err)
	}
	d.dev = dev
	return nil
}

func (d *MCP2221) Close() error {
	d.mx.Lock()
	defer d.mx.Unlock()
	if d.dev == nil {
		return nil
	}
	err := d.dev.Close()
	d.dev = nil
	return err
}

func (d *MCP2221) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	err := d.i2cWrite(ctx, cmdI2CWrite, address, buffer)
	if err != nil {
		return fmt.Errorf("write to %x failed: %w", address, err)
	}
	return nil
}

func (d *MCP2221) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	err := d.i2cRead(ctx, cmdI2CRead, address, buffer)
	if err != nil {
		return fmt.Errorf("bus read from %x failed: %w", address, err)
	}
	return nil
}

// WriteReadToAddr chains a write without stop condition and a read
// with repeated start, so register pointer writes and the following
// data read form one bus transaction.
func (d *MCP2221) WriteReadToAddr(ctx context.Context, address byte, out, in []byte) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	err := d.i2cWrite(ctx, cmdI2CWriteNoStop, address, out)
	if err != nil {
		return fmt.Errorf("write to %x failed: %w", address, err)
	}
	err = d.i2cRead(ctx, cmdI2CReadRepStart, address, in)
	if err != nil {
		return fmt.Errorf("bus read from %x failed: %w", address, err)
	}
	return nil
}

func (d *MCP2221) i2cWrite(ctx context.Context, command, address byte, buffer []byte) error {
	d.resetBuffers()
	d.request[0] = command
	binary.LittleEndian.PutUint16(d.request[1:3], uint16(len(buffer)))
	d.request[3] = address << 1
	if len(buffer) > 0 {
		copy(d.request[4:], buffer)
	}
	err := d.send(ctx)
	if err != nil {
		return err
	}
	if d.response[1] == responseNotAllowed {
		slog.Debug("adapter busy")
		return opt300x.ErrBusBusy
	}
	return nil
}

func (d *MCP2221) i2cRead(ctx context.Context, command, address byte, buffer []byte) error {
	d.resetBuffers()
	d.request[0] = command
	binary.LittleEndian.PutUint16(d.request[1:3], uint16(len(buffer)))
	d.request[3] = address<<1 + 1
	err := d.send(ctx)
	if err != nil {
		return err
	}
	if d.response[1] == responseNotAllowed {
		return opt300x.ErrBusBusy
	}
	d.request[0] = cmdGetI2CData
	resetBuffer(d.response)
	err = d.send(ctx)
	if err != nil {
		return fmt.Errorf("error getting read data from adapter: %w", err)
	}
	if d.response[1] == responseReadPending {
		return fmt.Errorf("error reading the I2C slave data from the I2C engine")
	}
	if d.response[3] == 127 || int(d.response[3]) != len(buffer) {
		return fmt.Errorf("invalid data size byte; expected %d, got %d", len(buffer), d.response[3])
	}
	copy(buffer, d.response[4:])
	return nil
}

// Status queries the I2C engine state.
func (d *MCP2221) Status(ctx context.Context) (*Status, error) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdStatusSetParams
	err := d.send(ctx)
	if err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	return decodeStatus(d.response), nil
}

// Release cancels any pending transfer, freeing a bus stuck in the
// middle of an aborted transaction.
func (d *MCP2221) Release(ctx context.Context) error {
	_, err := d.ReleaseBus(ctx)
	return err
}

// ReleaseBus cancels any pending transfer and returns the engine
// status after the cancellation.
func (d *MCP2221) ReleaseBus(ctx context.Context) (*Status, error) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdStatusSetParams
	d.request[2] = subCancelTransfer
	err := d.send(ctx)
	if err != nil {
		return nil, fmt.Errorf("transfer cancellation failed: %w", err)
	}
	return decodeStatus(d.response), nil
}

func decodeStatus(buffer []byte) *Status {
	// Response layout (bytes): 9-10 requested I2C transfer length,
	// 11-12 bytes already transferred, 13 data buffer counter,
	// 14 speed divider, 15 timeout, 16-17 address in use,
	// 25 pending read count.
	return &Status{
		I2CDataBufferCounter:   int(buffer[13]),
		I2CSpeedDivider:        int(buffer[14]),
		I2CTimeout:             int(buffer[15]),
		CurrentAddress:         hex.EncodeToString(buffer[16:18]),
		LastWriteRequestedSize: binary.LittleEndian.Uint16(buffer[9:11]),
		LastWriteSentSize:      binary.LittleEndian.Uint16(buffer[11:13]),
		ReadPending:            int(buffer[25]),
	}
}

func (d *MCP2221) send(ctx context.Context) error {
	err := d.open()
	if err != nil {
		return err
	}
	verbose := console.IsVerbose(ctx)
	if verbose {
		console.Printf("sending report to adapter:\n%s", hex.Dump(d.request))
	}
	n, err := d.dev.Write(d.request)
	if err != nil {
		return fmt.Errorf("could not write request: %w", err)
	}
	if n != reportSize {
		return fmt.Errorf("short write: %d", n)
	}
	timer := time.NewTimer(d.responseWait)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return ctx.Err()
	}
	n, err = d.dev.Read(d.response)
	if err != nil {
		return fmt.Errorf("could not read response: %w", err)
	}
	if n != reportSize {
		return fmt.Errorf("short read: %d", n)
	}
	if verbose {
		console.Printf("read report from adapter:\n%s", hex.Dump(d.response))
	}
	return nil
}

func (d *MCP2221) resetBuffers() {
	resetBuffer(d.request)
	resetBuffer(d.response)
}

func resetBuffer(buf []byte) {
	for i := range buf {
		buf[i] = 0x00
	}
}
