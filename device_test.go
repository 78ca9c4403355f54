package opt300x

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDevice_ReadStatus(t *testing.T) {
	sensor, bus := newTestSensor(t)
	expectRead(bus, regConfig, cfgDefault|bitOVF|bitCRF)
	status, err := sensor.ReadStatus(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Status{HasOverflown: true, ConversionReady: true}, status)
	bus.AssertExpectations(t)
}

func TestDevice_GetManufacturerID(t *testing.T) {
	sensor, bus := newTestSensor(t)
	expectRead(bus, regManufacturerID, 0x5449)
	id, err := sensor.GetManufacturerID(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x5449), id)
	bus.AssertExpectations(t)
}

func TestDevice_GetDeviceID(t *testing.T) {
	sensor, bus := newTestSensor(t)
	expectRead(bus, regDeviceID, 0x3001)
	id, err := sensor.GetDeviceID(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x3001), id)
	bus.AssertExpectations(t)
}

func TestDevice_ReadRegister_TransportError(t *testing.T) {
	sensor, bus := newTestSensor(t)
	bus.On("WriteReadToAddr", mock.Anything, devAddr, []byte{regDeviceID}, mock.Anything).
		Return(nil, errors.New("i2c read failed")).Once()
	_, err := sensor.GetDeviceID(context.Background())
	assert.ErrorContains(t, err, "i2c read failed")
	bus.AssertExpectations(t)
}

func TestDevice_FailedConfigWriteKeepsMirror(t *testing.T) {
	sensor, bus := newTestSensor(t)
	bus.On("WriteToAddr", mock.Anything, devAddr, mock.Anything).
		Return(errors.New("i2c write failed")).Once()
	err := sensor.SetFaultCount(context.Background(), FaultCount8)
	assert.ErrorContains(t, err, "i2c write failed")
	assert.Equal(t, ConfigDefault, sensor.Config())
	bus.AssertExpectations(t)
}

func TestDevice_Destroy_ReturnsTransport(t *testing.T) {
	bus := new(MockI2CBus)
	sensor := NewOpt3001(bus, DefaultAddress())
	assert.Same(t, bus, sensor.Destroy())
}
