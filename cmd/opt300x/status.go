package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/opt300x/cmd/opt300x/console"
)

var statusCmd = cli.Command{
	Name:  "status",
	Usage: "read and decode the sensor status flags",
	Flags: sensorFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		sensor, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		status, err := sensor.ReadStatus(ctx)
		if err != nil {
			return console.Exit(1, "status read error: %s", console.Red(err))
		}
		console.Printf("overflow:         %s\n", console.White(status.HasOverflown))
		console.Printf("conversion ready: %s\n", console.White(status.ConversionReady))
		console.Printf("above high limit: %s\n", console.White(status.WasTooHigh))
		console.Printf("below low limit:  %s\n", console.White(status.WasTooLow))
		return nil
	},
}

var idCmd = cli.Command{
	Name:  "id",
	Usage: "read manufacturer and device identifiers",
	Flags: sensorFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		sensor, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		manufacturer, err := sensor.GetManufacturerID(ctx)
		if err != nil {
			return console.Exit(1, "manufacturer id read error: %s", console.Red(err))
		}
		device, err := sensor.GetDeviceID(ctx)
		if err != nil {
			return console.Exit(1, "device id read error: %s", console.Red(err))
		}
		console.Printf("manufacturer: %s (%s)\n",
			console.White(fmt.Sprintf("%#04x", manufacturer)),
			console.White(string([]byte{byte(manufacturer >> 8), byte(manufacturer)})))
		console.Printf("device:       %s\n", console.White(fmt.Sprintf("%#04x", device)))
		return nil
	},
}
