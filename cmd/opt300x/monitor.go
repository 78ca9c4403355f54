package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/opt300x/cmd/opt300x/console"
)

var monitorCmd = cli.Command{
	Name:  "monitor",
	Usage: "switch to continuous mode and print measurements",
	Flags: append([]cli.Flag{
		&cli.DurationFlag{
			Name:    "interval",
			Aliases: []string{"i"},
			Value:   time.Second,
		},
	}, sensorFlags...),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		oneShot, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		sensor, err := oneShot.IntoContinuous(ctx)
		if err != nil {
			return console.Exit(1, "could not enter continuous mode: %s", console.Red(err))
		}
		defer func() {
			// shut the device down on exit
			_, err := sensor.IntoOneShot(context.Background())
			if err != nil {
				console.Warnf("could not shut the sensor down: %s", err)
			}
		}()

		ticker := time.NewTicker(c.Duration("interval"))
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				lux, err := sensor.ReadLux(ctx)
				if err != nil {
					console.Errorf("read error: %s", console.Red(err))
					continue
				}
				console.PInfof(console.PictoSun, "%s lux", console.White(lux))
			case <-ctx.Done():
				return nil
			}
		}
	},
}
