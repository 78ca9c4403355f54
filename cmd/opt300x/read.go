package main

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/opt300x"
	"github.com/mklimuk/opt300x/cmd/opt300x/console"
)

var readCmd = cli.Command{
	Name:    "read",
	Aliases: []string{"rd"},
	Usage:   "perform a single one-shot measurement",
	Flags: append([]cli.Flag{
		&cli.DurationFlag{
			Name:    "interval",
			Aliases: []string{"i"},
			Value:   20 * time.Millisecond,
			Usage:   "poll interval while the conversion is running",
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Aliases: []string{"t"},
			Value:   2 * time.Second,
		},
		&cli.BoolFlag{
			Name:  "raw",
			Usage: "print the raw exponent/mantissa pair",
		},
	}, sensorFlags...),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		ctx, cancel := context.WithTimeout(ctx, c.Duration("timeout"))
		defer cancel()

		sensor, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		measurement, err := pollRaw(ctx, sensor, c.Duration("interval"))
		if err != nil {
			return console.Exit(1, "error getting light sensor read: %s", console.Red(err))
		}
		if c.Bool("raw") {
			console.Printf("exponent: %s mantissa: %s\n",
				console.White(measurement.Result.Exponent), console.White(measurement.Result.Mantissa))
		} else {
			console.PInfof(console.PictoSun, "%s lux", console.White(measurement.Result.Lux()))
		}
		printStatus(measurement.Status)
		return nil
	},
}

// pollRaw drives the driver's non-blocking poll protocol: the driver
// never sleeps, so the retry loop and the deadline live here.
func pollRaw(ctx context.Context, sensor *opt300x.OneShot, interval time.Duration) (opt300x.Measurement[opt300x.Raw], error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		measurement, err := sensor.ReadRaw(ctx)
		if err == nil {
			return measurement, nil
		}
		if !errors.Is(err, opt300x.ErrWouldBlock) {
			return opt300x.Measurement[opt300x.Raw]{}, err
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return opt300x.Measurement[opt300x.Raw]{}, ctx.Err()
		}
	}
}

func printStatus(status opt300x.Status) {
	if status.HasOverflown {
		console.Warnf("measurement overflowed")
	}
	if status.WasTooHigh {
		console.PInfof(console.PictoFlag, "result above the high limit")
	}
	if status.WasTooLow {
		console.PInfof(console.PictoFlag, "result below the low limit")
	}
}
