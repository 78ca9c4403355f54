package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/opt300x"
	"github.com/mklimuk/opt300x/cmd/opt300x/console"
)

var configCmd = cli.Command{
	Name:  "config",
	Usage: "configure conversion timing, range, limits and interrupt reporting",
	Subcommands: []*cli.Command{
		&configRangeCmd,
		&configTimeCmd,
		&configFaultCountCmd,
		&configPolarityCmd,
		&configComparisonCmd,
		&configMaskingCmd,
		&configLimitCmd,
		&configEocCmd,
	},
}

var configRangeCmd = cli.Command{
	Name:      "range",
	Usage:     "set the full-scale lux range (0-11 or auto)",
	ArgsUsage: "<range>",
	Flags:     sensorFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		sensor, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		rn := opt300x.LuxRangeAuto()
		if c.Args().First() != "auto" {
			var manual uint8
			_, err = fmt.Sscanf(c.Args().First(), "%d", &manual)
			if err != nil {
				return console.Exit(1, "invalid range %q", c.Args().First())
			}
			rn = opt300x.LuxRangeManual(manual)
		}
		err = sensor.SetLuxRange(ctx, rn)
		if err != nil {
			return console.Exit(1, "could not set lux range: %s", console.Red(err))
		}
		console.Infof("lux range set to %s", console.White(c.Args().First()))
		return nil
	},
}

var configTimeCmd = cli.Command{
	Name:      "time",
	Usage:     "set the conversion time (100ms or 800ms)",
	ArgsUsage: "<time>",
	Flags:     sensorFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		sensor, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		var time opt300x.IntegrationTime
		switch c.Args().First() {
		case "100ms":
			time = opt300x.IntegrationTime100ms
		case "800ms":
			time = opt300x.IntegrationTime800ms
		default:
			return console.Exit(1, "invalid conversion time %q", c.Args().First())
		}
		err = sensor.SetIntegrationTime(ctx, time)
		if err != nil {
			return console.Exit(1, "could not set conversion time: %s", console.Red(err))
		}
		console.Infof("conversion time set to %s", console.White(c.Args().First()))
		return nil
	},
}

var configFaultCountCmd = cli.Command{
	Name:      "fault-count",
	Usage:     "set the fault count (1, 2, 4 or 8)",
	ArgsUsage: "<count>",
	Flags:     sensorFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		sensor, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		var count opt300x.FaultCount
		switch c.Args().First() {
		case "1":
			count = opt300x.FaultCount1
		case "2":
			count = opt300x.FaultCount2
		case "4":
			count = opt300x.FaultCount4
		case "8":
			count = opt300x.FaultCount8
		default:
			return console.Exit(1, "invalid fault count %q", c.Args().First())
		}
		err = sensor.SetFaultCount(ctx, count)
		if err != nil {
			return console.Exit(1, "could not set fault count: %s", console.Red(err))
		}
		console.Infof("fault count set to %s", console.White(c.Args().First()))
		return nil
	},
}

var configPolarityCmd = cli.Command{
	Name:      "polarity",
	Usage:     "set the interrupt pin polarity (low or high)",
	ArgsUsage: "<polarity>",
	Flags:     sensorFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		sensor, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		var polarity opt300x.InterruptPinPolarity
		switch c.Args().First() {
		case "low":
			polarity = opt300x.PolarityLow
		case "high":
			polarity = opt300x.PolarityHigh
		default:
			return console.Exit(1, "invalid polarity %q", c.Args().First())
		}
		err = sensor.SetInterruptPinPolarity(ctx, polarity)
		if err != nil {
			return console.Exit(1, "could not set polarity: %s", console.Red(err))
		}
		console.Infof("interrupt pin polarity set to %s", console.White(c.Args().First()))
		return nil
	},
}

var configComparisonCmd = cli.Command{
	Name:      "comparison",
	Usage:     "set the comparison mode (latched or transparent)",
	ArgsUsage: "<mode>",
	Flags:     sensorFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		sensor, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		var mode opt300x.ComparisonMode
		switch c.Args().First() {
		case "latched":
			mode = opt300x.LatchedWindow
		case "transparent":
			mode = opt300x.TransparentHysteresis
		default:
			return console.Exit(1, "invalid comparison mode %q", c.Args().First())
		}
		err = sensor.SetComparisonMode(ctx, mode)
		if err != nil {
			return console.Exit(1, "could not set comparison mode: %s", console.Red(err))
		}
		console.Infof("comparison mode set to %s", console.White(c.Args().First()))
		return nil
	},
}

var configMaskingCmd = cli.Command{
	Name:      "masking",
	Usage:     "enable or disable exponent masking",
	ArgsUsage: "<on|off>",
	Flags:     sensorFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		sensor, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		switch c.Args().First() {
		case "on":
			err = sensor.EnableExponentMasking(ctx)
		case "off":
			err = sensor.DisableExponentMasking(ctx)
		default:
			return console.Exit(1, "invalid masking setting %q", c.Args().First())
		}
		if err != nil {
			return console.Exit(1, "could not change exponent masking: %s", console.Red(err))
		}
		console.Infof("exponent masking %s", console.White(c.Args().First()))
		return nil
	},
}

var configLimitCmd = cli.Command{
	Name:      "limit",
	Usage:     "set a comparison limit from a raw exponent/mantissa pair",
	ArgsUsage: "<low|high> <exponent> <mantissa>",
	Flags:     sensorFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		sensor, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		var exponent uint8
		var mantissa uint16
		_, err = fmt.Sscanf(c.Args().Get(1), "%d", &exponent)
		if err != nil {
			return console.Exit(1, "invalid exponent %q", c.Args().Get(1))
		}
		_, err = fmt.Sscanf(c.Args().Get(2), "%d", &mantissa)
		if err != nil {
			return console.Exit(1, "invalid mantissa %q", c.Args().Get(2))
		}
		switch c.Args().First() {
		case "low":
			err = sensor.SetLowLimitRaw(ctx, exponent, mantissa)
		case "high":
			err = sensor.SetHighLimitRaw(ctx, exponent, mantissa)
		default:
			return console.Exit(1, "invalid limit %q", c.Args().First())
		}
		if err != nil {
			return console.Exit(1, "could not set limit: %s", console.Red(err))
		}
		console.Infof("%s limit set to exponent %s mantissa %s",
			c.Args().First(), console.White(exponent), console.White(mantissa))
		return nil
	},
}

var configEocCmd = cli.Command{
	Name:      "eoc",
	Usage:     "enable or disable the end-of-conversion mode",
	ArgsUsage: "<on|off>",
	Flags:     sensorFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		if c.Args().First() == "on" {
			// overlaying the low limit register surprises hosts relying
			// on limit interrupts, make sure this is intended
			answer, err := console.YesOrNo("end-of-conversion mode repurposes the low limit register, continue?")
			if err != nil {
				return console.Exit(1, "prompt error: %s", console.Red(err))
			}
			if answer == console.No {
				console.PInfof(console.PictoStop, "aborted")
				return nil
			}
		}
		sensor, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		switch c.Args().First() {
		case "on":
			err = sensor.EnableEndOfConversionMode(ctx)
		case "off":
			err = sensor.DisableEndOfConversionMode(ctx)
		default:
			return console.Exit(1, "invalid end-of-conversion setting %q", c.Args().First())
		}
		if err != nil {
			return console.Exit(1, "could not change end-of-conversion mode: %s", console.Red(err))
		}
		console.Infof("end-of-conversion mode %s", console.White(c.Args().First()))
		return nil
	},
}
