package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/opt300x"
	"github.com/mklimuk/opt300x/adapter"
	"github.com/mklimuk/opt300x/i2c"
)

var sensorFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "adapter",
		Aliases: []string{"a"},
		Value:   "mcp2221",
		Usage:   "bus adapter: mcp2221 or linux",
	},
	&cli.StringFlag{
		Name:  "bus",
		Value: "1",
		Usage: "i2c bus name or number (linux adapter)",
	},
	&cli.StringFlag{
		Name:  "addr",
		Value: "00",
		Usage: "ADDR pin straps: 00, 01, 10 or 11",
	},
	&cli.StringFlag{
		Name:    "model",
		Aliases: []string{"m"},
		Value:   "opt3001",
	},
	&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
}

func openBus(c *cli.Context) (opt300x.I2CBus, error) {
	switch c.String("adapter") {
	case "mcp2221":
		a := adapter.NewMCP2221()
		err := a.Init()
		if err != nil {
			return nil, fmt.Errorf("adapter initialization error: %w", err)
		}
		return a, nil
	case "linux":
		return i2c.NewGenericBus(c.String("bus"))
	}
	return nil, fmt.Errorf("unknown adapter %q", c.String("adapter"))
}

func slaveAddr(c *cli.Context) (opt300x.SlaveAddr, error) {
	straps := c.String("addr")
	if len(straps) != 2 {
		return opt300x.SlaveAddr{}, fmt.Errorf("invalid addr straps %q", straps)
	}
	return opt300x.AlternativeAddress(straps[0] == '1', straps[1] == '1'), nil
}

// newSensor builds a one-shot handle for the selected model, adapter
// and bus address.
func newSensor(c *cli.Context) (*opt300x.OneShot, error) {
	bus, err := openBus(c)
	if err != nil {
		return nil, err
	}
	addr, err := slaveAddr(c)
	if err != nil {
		return nil, err
	}
	switch c.String("model") {
	case "opt3001":
		return opt300x.NewOpt3001(bus, addr), nil
	case "opt3002":
		return opt300x.NewOpt3002(bus, addr), nil
	case "opt3004":
		return opt300x.NewOpt3004(bus, addr), nil
	case "opt3006":
		return opt300x.NewOpt3006(bus, addr), nil
	case "opt3007":
		return opt300x.NewOpt3007(bus), nil
	}
	return nil, fmt.Errorf("unknown model %q", c.String("model"))
}
