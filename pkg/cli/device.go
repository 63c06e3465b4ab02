package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/dark-instruments/pkg/config"
	"github.com/devicelab-dev/dark-instruments/pkg/device"
	"github.com/devicelab-dev/dark-instruments/pkg/instruments"
	"github.com/devicelab-dev/dark-instruments/pkg/logger"
	"github.com/devicelab-dev/dark-instruments/pkg/ocr"
	"github.com/devicelab-dev/dark-instruments/pkg/process"
)

// Overridden in tests.
var (
	sessionRunner process.Runner
	sessionEngine ocr.Engine
)

var devicesCommand = &cli.Command{
	Name:   "devices",
	Usage:  "List devices reported by adb",
	Action: runDevices,
}

var sizeCommand = &cli.Command{
	Name:   "size",
	Usage:  "Print the physical display size as WIDTHxHEIGHT",
	Action: runSize,
}

var screenshotCommand = &cli.Command{
	Name:  "screenshot",
	Usage: "Capture the screen to a PNG file",
	Description: `Capture the screen and save it as PNG. Without --output the file is
written to <home>/screenshots with a unique name.

Examples:
  dark-instruments screenshot -o screen.png`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file",
		},
	},
	Action: runScreenshot,
}

var screenSumCommand = &cli.Command{
	Name:   "screensum",
	Usage:  "Print the MD5 of the current screen capture",
	Action: runScreenSum,
}

var serverCommand = &cli.Command{
	Name:  "server",
	Usage: "Control the adb server",
	Subcommands: []*cli.Command{
		{
			Name:  "kill",
			Usage: "Stop the adb server",
			Action: withADB(func(c *cli.Context, a *device.ADB) error {
				a.KillServer()
				printSuccess(c, "adb server stopped")
				return nil
			}),
		},
		{
			Name:  "start",
			Usage: "Start the adb server",
			Action: withADB(func(c *cli.Context, a *device.ADB) error {
				a.StartServer()
				printSuccess(c, "adb server started")
				return nil
			}),
		},
		{
			Name:  "restart",
			Usage: "Restart the adb server and wait for it to settle",
			Action: withADB(func(c *cli.Context, a *device.ADB) error {
				printStep(c, "Restarting adb server...")
				a.RestartServer()
				printSuccess(c, "adb server restarted")
				return nil
			}),
		},
	},
}

// newInstruments builds the session from config and test overrides.
func newInstruments(c *cli.Context) *instruments.Instruments {
	in := instruments.FromConfig(configFrom(c))
	in.Args.Runner = sessionRunner
	if sessionEngine != nil {
		in.WithOCREngine(sessionEngine)
	}
	return in
}

// connect performs the device handshake.
func connect(c *cli.Context) (*instruments.Instruments, *device.ADB, error) {
	in := newInstruments(c)
	serial := configFrom(c).Device

	a, err := in.ADB(serial)
	if err != nil {
		logger.Error("Failed to connect to device: %v", err)
		return nil, nil, fmt.Errorf("connect to device: %w", err)
	}
	return in, a, nil
}

// withADB adapts an action that needs a connected device.
func withADB(fn func(c *cli.Context, a *device.ADB) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		_, a, err := connect(c)
		if err != nil {
			return err
		}
		return fn(c, a)
	}
}

func runDevices(c *cli.Context) error {
	cfg := configFrom(c)
	entries, err := device.List(device.Options{Path: cfg.AdbPath, Runner: sessionRunner})
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printWarning(c, "no devices found")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(stdout(c), "%s\t%s\n", e.Serial, e.State)
	}
	return nil
}

var runSize = withADB(func(c *cli.Context, a *device.ADB) error {
	size, err := a.DisplaySize()
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout(c), "%dx%d\n", size.Width, size.Height)
	return nil
})

var runScreenshot = withADB(func(c *cli.Context, a *device.ADB) error {
	output := c.String("output")
	if output == "" {
		dir := config.GetScreenshotsDir()
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create screenshots dir: %w", err)
		}
		output = filepath.Join(dir, "screenshot-"+uuid.NewString()+".png")
	}

	path, err := a.CaptureScreenFile(output)
	if err != nil {
		return err
	}
	logger.Info("Screenshot saved: %s", path)
	fmt.Fprintln(stdout(c), path)
	return nil
})

var runScreenSum = withADB(func(c *cli.Context, a *device.ADB) error {
	sum, err := a.ScreenSum()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout(c), sum)
	return nil
})

// uint32Args parses exactly n unsigned integer arguments.
func uint32Args(c *cli.Context, names ...string) ([]uint32, error) {
	if c.NArg() != len(names) {
		return nil, fmt.Errorf("expected %d arguments (%v), got %d", len(names), names, c.NArg())
	}
	values := make([]uint32, len(names))
	for i, name := range names {
		v, err := strconv.ParseUint(c.Args().Get(i), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: must be a non-negative integer", name, c.Args().Get(i))
		}
		values[i] = uint32(v)
	}
	return values, nil
}
