package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/dark-instruments/pkg/device"
)

var tapCommand = &cli.Command{
	Name:      "tap",
	Usage:     "Tap at a screen coordinate",
	ArgsUsage: "X Y",
	Action:    runTap,
}

var swipeCommand = &cli.Command{
	Name:      "swipe",
	Usage:     "Swipe from one coordinate to another",
	ArgsUsage: "X1 Y1 X2 Y2",
	Flags: []cli.Flag{
		&cli.UintFlag{
			Name:  "duration",
			Usage: "Swipe duration in milliseconds",
			Value: 300,
		},
	},
	Action: runSwipe,
}

var textCommand = &cli.Command{
	Name:      "text",
	Usage:     "Type text into the focused field",
	ArgsUsage: "TEXT",
	Action:    runText,
}

var keyCommand = &cli.Command{
	Name:      "key",
	Usage:     "Send a key event by name (HOME, KEYCODE_BACK) or number (66)",
	ArgsUsage: "KEY",
	Action:    runKey,
}

var startActivityCommand = &cli.Command{
	Name:      "start-activity",
	Usage:     "Launch an activity by component name",
	ArgsUsage: "PACKAGE/.Activity",
	Action:    runStartActivity,
}

var inputShownCommand = &cli.Command{
	Name:   "input-shown",
	Usage:  "Print whether the soft keyboard is showing",
	Action: runInputShown,
}

var runTap = withADB(func(c *cli.Context, a *device.ADB) error {
	v, err := uint32Args(c, "x", "y")
	if err != nil {
		return err
	}
	out := a.InputTap(v[0], v[1])
	printOutput(c, out.Stdout, out.Stderr)
	return nil
})

var runSwipe = withADB(func(c *cli.Context, a *device.ADB) error {
	v, err := uint32Args(c, "x1", "y1", "x2", "y2")
	if err != nil {
		return err
	}
	duration := c.Uint("duration")
	if uint64(duration) > uint64(^uint32(0)) {
		return fmt.Errorf("invalid duration %d", duration)
	}
	out := a.InputSwipe(v[0], v[1], v[2], v[3], uint32(duration))
	printOutput(c, out.Stdout, out.Stderr)
	return nil
})

var runText = withADB(func(c *cli.Context, a *device.ADB) error {
	if c.NArg() == 0 {
		return fmt.Errorf("text is required")
	}
	out := a.InputText(strings.Join(c.Args().Slice(), " "))
	printOutput(c, out.Stdout, out.Stderr)
	return nil
})

var runKey = withADB(func(c *cli.Context, a *device.ADB) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one key is required")
	}
	code, err := device.ParseKeyCode(c.Args().First())
	if err != nil {
		return err
	}
	out := a.InputKeyEvent(code)
	printOutput(c, out.Stdout, out.Stderr)
	return nil
})

var runStartActivity = withADB(func(c *cli.Context, a *device.ADB) error {
	if c.NArg() != 1 {
		return fmt.Errorf("component name is required (e.g., com.android.settings/.Settings)")
	}
	out := a.StartActivity(c.Args().First())
	printOutput(c, out.Stdout, out.Stderr)
	return nil
})

var runInputShown = withADB(func(c *cli.Context, a *device.ADB) error {
	fmt.Fprintln(stdout(c), a.InputShown())
	return nil
})
