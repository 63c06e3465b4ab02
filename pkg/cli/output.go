package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// colorsEnabled determines if ANSI colors should be used
var colorsEnabled = true

func init() {
	// Respect NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		colorsEnabled = false
		return
	}
	// Check if stdout is a terminal
	if fileInfo, err := os.Stdout.Stat(); err == nil {
		if (fileInfo.Mode() & os.ModeCharDevice) == 0 {
			colorsEnabled = false
		}
	}
}

// color returns the color code if colors are enabled, empty string otherwise
func color(c string) string {
	if colorsEnabled {
		return c
	}
	return ""
}

func stdout(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

func stderr(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}

// printStep prints a progress line to stderr so stdout stays machine-readable.
func printStep(c *cli.Context, msg string) {
	fmt.Fprintf(stderr(c), "  %s⏳ %s%s\n", color(colorCyan), msg, color(colorReset))
}

func printSuccess(c *cli.Context, msg string) {
	fmt.Fprintf(stderr(c), "  %s✓%s %s\n", color(colorGreen), color(colorReset), msg)
}

func printWarning(c *cli.Context, msg string) {
	fmt.Fprintf(stderr(c), "  %s⚠%s %s\n", color(colorYellow), color(colorReset), msg)
}

// printOutput echoes what adb printed for a pass-through command.
func printOutput(c *cli.Context, out, errOut string) {
	if out != "" {
		fmt.Fprintln(stdout(c), out)
	}
	if errOut != "" {
		fmt.Fprintf(stderr(c), "%s%s%s\n", color(colorRed), errOut, color(colorReset))
	}
}
