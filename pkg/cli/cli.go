// Package cli provides the command-line interface for dark-instruments.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/dark-instruments/pkg/config"
	"github.com/devicelab-dev/dark-instruments/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

const configKey = "config"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "adb",
		Usage:   "Path to the adb binary (default: search PATH, then $ANDROID_HOME/platform-tools)",
		EnvVars: []string{"ADB_PATH"},
	},
	&cli.StringFlag{
		Name:    "device",
		Aliases: []string{"s", "serial"},
		Usage:   "Serial of the target device (default: the only online device)",
		EnvVars: []string{"ANDROID_SERIAL"},
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Config file (default: config.yaml or config.yml in the working directory)",
		EnvVars: []string{"DARK_INSTRUMENTS_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "log-file",
		Usage:   "Write a log to this file",
		EnvVars: []string{"DARK_INSTRUMENTS_LOG"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Log every adb invocation",
		EnvVars: []string{"DARK_INSTRUMENTS_VERBOSE"},
	},
	&cli.BoolFlag{
		Name:  "no-ansi",
		Usage: "Disable ANSI colors",
	},
}

// Commands are the top-level subcommands.
var Commands = []*cli.Command{
	devicesCommand,
	sizeCommand,
	screenshotCommand,
	screenSumCommand,
	tapCommand,
	swipeCommand,
	textCommand,
	keyCommand,
	startActivityCommand,
	inputShownCommand,
	serverCommand,
	ocrCommand,
}

// NewApp builds the CLI application.
func NewApp() *cli.App {
	return &cli.App{
		Name:    "dark-instruments",
		Usage:   "Drive an Android device through adb and find text on its screen",
		Version: Version,
		Description: `dark-instruments wraps adb for input injection, screen capture and
activity launch, and uses Tesseract to locate text in screenshots.

Examples:
  dark-instruments size
  dark-instruments -s emulator-5554 tap 540 1200
  dark-instruments swipe 540 1800 540 400 --duration 300
  dark-instruments key HOME
  dark-instruments ocr find "Settings"`,
		Flags:    GlobalFlags,
		Commands: Commands,
		Before:   setup,
		After:    teardown,
	}
}

// Execute runs the CLI.
func Execute() {
	if err := NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the workspace config and starts logging.
func setup(c *cli.Context) error {
	var (
		cfg *config.Config
		err error
	)
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromDir(".")
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags win over the config file.
	if v := c.String("adb"); v != "" {
		cfg.AdbPath = v
	}
	if v := c.String("device"); v != "" {
		cfg.Device = v
	}
	if v := c.String("log-file"); v != "" {
		cfg.LogFile = v
	}
	if c.Bool("verbose") {
		cfg.Verbose = true
	}
	if c.Bool("no-ansi") {
		colorsEnabled = false
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[configKey] = cfg

	// Verbose runs always keep a log.
	if cfg.Verbose && cfg.LogFile == "" {
		dir := config.GetLogsDir()
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create logs dir: %w", err)
		}
		cfg.LogFile = filepath.Join(dir, "dark-instruments.log")
	}

	logger.SetVerbose(cfg.Verbose)
	if cfg.LogFile != "" {
		if err := logger.Init(cfg.LogFile); err != nil {
			return err
		}
		logger.Info("dark-instruments %s", Version)
	}
	return nil
}

func teardown(_ *cli.Context) error {
	logger.Close()
	return nil
}

// configFrom returns the config stored by setup.
func configFrom(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}
