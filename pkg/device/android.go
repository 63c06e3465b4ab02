// Package device drives an Android device through the adb command-line tool.
package device

import (
	"strings"
	"time"

	"github.com/devicelab-dev/dark-instruments/pkg/core"
	"github.com/devicelab-dev/dark-instruments/pkg/logger"
	"github.com/devicelab-dev/dark-instruments/pkg/process"
)

// activeMarker is the state adb prints for a device ready to take commands.
const activeMarker = "device"

// Options configures New.
type Options struct {
	// Path to the adb binary. Empty means search PATH, then the Android SDK.
	Path string
	// Serial of the target device. Empty means exactly one device must be online.
	Serial string
	// Runner executes adb. Defaults to process.Default.
	Runner process.Runner
}

// ADB is a handle on the adb binary scoped to one target device.
// Its path and serial never change after New returns.
type ADB struct {
	path   string
	serial string
	runner process.Runner
	sleep  func(time.Duration)
}

// Output is the trimmed text adb wrote for a pass-through command.
type Output struct {
	Stdout string
	Stderr string
}

// Entry is one line of "adb devices".
type Entry struct {
	Serial string
	State  string
}

// New resolves the adb binary, confirms the target is reachable and starts
// the adb server. It returns core.ErrAdbNotFound, core.ErrTargetNotOnline or
// core.ErrNoExclusiveTargetOnline when the handshake fails.
func New(opts Options) (*ADB, error) {
	adbPath, err := findADB(opts.Path)
	if err != nil {
		logger.Error("adb lookup failed: %v", err)
		return nil, err
	}

	runner := opts.Runner
	if runner == nil {
		runner = process.Default
	}

	a := &ADB{
		path:   adbPath,
		serial: opts.Serial,
		runner: runner,
		sleep:  time.Sleep,
	}

	if a.serial != "" {
		logger.Info("Connecting to Android device: %s", a.serial)
		if !a.HaveTarget(a.serial) {
			return nil, core.ErrTargetNotOnline.WithDetails(map[string]interface{}{"serial": a.serial})
		}
	} else {
		logger.Info("Auto-detecting Android device...")
		if !a.HaveActiveTarget() {
			return nil, core.ErrNoExclusiveTargetOnline
		}
	}

	a.StartServer()
	return a, nil
}

// Path returns the resolved adb binary path.
func (a *ADB) Path() string {
	return a.path
}

// Serial returns the target serial, or empty when the single online device is used.
func (a *ADB) Serial() string {
	return a.serial
}

// HaveTarget reports whether serial appears anywhere in the "adb devices" output.
func (a *ADB) HaveTarget(serial string) bool {
	return hasTarget(a.devicesOutput(), serial)
}

// HaveActiveTarget reports whether exactly one device is in the "device" state.
func (a *ADB) HaveActiveTarget() bool {
	return hasExclusiveActiveTarget(a.devicesOutput())
}

// Devices returns every device line reported by "adb devices".
func (a *ADB) Devices() []Entry {
	return parseDevices(a.devicesOutput())
}

// List resolves adb and returns every device it reports, without requiring
// any particular device to be online.
func List(opts Options) ([]Entry, error) {
	adbPath, err := findADB(opts.Path)
	if err != nil {
		return nil, err
	}
	runner := opts.Runner
	if runner == nil {
		runner = process.Default
	}
	out, _ := process.Output(runner, adbPath, "devices")
	return parseDevices(out), nil
}

func (a *ADB) devicesOutput() string {
	out, _ := a.adbNoTarget("devices")
	return out
}

// hasTarget matches by substring, so a partial serial is accepted.
func hasTarget(devices, serial string) bool {
	return strings.Contains(devices, serial)
}

// hasExclusiveActiveTarget stops scanning at the second match.
func hasExclusiveActiveTarget(devices string) bool {
	matched := 0
	for _, line := range strings.Split(devices, "\n") {
		if !strings.HasSuffix(strings.TrimSpace(line), activeMarker) || len(strings.Fields(line)) < 2 {
			continue
		}
		matched++
		if matched == 2 {
			break
		}
	}
	return matched == 1
}

func parseDevices(devices string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(devices, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of devices") || strings.HasPrefix(line, "*") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		entries = append(entries, Entry{Serial: parts[0], State: parts[1]})
	}
	return entries
}

// targetArgs prefixes "-s <serial>" when the handle has a serial.
func (a *ADB) targetArgs(args ...string) []string {
	if a.serial == "" {
		return args
	}
	cmdArgs := make([]string, 0, len(args)+2)
	cmdArgs = append(cmdArgs, "-s", a.serial)
	return append(cmdArgs, args...)
}

func (a *ADB) adbNoTarget(args ...string) (string, string) {
	return process.Output(a.runner, a.path, args...)
}

// adb executes a command scoped to the target device.
func (a *ADB) adb(args ...string) Output {
	stdout, stderr := a.adbNoTarget(a.targetArgs(args...)...)
	return Output{Stdout: stdout, Stderr: stderr}
}

// adbBytes executes a command scoped to the target device and returns raw stdout.
func (a *ADB) adbBytes(args ...string) []byte {
	return process.Bytes(a.runner, a.path, a.targetArgs(args...)...)
}
