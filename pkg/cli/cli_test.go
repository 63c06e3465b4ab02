package cli

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devicelab-dev/dark-instruments/pkg/config"
	"github.com/devicelab-dev/dark-instruments/pkg/core"
	"github.com/devicelab-dev/dark-instruments/pkg/ocr"
	"github.com/devicelab-dev/dark-instruments/pkg/process/mock"
)

const oneDevice = "List of devices attached\nemulator-5554\tdevice\n"

type fakeEngine struct {
	regions []ocr.Region
	err     error
}

func (f *fakeEngine) Recognize(_ []byte, _ ocr.Options) ([]ocr.Region, error) {
	return f.regions, f.err
}

func fakeADBPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adb")
	if err := os.WriteFile(path, nil, 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 6, 6))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// runApp runs the CLI against a mock adb and returns stdout.
func runApp(t *testing.T, runner *mock.Runner, args ...string) (string, error) {
	t.Helper()
	sessionRunner = runner
	t.Cleanup(func() {
		sessionRunner = nil
		sessionEngine = nil
	})

	app := NewApp()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut

	argv := append([]string{"dark-instruments", "--no-ansi", "--adb", fakeADBPath(t)}, args...)
	err := app.Run(argv)
	return out.String(), err
}

func TestGlobalFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, f := range GlobalFlags {
		for _, name := range f.Names() {
			flagNames[name] = true
		}
	}

	requiredFlags := []string{"adb", "device", "s", "config", "log-file", "verbose", "no-ansi"}
	for _, name := range requiredFlags {
		if !flagNames[name] {
			t.Errorf("expected flag %q to be defined", name)
		}
	}
}

func TestCommands_Registered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range NewApp().Commands {
		names[cmd.Name] = true
	}
	for _, want := range []string{"devices", "size", "screenshot", "screensum", "tap", "swipe", "text", "key", "start-activity", "input-shown", "server", "ocr"} {
		if !names[want] {
			t.Errorf("command %q not registered", want)
		}
	}
}

func TestDevicesCommand(t *testing.T) {
	runner := mock.New().On("devices", "List of devices attached\nemulator-5554\tdevice\nR5CR50ABCDE\tunauthorized\n")

	out, err := runApp(t, runner, "devices")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "emulator-5554\tdevice\nR5CR50ABCDE\tunauthorized\n" {
		t.Errorf("output = %q", out)
	}
}

func TestSizeCommand(t *testing.T) {
	runner := mock.New().
		On("devices", oneDevice).
		On("-s emulator-5554 shell wm size", "Physical size: 1080x2400")

	out, err := runApp(t, runner, "-s", "emulator-5554", "size")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1080x2400\n" {
		t.Errorf("output = %q, want 1080x2400", out)
	}
}

func TestSizeCommand_Unavailable(t *testing.T) {
	runner := mock.New().On("devices", oneDevice)

	_, err := runApp(t, runner, "size")
	if !errors.Is(err, core.ErrDisplaySize) {
		t.Errorf("expected ErrDisplaySize, got %v", err)
	}
}

func TestConnect_NoExclusiveTarget(t *testing.T) {
	runner := mock.New().On("devices", "List of devices attached\na\tdevice\nb\tdevice\n")

	_, err := runApp(t, runner, "tap", "1", "2")
	if !errors.Is(err, core.ErrNoExclusiveTargetOnline) {
		t.Errorf("expected ErrNoExclusiveTargetOnline, got %v", err)
	}
	if len(runner.Calls) != 1 {
		t.Errorf("expected only the devices query, got %v", runner.Lines())
	}
}

func TestInputCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"tap", []string{"tap", "100", "200"}, "shell input tap 100 200"},
		{"swipe default duration", []string{"swipe", "10", "20", "30", "40"}, "shell input touchscreen swipe 10 20 30 40 300"},
		{"swipe duration", []string{"swipe", "--duration", "500", "10", "20", "30", "40"}, "shell input touchscreen swipe 10 20 30 40 500"},
		{"text", []string{"text", "hello", "world"}, "shell input text hello world"},
		{"key by name", []string{"key", "home"}, "shell input keyevent 3"},
		{"key by number", []string{"key", "66"}, "shell input keyevent 66"},
		{"start activity", []string{"start-activity", "com.android.settings/.Settings"}, "shell am start -n com.android.settings/.Settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := mock.New().On("devices", oneDevice)
			if _, err := runApp(t, runner, tt.args...); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := runner.Last().Line(); got != tt.want {
				t.Errorf("adb args = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInputCommands_BadArgs(t *testing.T) {
	tests := [][]string{
		{"tap", "100"},
		{"tap", "-5", "10"},
		{"tap", "x", "10"},
		{"swipe", "1", "2", "3"},
		{"key", "NOT_A_KEY"},
		{"text"},
		{"start-activity"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			runner := mock.New().On("devices", oneDevice)
			if _, err := runApp(t, runner, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestInputShownCommand(t *testing.T) {
	runner := mock.New().
		On("devices", oneDevice).
		On("shell dumpsys input_method | grep mInputShown", "mInputShown=true")

	out, err := runApp(t, runner, "input-shown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\n" {
		t.Errorf("output = %q, want true", out)
	}
}

func TestScreenshotCommand(t *testing.T) {
	runner := mock.New().
		On("devices", oneDevice).
		OnBytes("exec-out screencap -p", pngBytes(t))
	path := filepath.Join(t.TempDir(), "shot.png")

	out, err := runApp(t, runner, "screenshot", "-o", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("output = %q, want %q", out, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot not written: %v", err)
	}
}

func TestScreenshotCommand_DefaultName(t *testing.T) {
	home := t.TempDir()
	config.ResetHome()
	t.Setenv("DARK_INSTRUMENTS_HOME", home)
	defer config.ResetHome()

	runner := mock.New().
		On("devices", oneDevice).
		OnBytes("exec-out screencap -p", pngBytes(t))

	out, err := runApp(t, runner, "screenshot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := strings.TrimSpace(out)
	if filepath.Dir(path) != filepath.Join(home, "screenshots") {
		t.Errorf("screenshot dir = %s", filepath.Dir(path))
	}
	if !strings.HasPrefix(filepath.Base(path), "screenshot-") || filepath.Ext(path) != ".png" {
		t.Errorf("unexpected name %s", filepath.Base(path))
	}
}

func TestScreenSumCommand(t *testing.T) {
	runner := mock.New().
		On("devices", oneDevice).
		OnBytes("exec-out screencap -p", []byte("abc"))

	out, err := runApp(t, runner, "screensum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "900150983cd24fb0d6963f7d28e17f72\n" {
		t.Errorf("output = %q", out)
	}

	runner = mock.New().On("devices", oneDevice)
	if _, err := runApp(t, runner, "screensum"); !errors.Is(err, core.ErrScreenSum) {
		t.Errorf("expected ErrScreenSum, got %v", err)
	}
}

func TestServerCommands(t *testing.T) {
	runner := mock.New().On("devices", oneDevice)
	if _, err := runApp(t, runner, "server", "kill"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := runner.Last().Line(); got != "kill-server" {
		t.Errorf("last call = %q, want kill-server", got)
	}
}

func TestOCRFind_Screen(t *testing.T) {
	runner := mock.New().
		On("devices", oneDevice).
		OnBytes("exec-out screencap -p", pngBytes(t))
	sessionEngine = &fakeEngine{regions: []ocr.Region{
		{Text: "OK", Left: 10, Top: 20, Width: 30, Height: 40},
		{Text: "OK", Left: 0, Top: 0, Width: 2, Height: 2},
	}}

	out, err := runApp(t, runner, "ocr", "find", "OK")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "25,40\n1,1\n" {
		t.Errorf("output = %q", out)
	}
}

func TestOCRContains_ImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.png")
	if err := os.WriteFile(path, pngBytes(t), 0644); err != nil {
		t.Fatal(err)
	}
	sessionEngine = &fakeEngine{regions: []ocr.Region{{Text: "Settings"}}}

	runner := mock.New()
	out, err := runApp(t, runner, "ocr", "contains", "--image", path, "Settings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\n" {
		t.Errorf("output = %q, want true", out)
	}
	if len(runner.Calls) != 0 {
		t.Errorf("expected no adb calls with --image, got %v", runner.Lines())
	}
}

func TestOCRFind_EngineFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.png")
	if err := os.WriteFile(path, pngBytes(t), 0644); err != nil {
		t.Fatal(err)
	}
	sessionEngine = &fakeEngine{err: errors.New("no tessdata")}

	if _, err := runApp(t, mock.New(), "ocr", "find", "--image", path, "OK"); err == nil {
		t.Error("expected error when OCR fails")
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("device: emulator-5554\n"), 0644); err != nil {
		t.Fatal(err)
	}
	runner := mock.New().On("devices", oneDevice)

	if _, err := runApp(t, runner, "--config", cfgPath, "tap", "1", "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := runner.Last().Line(); got != "-s emulator-5554 shell input tap 1 2" {
		t.Errorf("adb args = %q", got)
	}
}

func TestConfigFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("device: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := runApp(t, mock.New(), "--config", cfgPath, "devices")
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	runner := mock.New().On("devices", oneDevice)

	if _, err := runApp(t, runner, "--log-file", logPath, "--verbose", "tap", "1", "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log not written: %v", err)
	}
	if !strings.Contains(string(data), "Auto-detecting Android device") {
		t.Errorf("log missing connect line:\n%s", data)
	}
}

func TestVerbose_DefaultLogFile(t *testing.T) {
	home := t.TempDir()
	config.ResetHome()
	t.Setenv("DARK_INSTRUMENTS_HOME", home)
	defer config.ResetHome()

	runner := mock.New().On("devices", oneDevice)
	if _, err := runApp(t, runner, "--verbose", "tap", "1", "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, "logs", "dark-instruments.log"))
	if err != nil {
		t.Fatalf("default log not written: %v", err)
	}
	if !strings.Contains(string(data), "Auto-detecting Android device") {
		t.Errorf("log missing connect line:\n%s", data)
	}
}
