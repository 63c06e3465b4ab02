package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_BeforeInitIsSilent(t *testing.T) {
	Close()
	Info("nothing %d", 1)
	if GetWriter() != io.Discard {
		t.Error("expected io.Discard before Init")
	}
}

func TestLogger_WritesLevels(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()
	defer SetVerbose(false)

	Info("connected to %s", "emulator-5554")
	Debug("hidden debug")
	SetVerbose(true)
	Debug("EXEC: program=%s", "adb")
	Warn("careful")
	Error("boom: %v", "bad")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{"connected to emulator-5554", "EXEC: program=adb", "careful", "boom: bad"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hidden debug") {
		t.Errorf("debug line logged at info level:\n%s", out)
	}
}

func TestInit_InvalidPath(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "run.log"))
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}
