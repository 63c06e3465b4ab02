package device

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/devicelab-dev/dark-instruments/pkg/core"
)

// findADB locates the ADB binary. An explicit path is used as given; otherwise
// PATH is searched, then the platform-tools directory of the Android SDK.
// Whatever is chosen must exist on disk.
func findADB(explicit string) (string, error) {
	adbPath := explicit
	if adbPath == "" {
		adbPath = lookupADB()
	}
	if adbPath == "" {
		return "", core.ErrAdbNotFound
	}

	if _, err := os.Stat(adbPath); err != nil {
		return "", core.ErrAdbNotFound.WithCause(err)
	}
	return adbPath, nil
}

func lookupADB() string {
	// Try PATH first
	if path, err := exec.LookPath("adb"); err == nil {
		return path
	}

	if home := getAndroidHome(); home != "" {
		path := filepath.Join(home, "platform-tools", adbBinaryName())
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// getAndroidHome returns the Android SDK root from the environment.
func getAndroidHome() string {
	if home := os.Getenv("ANDROID_HOME"); home != "" {
		return home
	}
	if home := os.Getenv("ANDROID_SDK_ROOT"); home != "" {
		return home
	}
	return ""
}

func adbBinaryName() string {
	if runtime.GOOS == "windows" {
		return "adb.exe"
	}
	return "adb"
}
