package device

import (
	"time"

	"github.com/devicelab-dev/dark-instruments/pkg/logger"
	"github.com/devicelab-dev/dark-instruments/pkg/toolkit"
)

// Bounds of the settle delay after a server restart, in milliseconds.
const (
	restartSettleMinMs = 1000
	restartSettleMaxMs = 3000
)

// KillServer stops the adb server.
func (a *ADB) KillServer() {
	a.adbNoTarget("kill-server")
}

// StartServer starts the adb server. It is a no-op if one is running.
func (a *ADB) StartServer() {
	a.adbNoTarget("start-server")
}

// RestartServer kills and starts the adb server, then blocks for a random
// 1-3 seconds so the server can settle.
func (a *ADB) RestartServer() {
	a.KillServer()
	a.StartServer()

	settle := time.Duration(toolkit.RandRange(restartSettleMinMs, restartSettleMaxMs)) * time.Millisecond
	logger.Debug("adb server restarted, waiting %v", settle)
	a.sleep(settle)
}
