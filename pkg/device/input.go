package device

import (
	"strconv"
	"strings"
)

// StartActivity launches an activity by component name, e.g. com.android.settings/.Settings.
func (a *ADB) StartActivity(component string) Output {
	return a.adb("shell", "am", "start", "-n", component)
}

// InputShown reports whether the soft keyboard is showing.
// The pipe is passed through to the device shell.
func (a *ADB) InputShown() bool {
	out := a.adb("shell", "dumpsys", "input_method", "|", "grep", "mInputShown")
	return strings.Contains(out.Stdout, "mInputShown=true")
}

// InputText types text into the focused field.
func (a *ADB) InputText(text string) Output {
	return a.adb("shell", "input", "text", text)
}

// InputKeyEvent sends a single key event.
func (a *ADB) InputKeyEvent(code KeyCode) Output {
	return a.adb("shell", "input", "keyevent", u32(code.Int()))
}

// InputTap taps at (x, y).
func (a *ADB) InputTap(x, y uint32) Output {
	return a.adb("shell", "input", "tap", u32(x), u32(y))
}

// InputSwipe swipes from (x1, y1) to (x2, y2) over duration milliseconds.
func (a *ADB) InputSwipe(x1, y1, x2, y2, duration uint32) Output {
	return a.adb(swipeArgs(x1, y1, x2, y2, duration)...)
}

func swipeArgs(x1, y1, x2, y2, duration uint32) []string {
	return []string{
		"shell", "input", "touchscreen", "swipe",
		u32(x1), u32(y1), u32(x2), u32(y2), u32(duration),
	}
}

func u32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
