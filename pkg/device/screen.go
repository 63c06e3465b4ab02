package device

import (
	"bytes"
	"image"
	_ "image/png" // screencap -p output
	"strconv"
	"strings"

	"github.com/devicelab-dev/dark-instruments/pkg/core"
	"github.com/devicelab-dev/dark-instruments/pkg/toolkit"
)

// DisplaySize is the physical screen size in device pixels.
type DisplaySize struct {
	Width  uint32
	Height uint32
}

// DisplaySize queries "wm size". It is not cached.
func (a *ADB) DisplaySize() (DisplaySize, error) {
	out := a.adb("shell", "wm", "size")
	return parseDisplaySize(out.Stdout)
}

// parseDisplaySize keeps only digits and 'x', then reads the first two
// 'x'-separated fields, so "Physical size: 1080x2400" gives 1080, 2400.
func parseDisplaySize(out string) (DisplaySize, error) {
	kept := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == 'x' {
			return r
		}
		return -1
	}, out)

	fields := strings.Split(kept, "x")
	if len(fields) < 2 {
		return DisplaySize{}, core.ErrDisplaySize
	}
	width, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return DisplaySize{}, core.ErrDisplaySize.WithCause(err)
	}
	height, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return DisplaySize{}, core.ErrDisplaySize.WithCause(err)
	}
	return DisplaySize{Width: uint32(width), Height: uint32(height)}, nil
}

// CaptureScreenBytes returns the PNG written by "exec-out screencap -p".
func (a *ADB) CaptureScreenBytes() ([]byte, error) {
	out := a.adbBytes("exec-out", "screencap", "-p")
	if len(out) == 0 {
		return nil, core.ErrCaptureScreen.WithMessage("failed to capture screen: adb returned no data")
	}
	return out, nil
}

// CaptureScreenImage captures the screen and decodes it.
func (a *ADB) CaptureScreenImage() (image.Image, error) {
	data, err := a.CaptureScreenBytes()
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, core.ErrCaptureScreen.WithCause(err)
	}
	return img, nil
}

// CaptureScreenFile captures the screen and saves it as a PNG named fileName.
// It returns the path written.
func (a *ADB) CaptureScreenFile(fileName string) (string, error) {
	img, err := a.CaptureScreenImage()
	if err != nil {
		return "", err
	}
	path, err := toolkit.SavePNG(img, fileName)
	if err != nil {
		return "", core.ErrCaptureScreen.WithCause(err)
	}
	return path, nil
}

// ScreenSum returns the hex MD5 of the captured screen bytes.
func (a *ADB) ScreenSum() (string, error) {
	data, err := a.CaptureScreenBytes()
	if err != nil {
		return "", core.ErrScreenSum.WithCause(err)
	}
	return toolkit.MD5OfBytes(data), nil
}
