// Package instruments is the entry point for a session: it carries the
// settings shared by every bridge handle and builds handles on demand.
package instruments

import (
	"image"

	"github.com/devicelab-dev/dark-instruments/pkg/config"
	"github.com/devicelab-dev/dark-instruments/pkg/device"
	"github.com/devicelab-dev/dark-instruments/pkg/ocr"
	"github.com/devicelab-dev/dark-instruments/pkg/ocr/tesseract"
	"github.com/devicelab-dev/dark-instruments/pkg/process"
)

// Args are the session-wide settings.
type Args struct {
	AdbPath string // empty searches PATH

	// Runner executes adb. Nil uses process.Default.
	Runner process.Runner
}

// Instruments builds bridge handles and OCR images from shared settings.
type Instruments struct {
	Args Args

	ocrEngine ocr.Engine
	ocrLang   string
	ocrDPI    int
}

// New creates an Instruments using Tesseract for OCR.
func New(args Args) *Instruments {
	return &Instruments{
		Args:      args,
		ocrEngine: tesseract.New(),
	}
}

// FromConfig creates an Instruments from a workspace configuration.
func FromConfig(cfg *config.Config) *Instruments {
	in := New(Args{AdbPath: cfg.AdbPath})
	in.ocrLang = cfg.OCR.Lang
	in.ocrDPI = cfg.OCR.DPI
	return in
}

// WithOCREngine replaces the OCR engine.
func (in *Instruments) WithOCREngine(engine ocr.Engine) *Instruments {
	in.ocrEngine = engine
	return in
}

// ADB connects to target, or to the single online device when target is empty.
func (in *Instruments) ADB(target string) (*device.ADB, error) {
	return device.New(device.Options{
		Path:   in.Args.AdbPath,
		Serial: target,
		Runner: in.Args.Runner,
	})
}

// OCRImage wraps a decoded image for text search.
func (in *Instruments) OCRImage(img image.Image) *ocr.Image {
	return ocr.FromImage(img, in.ocrEngine).WithLanguage(in.ocrLang, in.ocrDPI)
}

// OCRFile loads an image file for text search.
func (in *Instruments) OCRFile(path string) (*ocr.Image, error) {
	img, err := ocr.FromFile(path, in.ocrEngine)
	if err != nil {
		return nil, err
	}
	return img.WithLanguage(in.ocrLang, in.ocrDPI), nil
}

// OCRScreen captures the current screen of a and wraps it for text search.
func (in *Instruments) OCRScreen(a *device.ADB) (*ocr.Image, error) {
	img, err := a.CaptureScreenImage()
	if err != nil {
		return nil, err
	}
	return in.OCRImage(img), nil
}
