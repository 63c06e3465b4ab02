// Package tesseract implements ocr.Engine on top of the Tesseract library.
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng libtesseract-dev
//   - macOS: brew install tesseract
package tesseract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/devicelab-dev/dark-instruments/pkg/ocr"
)

// Tesseract configuration variable names.
const (
	varCharWhitelist = "tessedit_char_whitelist"
	varDPI           = "user_defined_dpi"
)

// Engine runs each recognition on a fresh gosseract client.
type Engine struct{}

// New returns a Tesseract engine.
func New() *Engine {
	return &Engine{}
}

// Recognize returns word-level regions for img.
func (e *Engine) Recognize(img []byte, opts ocr.Options) ([]ocr.Region, error) {
	client := gosseract.NewClient()
	defer client.Close()

	lang := opts.Lang
	if lang == "" {
		lang = ocr.DefaultLang
	}
	if err := client.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("set language %s: %w", lang, err)
	}
	if opts.DPI > 0 {
		if err := client.SetVariable(varDPI, strconv.Itoa(opts.DPI)); err != nil {
			return nil, fmt.Errorf("set dpi: %w", err)
		}
	}
	if opts.Whitelist != "" {
		if err := client.SetVariable(varCharWhitelist, opts.Whitelist); err != nil {
			return nil, fmt.Errorf("set whitelist: %w", err)
		}
	}
	if err := client.SetImageFromBytes(img); err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("recognize: %w", err)
	}
	return toRegions(boxes), nil
}

func toRegions(boxes []gosseract.BoundingBox) []ocr.Region {
	regions := make([]ocr.Region, 0, len(boxes))
	for _, b := range boxes {
		regions = append(regions, ocr.Region{
			Text:   strings.TrimSpace(b.Word),
			Left:   b.Box.Min.X,
			Top:    b.Box.Min.Y,
			Width:  b.Box.Dx(),
			Height: b.Box.Dy(),
		})
	}
	return regions
}
