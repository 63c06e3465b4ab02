// Package ocr locates known text in screenshots using an external OCR engine.
//
// Recognition is restricted to the characters of the text being searched for,
// which keeps short on-screen labels from being misread as look-alikes.
package ocr

import (
	"bytes"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder

	"github.com/devicelab-dev/dark-instruments/pkg/core"
	"github.com/devicelab-dev/dark-instruments/pkg/logger"
)

// Engine defaults.
const (
	DefaultLang = "eng"
	DefaultDPI  = 120
)

// Options configures a single recognition call.
type Options struct {
	Lang      string
	DPI       int
	Whitelist string // only these characters may be recognized
}

// Region is one recognized word and its bounding box in pixels.
type Region struct {
	Text   string
	Left   int
	Top    int
	Width  int
	Height int
}

// Center returns the middle of the bounding box, rounding down.
func (r Region) Center() (x, y int) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Engine recognizes text in a PNG-encoded image.
type Engine interface {
	Recognize(img []byte, opts Options) ([]Region, error)
}

// Image is a decoded image ready to be searched.
type Image struct {
	img    image.Image
	engine Engine
	lang   string
	dpi    int
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image, engine Engine) *Image {
	return &Image{img: img, engine: engine, lang: DefaultLang, dpi: DefaultDPI}
}

// FromBytes decodes an encoded image (PNG, JPEG, GIF, BMP, TIFF or WebP).
func FromBytes(data []byte, engine Engine) (*Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, core.ErrImageDecode.WithCause(err)
	}
	return FromImage(img, engine), nil
}

// FromFile reads and decodes the image at path.
func FromFile(path string, engine Engine) (*Image, error) {
	f, err := os.Open(path) //#nosec G304 -- caller-provided image path
	if err != nil {
		return nil, core.ErrImageDecode.WithCause(err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, core.ErrImageDecode.WithCause(err)
	}
	return FromImage(img, engine), nil
}

// WithLanguage overrides the recognition language and DPI. Zero values keep the defaults.
func (i *Image) WithLanguage(lang string, dpi int) *Image {
	if lang != "" {
		i.lang = lang
	}
	if dpi > 0 {
		i.dpi = dpi
	}
	return i
}

// Image returns the decoded image.
func (i *Image) Image() image.Image {
	return i.img
}

// ContainsText reports whether any recognized word equals text exactly.
// Engine failures also report false.
func (i *Image) ContainsText(text string) bool {
	regions, err := i.recognize(text)
	if err != nil {
		return false
	}
	for _, r := range regions {
		if r.Text == text {
			return true
		}
	}
	return false
}

// XYPositionsOf returns the centers of every word equal to text, as parallel
// x and y slices in the order the engine reported them. ok is false when the
// engine failed, which is different from ok with empty slices (no match).
func (i *Image) XYPositionsOf(text string) (xs, ys []int, ok bool) {
	regions, err := i.recognize(text)
	if err != nil {
		return nil, nil, false
	}
	xs, ys = []int{}, []int{}
	for _, r := range regions {
		if r.Text != text {
			continue
		}
		x, y := r.Center()
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, true
}

func (i *Image) recognize(text string) ([]Region, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, i.img); err != nil {
		logger.Error("ocr: encode image: %v", err)
		return nil, core.ErrImageDecode.WithCause(err)
	}

	regions, err := i.engine.Recognize(buf.Bytes(), Options{
		Lang:      i.lang,
		DPI:       i.dpi,
		Whitelist: text,
	})
	if err != nil {
		logger.Error("ocr: recognize %q: %v", text, err)
		return nil, err
	}
	logger.Debug("ocr: %d regions for %q", len(regions), text)
	return regions, nil
}
