package toolkit

import (
	"image"
	"image/png"
	"os"

	"github.com/devicelab-dev/dark-instruments/pkg/core"
)

// SavePNG encodes img as PNG into the file name and returns the path written.
// Any failure, whether creating the file or encoding, is reported as
// core.ErrImageSave with the underlying error as cause.
func SavePNG(img image.Image, name string) (string, error) {
	f, err := os.Create(name) //#nosec G304 -- caller-provided output path
	if err != nil {
		return "", core.ErrImageSave.WithCause(err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", core.ErrImageSave.WithCause(err)
	}
	if err := f.Close(); err != nil {
		return "", core.ErrImageSave.WithCause(err)
	}

	return name, nil
}
