package toolkit

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/devicelab-dev/dark-instruments/pkg/core"
)

func TestMD5OfBytes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},
	}

	for _, tt := range tests {
		if got := MD5OfBytes([]byte(tt.input)); got != tt.want {
			t.Errorf("MD5OfBytes(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestMD5OfBytes_SingleByteChange(t *testing.T) {
	a := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	b := []byte{0x89, 'P', 'N', 'G', 1, 2, 4}

	if MD5OfBytes(a) != MD5OfBytes(append([]byte(nil), a...)) {
		t.Error("identical bytes produced different sums")
	}
	if MD5OfBytes(a) == MD5OfBytes(b) {
		t.Error("single byte change did not change the sum")
	}
}

func TestMD5OfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.bin")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := MD5OfFile(path)
	if err != nil {
		t.Fatalf("MD5OfFile failed: %v", err)
	}
	if got != "900150983cd24fb0d6963f7d28e17f72" {
		t.Errorf("MD5OfFile = %s", got)
	}

	if _, err := MD5OfFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSavePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "capture.png")

	got, err := SavePNG(img, path)
	if err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	if got != path {
		t.Errorf("SavePNG path = %s, want %s", got, path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("saved file is not a PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Errorf("decoded bounds = %v", decoded.Bounds())
	}
}

func TestSavePNG_BadPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	_, err := SavePNG(img, filepath.Join(t.TempDir(), "no", "such", "dir", "x.png"))
	if !errors.Is(err, core.ErrImageSave) {
		t.Errorf("expected ErrImageSave, got %v", err)
	}
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("expected underlying *os.PathError, got %T", errors.Unwrap(err))
	}
}

func TestRandRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandRange(1000, 3000)
		if v < 1000 || v > 3000 {
			t.Fatalf("RandRange(1000, 3000) = %d out of bounds", v)
		}
	}
	if v := RandRange(7, 7); v != 7 {
		t.Errorf("RandRange(7, 7) = %d", v)
	}
}

func TestRandRange_PanicsOnInvertedBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when min > max")
		}
	}()
	RandRange(5, 4)
}
