// Package photo decodes uploaded images, resizes them to a fixed size and
// stores them as JPEG files.
package photo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Ext is the extension of every stored file.
const Ext = ".jpeg"

const quality = 90

var (
	ErrNotImage = errors.New("not an image")
	ErrBadSize  = errors.New("invalid target size")
)

// Size is a target size in pixels.
type Size struct {
	Width  int
	Height int
}

// Processor resizes images into Dir.
type Processor struct {
	dir string
}

// New creates a Processor storing files in dir, creating it when missing.
func New(dir string) (*Processor, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &Processor{dir: dir}, nil
}

// Dir returns the storage directory.
func (p *Processor) Dir() string {
	return p.dir
}

// Save resizes the image read from r to size and writes it as name + Ext.
// It returns the stored file name (without directory).
func (p *Processor) Save(r io.Reader, size Size, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if !IsImage(data) {
		return "", ErrNotImage
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", ErrNotImage
	}

	dst, err := Cover(src, size)
	if err != nil {
		return "", err
	}

	filename := filepath.Base(name) + Ext
	f, err := os.Create(filepath.Join(p.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, dst, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	return filename, nil
}

// IsImage sniffs the content type of data.
func IsImage(data []byte) bool {
	return strings.HasPrefix(http.DetectContentType(data), "image/")
}

// Cover scales src to fill size and crops the overflow around the centre.
func Cover(src image.Image, size Size) (image.Image, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, ErrBadSize
	}

	b := src.Bounds()
	sw, sh := b.Dx(), b.Dy()
	if sw == 0 || sh == 0 {
		return nil, ErrNotImage
	}

	// Crop the source to the target aspect ratio first.
	var crop image.Rectangle
	if sw*size.Height > sh*size.Width {
		w := sh * size.Width / size.Height
		x0 := b.Min.X + (sw-w)/2
		crop = image.Rect(x0, b.Min.Y, x0+w, b.Max.Y)
	} else {
		h := sw * size.Height / size.Width
		y0 := b.Min.Y + (sh-h)/2
		crop = image.Rect(b.Min.X, y0, b.Max.X, y0+h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Over, nil)
	return dst, nil
}
