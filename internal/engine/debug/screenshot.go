// Package debug provides debugging aids for the renderer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ScreenshotCapture writes the framebuffer to timestamped PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time

	last  string
	count int
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// CaptureFramebuffer reads the current GL back buffer and saves it.
// Must run on the GL thread before the buffers are swapped.
func (sc *ScreenshotCapture) CaptureFramebuffer(width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}

	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	return sc.CaptureFromPixels(pixels, width, height)
}

// CaptureFromPixels saves raw RGBA pixels read bottom row first, as
// glReadPixels returns them.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := FlipRows(pixels, width, height)
	if err != nil {
		return "", err
	}
	return sc.CaptureFromImage(img)
}

// FlipRows copies bottom-up RGBA pixels into a top-down image.
func FlipRows(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// CaptureFromImage saves img and returns the file name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.nextFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

// nextFilename returns prefix_timestamp.png, adding a counter when several
// shots land in the same second.
func (sc *ScreenshotCapture) nextFilename() string {
	stamp := sc.now().Format("2006-01-02_15-04-05")

	name := fmt.Sprintf("%s_%s", sc.prefix, stamp)
	if name == sc.last {
		sc.count++
	} else {
		sc.last, sc.count = name, 0
	}
	if sc.count > 0 {
		name = fmt.Sprintf("%s_%d", name, sc.count)
	}

	return filepath.Join(sc.outputDir, name+".png")
}
