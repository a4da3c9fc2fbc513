// Package media holds the upload image pipeline: a single shrink-only resize
// step applied in place to freshly uploaded files.
package media

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

const (
	// MaxWidth and MaxHeight bound the stored image dimensions.
	MaxWidth  = 1200
	MaxHeight = 800

	jpegQuality = 85
)

// ResizeToFit decodes the image at path, downsamples it so it fits within
// maxW x maxH while keeping the original aspect ratio, and re-encodes it over
// the original file. Images already inside the box are re-encoded unscaled;
// nothing is ever upscaled. An error means the file is unusable and should be
// deleted by the caller.
func ResizeToFit(path string, maxW, maxH int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	scale := 1.0
	if sx := float64(maxW) / float64(w); sx < scale {
		scale = sx
	}
	if sy := float64(maxH) / float64(h); sy < scale {
		scale = sy
	}

	if scale < 1.0 {
		newW := int(float64(w)*scale + 0.5)
		newH := int(float64(h)*scale + 0.5)
		if newW < 1 {
			newW = 1
		}
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}
