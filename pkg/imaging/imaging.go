// Package imaging turns uploaded profile photos into inline data URLs.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	MaxUploadBytes = 5 << 20
	MaxDimension   = 400
	JPEGQuality    = 85
)

var (
	ErrTooLarge          = errors.New("image exceeds the 5 MB limit")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Magic byte signatures for the accepted formats
var magicBytes = map[string][][]byte{
	"image/jpeg": {{0xFF, 0xD8, 0xFF}},
	"image/png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	"image/gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}},
	"image/webp": {{0x52, 0x49, 0x46, 0x46}},
}

// DetectType returns the MIME type matched by the file header.
func DetectType(data []byte) (string, error) {
	for mime, signatures := range magicBytes {
		for _, sig := range signatures {
			if bytes.HasPrefix(data, sig) {
				if mime == "image/webp" && (len(data) < 12 || string(data[8:12]) != "WEBP") {
					continue
				}
				return mime, nil
			}
		}
	}
	return "", ErrUnsupportedFormat
}

// ToDataURL validates, downsizes and re-encodes an image as a JPEG data URL.
func ToDataURL(data []byte) (string, error) {
	if len(data) > MaxUploadBytes {
		return "", ErrTooLarge
	}
	if _, err := DetectType(data); err != nil {
		return "", err
	}

	out, err := Compress(data, MaxDimension, JPEGQuality)
	if err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(out), nil
}

// Compress scales the image so its longest side is at most maxDimension.
func Compress(data []byte, maxDimension int, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image (format: %s): %v", ErrUnsupportedFormat, format, err)
	}

	bounds := img.Bounds()
	width, height := fit(bounds.Dx(), bounds.Dy(), maxDimension)

	resized := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// fit keeps the aspect ratio while bounding the longest side.
func fit(width, height, max int) (int, int) {
	if width <= max && height <= max {
		return width, height
	}
	if width > height {
		h := height * max / width
		if h < 1 {
			h = 1
		}
		return max, h
	}
	w := width * max / height
	if w < 1 {
		w = 1
	}
	return w, max
}
