package imaging_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"cvcraft-backend/pkg/imaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDetectType(t *testing.T) {
	mime, err := imaging.DetectType(pngBytes(t, 2, 2))
	assert.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	_, err = imaging.DetectType([]byte("%PDF-1.7"))
	assert.ErrorIs(t, err, imaging.ErrUnsupportedFormat)

	_, err = imaging.DetectType([]byte("RIFF0000WAVE"))
	assert.ErrorIs(t, err, imaging.ErrUnsupportedFormat)
}

func TestToDataURL(t *testing.T) {
	t.Run("large image is downsized to a jpeg data url", func(t *testing.T) {
		url, err := imaging.ToDataURL(pngBytes(t, 800, 600))
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"))

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/jpeg;base64,"))
		require.NoError(t, err)
		cfg, err := jpeg.DecodeConfig(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, 400, cfg.Width)
		assert.Equal(t, 300, cfg.Height)
	})

	t.Run("small image keeps its size", func(t *testing.T) {
		url, err := imaging.ToDataURL(pngBytes(t, 40, 80))
		require.NoError(t, err)
		raw, _ := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/jpeg;base64,"))
		cfg, err := jpeg.DecodeConfig(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, 40, cfg.Width)
		assert.Equal(t, 80, cfg.Height)
	})

	t.Run("rejects non images and oversized uploads", func(t *testing.T) {
		_, err := imaging.ToDataURL([]byte("not an image"))
		assert.ErrorIs(t, err, imaging.ErrUnsupportedFormat)

		_, err = imaging.ToDataURL(make([]byte, imaging.MaxUploadBytes+1))
		assert.ErrorIs(t, err, imaging.ErrTooLarge)
	})
}
