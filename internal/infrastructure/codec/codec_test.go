package codec

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, format imaging.Format, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 120, G: 80, B: 40, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, format))
	return buf.Bytes()
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry(DefaultEncodeOptions())

	for _, mime := range []string{"image/jpeg", "image/png", "image/gif", "image/webp"} {
		_, ok := r.Lookup(mime)
		assert.True(t, ok, mime)
	}

	_, ok := r.Lookup("video/mp4")
	assert.False(t, ok, "videos have no raster codec")

	ext, ok := r.ExtFor("video/mp4")
	require.True(t, ok)
	assert.Equal(t, "mp4", ext)
}

func TestImagingCodecRoundTrip(t *testing.T) {
	r := NewRegistry(DefaultEncodeOptions())

	tests := []struct {
		mime   string
		format imaging.Format
	}{
		{"image/jpeg", imaging.JPEG},
		{"image/png", imaging.PNG},
		{"image/gif", imaging.GIF},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			c, ok := r.Lookup(tt.mime)
			require.True(t, ok)

			data := encodeTestImage(t, tt.format, 64, 48)

			w, h, err := c.Probe(data)
			require.NoError(t, err)
			assert.Equal(t, 64, w)
			assert.Equal(t, 48, h)

			img, err := c.Decode(data)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, c.Encode(&buf, img))

			re, _, err := image.Decode(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, 64, re.Bounds().Dx())
			assert.Equal(t, 48, re.Bounds().Dy())
		})
	}
}

func TestWebpCodecRoundTripKeepsAlpha(t *testing.T) {
	r := NewRegistry(DefaultEncodeOptions())
	c, ok := r.Lookup("image/webp")
	require.True(t, ok)
	assert.Equal(t, "webp", c.Ext())

	// left half opaque, right half fully transparent
	src := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			px := color.NRGBA{R: 200, G: 30, B: 30, A: 255}
			if x >= 32 {
				px = color.NRGBA{}
			}
			src.SetNRGBA(x, y, px)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, src))

	w, h, err := c.Probe(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)

	re, err := c.Decode(buf.Bytes())
	require.NoError(t, err)

	_, _, _, a := re.At(8, 24).RGBA()
	assert.EqualValues(t, 0xffff, a, "opaque half must stay opaque")
	_, _, _, a = re.At(56, 24).RGBA()
	assert.Zero(t, a, "transparent half must stay transparent")
}

func TestProbeRejectsGarbage(t *testing.T) {
	r := NewRegistry(DefaultEncodeOptions())
	c, ok := r.Lookup("image/png")
	require.True(t, ok)

	_, _, err := c.Probe([]byte("\x89PNG\r\n\x1a\nthis is not a real png"))
	assert.Error(t, err)
}
