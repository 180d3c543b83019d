package services

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listings-media-api/internal/domain/media"
	"listings-media-api/internal/infrastructure/codec"
)

func newValidator(t *testing.T) *IngestValidator {
	t.Helper()
	return NewIngestValidator(codec.NewRegistry(codec.DefaultEncodeOptions()), media.DefaultPolicies())
}

func encodeImage(t *testing.T, format imaging.Format, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 120, G: 30, B: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, format))
	return buf.Bytes()
}

func upload(class media.AssetClass, data []byte, declaredMIME string) *media.Upload {
	return &media.Upload{
		Reader:       bytes.NewReader(data),
		Filename:     "upload.bin",
		DeclaredMIME: declaredMIME,
		DeclaredSize: int64(len(data)),
		OwnerID:      7,
		Class:        class,
	}
}

func TestValidate_Rejections(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name     string
		up       *media.Upload
		wantKind media.ErrorKind
	}{
		{
			name:     "tiny avatar",
			up:       upload(media.ClassAvatar, encodeImage(t, imaging.JPEG, 10, 10), "image/jpeg"),
			wantKind: media.KindTooSmall,
		},
		{
			name:     "one pixel below the floor",
			up:       upload(media.ClassAvatar, encodeImage(t, imaging.PNG, 49, 49), "image/png"),
			wantKind: media.KindTooSmall,
		},
		{
			name: "declared size over the limit is rejected before reading",
			up: &media.Upload{
				Reader:       bytes.NewReader(nil),
				DeclaredSize: 11 << 20,
				Class:        media.ClassAvatar,
			},
			wantKind: media.KindTooLarge,
		},
		{
			name: "body larger than the photo limit",
			up: &media.Upload{
				Reader: bytes.NewReader(bytes.Repeat([]byte{0xAB}, (5<<20)+1)),
				Class:  media.ClassPropertyPhoto,
			},
			wantKind: media.KindTooLarge,
		},
		{
			name:     "plain text is not an image",
			up:       upload(media.ClassAvatar, []byte("hello, not an image"), "image/jpeg"),
			wantKind: media.KindUnsupportedFormat,
		},
		{
			name:     "png magic with garbage raster",
			up:       upload(media.ClassAvatar, append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x00}, 64)...), "image/png"),
			wantKind: media.KindCorrupt,
		},
		{
			name:     "empty body",
			up:       upload(media.ClassAvatar, nil, ""),
			wantKind: media.KindUnreadable,
		},
		{
			name:     "image posted as a property video",
			up:       upload(media.ClassPropertyVideo, encodeImage(t, imaging.JPEG, 100, 100), "video/mp4"),
			wantKind: media.KindUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Validate(tt.up)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, tt.wantKind, media.KindOf(err))
		})
	}
}

func TestValidate_AcceptsMinimumBox(t *testing.T) {
	v := newValidator(t)

	got, err := v.Validate(upload(media.ClassAvatar, encodeImage(t, imaging.JPEG, 50, 50), "image/jpeg"))
	require.NoError(t, err)
	assert.Equal(t, 50, got.Width)
	assert.Equal(t, 50, got.Height)
	assert.Equal(t, "image/jpeg", got.MIME)
	assert.Equal(t, "jpg", got.Ext)
	require.NotNil(t, got.Image)
}

func TestValidate_SniffedTypeWinsOverDeclared(t *testing.T) {
	v := newValidator(t)

	// a jpeg mislabeled as gif by the client
	got, err := v.Validate(upload(media.ClassAvatar, encodeImage(t, imaging.JPEG, 80, 80), "image/gif"))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", got.MIME)
	assert.Equal(t, "jpg", got.Ext)
}

func TestValidate_VideoPassesWithoutDecode(t *testing.T) {
	v := newValidator(t)

	// EBML magic sniffs as video/webm
	data := append([]byte{0x1A, 0x45, 0xDF, 0xA3}, bytes.Repeat([]byte{0x42}, 32)...)
	got, err := v.Validate(upload(media.ClassPropertyVideo, data, "video/webm"))
	require.NoError(t, err)
	assert.Equal(t, "video/webm", got.MIME)
	assert.Equal(t, "webm", got.Ext)
	assert.Nil(t, got.Image)
	assert.Equal(t, data, got.Data)
}

func TestValidate_PhotoHasNoMinimumBox(t *testing.T) {
	v := newValidator(t)

	got, err := v.Validate(upload(media.ClassPropertyPhoto, encodeImage(t, imaging.PNG, 10, 10), "image/png"))
	require.NoError(t, err)
	assert.Equal(t, 10, got.Width)
	assert.Equal(t, 10, got.Height)
}

func TestSniffMIME_OggAlias(t *testing.T) {
	data := append([]byte("OggS"), bytes.Repeat([]byte{0x00}, 32)...)
	assert.Equal(t, "video/ogg", sniffMIME(data))
}

func decodeBounds(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}
