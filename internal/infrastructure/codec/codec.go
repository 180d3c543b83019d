package codec

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"

	"listings-media-api/internal/application/ports"
)

// EncodeOptions fixes the per-format output quality. One configuration
// surface, not per-call-site constants.
type EncodeOptions struct {
	JPEGQuality    int
	PNGCompression png.CompressionLevel
	WebPQuality    float32
}

func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		JPEGQuality:    92,
		PNGCompression: png.BestCompression,
		WebPQuality:    92,
	}
}

// Registry maps content-sniffed MIME types to codecs.
type Registry struct {
	codecs map[string]ports.Codec
	exts   map[string]string
}

func NewRegistry(opts EncodeOptions) *Registry {
	return &Registry{
		codecs: map[string]ports.Codec{
			"image/jpeg": &imagingCodec{format: imaging.JPEG, ext: "jpg",
				encodeOpts: []imaging.EncodeOption{imaging.JPEGQuality(opts.JPEGQuality)}},
			"image/png": &imagingCodec{format: imaging.PNG, ext: "png",
				encodeOpts: []imaging.EncodeOption{imaging.PNGCompressionLevel(opts.PNGCompression)}},
			"image/gif":  &imagingCodec{format: imaging.GIF, ext: "gif"},
			"image/webp": &webpCodec{quality: opts.WebPQuality},
		},
		exts: map[string]string{
			"image/jpeg": "jpg",
			"image/png":  "png",
			"image/gif":  "gif",
			"image/webp": "webp",
			"video/mp4":  "mp4",
			"video/webm": "webm",
			"video/ogg":  "ogg",
		},
	}
}

func (r *Registry) Lookup(mime string) (ports.Codec, bool) {
	c, ok := r.codecs[mime]
	return c, ok
}

func (r *Registry) ExtFor(mime string) (string, bool) {
	ext, ok := r.exts[mime]
	return ext, ok
}

// imagingCodec covers the formats the standard image decoders understand;
// encoding goes through disintegration/imaging with the configured options.
type imagingCodec struct {
	format     imaging.Format
	ext        string
	encodeOpts []imaging.EncodeOption
}

func (c *imagingCodec) Probe(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

func (c *imagingCodec) Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

func (c *imagingCodec) Encode(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, c.format, c.encodeOpts...); err != nil {
		return fmt.Errorf("encode %s: %w", c.ext, err)
	}
	return nil
}

func (c *imagingCodec) Ext() string { return c.ext }
