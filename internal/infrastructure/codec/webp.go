package codec

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	xwebp "golang.org/x/image/webp"
)

// webpCodec decodes with the pure-Go x/image decoder and encodes through the
// libwebp binding, which is the only route to quality-controlled output.
type webpCodec struct {
	quality float32
}

func (c *webpCodec) Probe(data []byte) (int, int, error) {
	cfg, err := xwebp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

func (c *webpCodec) Decode(data []byte) (image.Image, error) {
	img, err := xwebp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

func (c *webpCodec) Encode(w io.Writer, img image.Image) error {
	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, c.quality)
	if err != nil {
		return fmt.Errorf("webp encoder options: %w", err)
	}
	if err := webp.Encode(w, img, opts); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}
	return nil
}

func (c *webpCodec) Ext() string { return "webp" }
