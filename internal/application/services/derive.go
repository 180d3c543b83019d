package services

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"listings-media-api/internal/application/ports"
	"listings-media-api/internal/domain/media"
)

// derivativeWorkers bounds per-request variant generation. Variants are
// independent pure functions of the same decoded source with disjoint
// outputs, so they can run in parallel.
const derivativeWorkers = 4

// Generator produces resized derivatives from a validated source image.
type Generator struct {
	codecs ports.Codecs
}

func NewGenerator(codecs ports.Codecs) *Generator {
	return &Generator{codecs: codecs}
}

// CoverVariants renders every spec as an exact WxH square: scale so the
// smaller source edge matches the box, then center-crop. Alpha survives
// because the resampled canvas is NRGBA and the encoder is the source
// format's own. Any single failure aborts the whole batch.
func (g *Generator) CoverVariants(v *media.Validated, specs []media.VariantSpec) ([]media.Variant, error) {
	codec, ok := g.codecs.Lookup(v.MIME)
	if !ok {
		return nil, media.NewError(media.KindCodec, fmt.Sprintf("no codec for %s", v.MIME), nil)
	}

	variants := make([]media.Variant, len(specs))
	var eg errgroup.Group
	eg.SetLimit(derivativeWorkers)

	for i, spec := range specs {
		eg.Go(func() error {
			resized := imaging.Fill(v.Image, spec.Width, spec.Height, imaging.Center, imaging.Lanczos)

			var buf bytes.Buffer
			if err := codec.Encode(&buf, resized); err != nil {
				return media.NewError(media.KindCodec,
					fmt.Sprintf("encode variant %s", spec.Name), err)
			}
			variants[i] = media.Variant{
				Name:   spec.Name,
				Width:  spec.Width,
				Height: spec.Height,
				Data:   buf.Bytes(),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return variants, nil
}

// BoundedFit caps the longer edge at maxEdge preserving aspect ratio. A
// source already within bounds is returned as the original bytes, untouched:
// never upscale, never re-encode what was not resized.
func (g *Generator) BoundedFit(v *media.Validated, maxEdge int) (*media.Variant, error) {
	if v.Width <= maxEdge && v.Height <= maxEdge {
		return &media.Variant{Width: v.Width, Height: v.Height, Data: v.Data}, nil
	}

	codec, ok := g.codecs.Lookup(v.MIME)
	if !ok {
		return nil, media.NewError(media.KindCodec, fmt.Sprintf("no codec for %s", v.MIME), nil)
	}

	resized := imaging.Fit(v.Image, maxEdge, maxEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err := codec.Encode(&buf, resized); err != nil {
		return nil, media.NewError(media.KindCodec, "encode bounded fit", err)
	}
	b := resized.Bounds()
	return &media.Variant{Width: b.Dx(), Height: b.Dy(), Data: buf.Bytes()}, nil
}
