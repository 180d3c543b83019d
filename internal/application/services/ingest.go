package services

import (
	"fmt"
	"io"
	"net/http"

	"listings-media-api/internal/application/ports"
	"listings-media-api/internal/domain/media"
)

// sniffLen matches the amount http.DetectContentType inspects.
const sniffLen = 512

// mimeAliases folds sniffer spellings into the canonical policy types.
var mimeAliases = map[string]string{
	"application/ogg": "video/ogg",
}

// IngestValidator decides whether an upload may enter the pipeline. It is a
// pure check: the upload's reader is consumed exactly once and nothing is
// written anywhere.
type IngestValidator struct {
	codecs   ports.Codecs
	policies media.Policies
}

func NewIngestValidator(codecs ports.Codecs, policies media.Policies) *IngestValidator {
	return &IngestValidator{codecs: codecs, policies: policies}
}

// Validate enforces the class policy against the true, content-sniffed
// format. The client-declared MIME type is recorded but never trusted. For
// image classes the raster is decode-probed and fully decoded; video uploads
// pass through with only sniff and size checks.
func (v *IngestValidator) Validate(up *media.Upload) (*media.Validated, error) {
	policy, ok := v.policies[up.Class]
	if !ok {
		return nil, media.NewError(media.KindUnsupportedFormat,
			fmt.Sprintf("unknown asset class %q", up.Class), nil)
	}

	// The declared size is checked before the body is read so an oversized
	// item can be skipped without buffering it.
	if up.DeclaredSize > policy.MaxBytes {
		return nil, media.NewError(media.KindTooLarge,
			fmt.Sprintf("declared %d bytes exceeds limit %d", up.DeclaredSize, policy.MaxBytes), nil)
	}

	data, err := io.ReadAll(io.LimitReader(up.Reader, policy.MaxBytes+1))
	if err != nil {
		return nil, media.NewError(media.KindUnreadable, "read upload body", err)
	}
	if int64(len(data)) > policy.MaxBytes {
		return nil, media.NewError(media.KindTooLarge,
			fmt.Sprintf("body exceeds limit %d", policy.MaxBytes), nil)
	}
	if len(data) == 0 {
		return nil, media.NewError(media.KindUnreadable, "empty upload body", nil)
	}

	mime := sniffMIME(data)
	if !policy.Allows(mime) {
		return nil, media.NewError(media.KindUnsupportedFormat,
			fmt.Sprintf("detected type %s not allowed for %s", mime, up.Class), nil)
	}

	ext, ok := v.codecs.ExtFor(mime)
	if !ok {
		return nil, media.NewError(media.KindUnsupportedFormat,
			fmt.Sprintf("no extension mapping for %s", mime), nil)
	}

	out := &media.Validated{Data: data, MIME: mime, Ext: ext}
	if up.Class == media.ClassPropertyVideo {
		return out, nil
	}

	codec, ok := v.codecs.Lookup(mime)
	if !ok {
		return nil, media.NewError(media.KindUnsupportedFormat,
			fmt.Sprintf("no codec for %s", mime), nil)
	}

	w, h, err := codec.Probe(data)
	if err != nil {
		return nil, media.NewError(media.KindCorrupt, "image probe failed", err)
	}
	if policy.MinWidth > 0 && (w < policy.MinWidth || h < policy.MinHeight) {
		return nil, media.NewError(media.KindTooSmall,
			fmt.Sprintf("%dx%d below minimum %dx%d", w, h, policy.MinWidth, policy.MinHeight), nil)
	}

	img, err := codec.Decode(data)
	if err != nil {
		return nil, media.NewError(media.KindCorrupt, "image decode failed", err)
	}

	out.Width, out.Height, out.Image = w, h, img
	return out, nil
}

// sniffMIME determines the true format from content. When the sniffed type
// and a decode probe would disagree, the sniffed type wins and is what the
// allowed set is checked against.
func sniffMIME(data []byte) string {
	n := len(data)
	if n > sniffLen {
		n = sniffLen
	}
	mime := http.DetectContentType(data[:n])
	if canonical, ok := mimeAliases[mime]; ok {
		return canonical
	}
	return mime
}
