package ports

import (
	"image"
	"io"
)

// Codec handles one raster format. Selection is a table lookup on the
// content-sniffed MIME type, never per-call-site branching.
type Codec interface {
	// Probe reads only the header and reports pixel dimensions.
	Probe(data []byte) (width, height int, err error)
	Decode(data []byte) (image.Image, error)
	// Encode writes img with the codec's fixed quality settings.
	Encode(w io.Writer, img image.Image) error
	// Ext is the canonical filename extension, without dot.
	Ext() string
}

// Codecs is the format registry.
type Codecs interface {
	Lookup(mime string) (Codec, bool)
	// ExtFor maps a MIME type to its canonical extension; covers the video
	// formats that have no Codec entry.
	ExtFor(mime string) (string, bool)
}
