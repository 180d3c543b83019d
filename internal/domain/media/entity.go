package media

import (
	"image"
	"io"
)

type (
	// AssetClass selects the policy, directory and naming prefix for an upload.
	AssetClass string

	// Upload is one raw uploaded item as received from the HTTP layer.
	// The reader is consumed exactly once, by the ingest validator.
	Upload struct {
		Reader       io.Reader
		Filename     string
		DeclaredMIME string
		DeclaredSize int64
		OwnerID      uint64
		Class        AssetClass
	}

	// Validated is the outcome of a successful ingest check. Image is nil for
	// video uploads, which are stored verbatim.
	Validated struct {
		Data   []byte
		MIME   string
		Ext    string
		Width  int
		Height int
		Image  image.Image
	}

	// VariantSpec names one derived raster and its target box.
	VariantSpec struct {
		Name   string
		Width  int
		Height int
	}

	// Variant is one encoded raster produced by the derivative generator,
	// not yet placed on disk.
	Variant struct {
		Name   string
		Width  int
		Height int
		Data   []byte
	}
)

const (
	ClassAvatar        AssetClass = "avatar"
	ClassPropertyPhoto AssetClass = "property-photo"
	ClassPropertyVideo AssetClass = "property-video"
)

// DefaultAvatar is the seeded placeholder basename. It is shared between
// owners and must never be swept.
const DefaultAvatar = "default-avatar.jpg"
