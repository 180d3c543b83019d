package ports

import (
	"listings-media-api/internal/domain/media"
)

// AssetStore places encoded bytes under deterministic names per asset class.
// Writes report success or an IOError; atomicity across a batch is the
// pipeline's concern (rollback + CAS commit), not the store's.
type AssetStore interface {
	// Write stores data as filename in the class directory and returns the
	// absolute path.
	Write(class media.AssetClass, filename string, data []byte) (string, error)

	// Remove deletes the named files of this attempt, best-effort. Used for
	// failure-path rollback.
	Remove(class media.AssetClass, filenames ...string)

	// Sweep derives the full file set implied by basename via the naming
	// convention and deletes each if present. Idempotent: already-missing
	// files are not errors.
	Sweep(class media.AssetClass, basename string) error

	// Exists reports whether the named file is on disk.
	Exists(class media.AssetClass, filename string) bool
}
