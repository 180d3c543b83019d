package media

import (
	"fmt"
	"path"
	"strings"
	"sync/atomic"
	"time"
)

// classPrefixes mirror the legacy filename stems so existing assets keep
// resolving.
var classPrefixes = map[AssetClass]string{
	ClassAvatar:        "profile",
	ClassPropertyPhoto: "property",
	ClassPropertyVideo: "propvideo",
}

// Namer issues generation-qualified basenames. The generation component is a
// strictly monotonic millisecond stamp, so two uploads for the same owner can
// never collide on disk and a retried commit is idempotent.
type Namer struct {
	now  func() int64
	last atomic.Int64
}

func NewNamer() *Namer {
	return &Namer{now: func() int64 { return time.Now().UnixMilli() }}
}

// NewNamerAt is the test seam: now supplies the generation stamp.
func NewNamerAt(now func() int64) *Namer {
	return &Namer{now: now}
}

// Basename derives "{classPrefix}_{ownerID}_{generation}.{ext}".
func (n *Namer) Basename(class AssetClass, ownerID uint64, ext string) string {
	return fmt.Sprintf("%s_%d_%d.%s", classPrefixes[class], ownerID, n.next(), ext)
}

func (n *Namer) next() int64 {
	for {
		now := n.now()
		last := n.last.Load()
		if now <= last {
			now = last + 1
		}
		if n.last.CompareAndSwap(last, now) {
			return now
		}
	}
}

// VariantFilename inserts "_{variant}" before the extension. It is a pure
// function of (basename, variant): variant paths are always derived, never
// stored.
func VariantFilename(basename, variant string) string {
	ext := path.Ext(basename)
	return strings.TrimSuffix(basename, ext) + "_" + variant + ext
}

// FileSet lists every file implied by a basename under the given variant
// specs, the unsuffixed original first. This is the unit the sweeper deletes.
func FileSet(basename string, specs []VariantSpec) []string {
	files := make([]string, 0, len(specs)+1)
	files = append(files, basename)
	for _, s := range specs {
		files = append(files, VariantFilename(basename, s.Name))
	}
	return files
}
