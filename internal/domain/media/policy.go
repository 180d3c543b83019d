package media

// Policy is the per-class ingestion contract: size ceiling, allowed
// content-sniffed types, minimum pixel box and the variant set to derive.
type Policy struct {
	MaxBytes     int64
	AllowedMIMEs []string
	MinWidth     int
	MinHeight    int
	// Variants is the cover-fit set; empty for classes without square
	// derivatives.
	Variants []VariantSpec
	// BoundedMaxEdge caps the longer edge for the bounded-fit path; zero
	// disables resizing entirely (videos).
	BoundedMaxEdge int
}

type Policies map[AssetClass]Policy

func (p Policy) Allows(mime string) bool {
	for _, m := range p.AllowedMIMEs {
		if m == mime {
			return true
		}
	}
	return false
}

// AvatarVariants is the square derivative set the UI tiles with.
var AvatarVariants = []VariantSpec{
	{Name: "thumb", Width: 32, Height: 32},
	{Name: "small", Width: 56, Height: 56},
	{Name: "medium", Width: 150, Height: 150},
	{Name: "large", Width: 300, Height: 300},
}

// DefaultPolicies returns the unified policy table. The two legacy avatar
// paths diverged (5MB/10MB limits, webp and the 50x50 floor each enforced in
// only one of them); the union of the stricter checks with the wider format
// set is used here.
func DefaultPolicies() Policies {
	return Policies{
		ClassAvatar: {
			MaxBytes:     10 << 20,
			AllowedMIMEs: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
			MinWidth:     50,
			MinHeight:    50,
			Variants:     AvatarVariants,
		},
		ClassPropertyPhoto: {
			MaxBytes:       5 << 20,
			AllowedMIMEs:   []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
			BoundedMaxEdge: 300,
		},
		ClassPropertyVideo: {
			MaxBytes:     50 << 20,
			AllowedMIMEs: []string{"video/mp4", "video/webm", "video/ogg"},
		},
	}
}
