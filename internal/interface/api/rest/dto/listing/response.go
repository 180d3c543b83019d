package listing

import (
	"time"

	"github.com/google/uuid"
)

type (
	Listing struct {
		UUID         uuid.UUID `json:"uuid"`
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		Price        float64   `json:"price"`
		Location     string    `json:"location"`
		PropertyType string    `json:"property_type"`
		Bedrooms     int       `json:"bedrooms"`
		Bathrooms    int       `json:"bathrooms"`
		AreaSqft     int       `json:"area_sqft"`
		Features     string    `json:"features"`
		ContactInfo  string    `json:"contact_info"`

		Images []string `json:"images"`
		Videos []string `json:"videos"`

		CreatedAt time.Time  `json:"created_at"`
		ExpiresAt *time.Time `json:"expires_at,omitempty"`
	}

	SkippedItem struct {
		FileName string `json:"file_name"`
		Reason   string `json:"reason"`
	}

	// CreateResponse returns the persisted post plus a per-item media
	// report; skipped items are visible, not silently dropped.
	CreateResponse struct {
		Listing Listing       `json:"listing"`
		Skipped []SkippedItem `json:"skipped,omitempty"`
	}
)
