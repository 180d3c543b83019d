package listing

import (
	"time"

	"github.com/google/uuid"

	"listings-media-api/internal/domain/agent"
)

type (
	ID   uint64
	UUID = uuid.UUID

	// Listing is a property post. Images and Videos are ordered, append-only
	// lists of basenames: items are never replaced individually, the whole
	// post is removed on expiry.
	Listing struct {
		UUID    UUID
		AgentID *agent.ID

		Title        string
		Description  string
		Price        float64
		Location     string
		PropertyType string
		Bedrooms     int
		Bathrooms    int
		AreaSqft     int
		Features     string
		ContactInfo  string

		Images []string
		Videos []string

		CreatedAt time.Time
		UpdatedAt time.Time
		ExpiresAt *time.Time
	}
	Listings []*Listing
)
