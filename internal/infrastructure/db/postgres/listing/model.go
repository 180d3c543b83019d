package listing

import (
	"time"

	"github.com/google/uuid"

	agentDB "listings-media-api/internal/infrastructure/db/postgres/agent"
)

type (
	Listing struct {
		ID      uint64
		UUID    uuid.UUID
		AgentID *agentDB.ID

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
