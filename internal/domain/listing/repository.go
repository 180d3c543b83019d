package listing

import (
	"context"

	"listings-media-api/internal/domain/agent"
)

type Repository interface {
	FetchListingByID(ctx context.Context, uuid UUID) (*Listing, error)
	CreateListing(ctx context.Context, agentID agent.ID, req Listing) (*Listing, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)

	// AppendImage / AppendVideo add one basename to the post's ordered media
	// list. Append-only: there is no per-item replacement.
	AppendImage(ctx context.Context, id ID, basename string) error
	AppendVideo(ctx context.Context, id ID, basename string) error
}
