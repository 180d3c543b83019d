package ports

import (
	"context"
	"mime/multipart"

	"listings-media-api/internal/domain/agent"
	"listings-media-api/internal/domain/listing"
)

type (
	// AvatarResult describes a committed avatar upload, including the
	// diagnostics the debug wrapper surfaces.
	AvatarResult struct {
		Basename     string
		Variants     []string
		Width        int
		Height       int
		DetectedMIME string
		DeclaredMIME string
		SizeBytes    int64
		Swept        string
	}

	// SkippedItem records one batch member rejected without aborting the
	// batch.
	SkippedItem struct {
		Filename string
		Reason   string
	}

	// ListingMediaResult reports which basenames were attached and which
	// items were skipped.
	ListingMediaResult struct {
		Images  []string
		Videos  []string
		Skipped []SkippedItem
	}
)

type AvatarService interface {
	// UploadAvatar runs the full pipeline: validate, derive, write, CAS
	// commit, sweep displaced files.
	UploadAvatar(ctx context.Context, agentUUID agent.UUID, fh *multipart.FileHeader) (*AvatarResult, error)
	CurrentAvatar(ctx context.Context, agentUUID agent.UUID) (string, error)
}

type ListingService interface {
	// CreateListing persists the post, then ingests each media item on the
	// simple path (bounded-fit photos, verbatim videos); over-policy items
	// are skipped and reported, not fatal.
	CreateListing(ctx context.Context, agentUUID agent.UUID, draft listing.Listing,
		images, videos []*multipart.FileHeader) (*listing.Listing, *ListingMediaResult, error)
	FindListing(ctx context.Context, uuid listing.UUID) (*listing.Listing, error)
}
