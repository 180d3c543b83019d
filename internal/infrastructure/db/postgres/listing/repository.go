package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	agentDomain "listings-media-api/internal/domain/agent"
	"listings-media-api/internal/domain/listing"
	agentDB "listings-media-api/internal/infrastructure/db/postgres/agent"
)

type Repository struct {
	db agentDB.DB
}

func NewRepository(db agentDB.DB) listing.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchListingByID(ctx context.Context, uuid listing.UUID) (*listing.Listing, error) {
	l := new(Listing)
	err := r.db.QueryRow(ctx, SelectListingByID, uuid.String()).Scan(
		&l.ID,
		&l.UUID,
		&l.AgentID,

		&l.Title,
		&l.Description,
		&l.Price,
		&l.Location,
		&l.PropertyType,
		&l.Bedrooms,
		&l.Bathrooms,
		&l.AreaSqft,
		&l.Features,
		&l.ContactInfo,

		&l.Images,
		&l.Videos,

		&l.CreatedAt,
		&l.UpdatedAt,
		&l.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(l), err
}

func (r *Repository) CreateListing(ctx context.Context, agentID agentDomain.ID, req listing.Listing) (*listing.Listing, error) {
	l := new(Listing)

	err := r.db.QueryRow(
		ctx,
		InsertListing,
		uint64(agentID), req.Title, req.Description, req.Price, req.Location, req.PropertyType,
		req.Bedrooms, req.Bathrooms, req.AreaSqft, req.Features, req.ContactInfo,
	).Scan(
		&l.ID,
		&l.UUID,
		&l.AgentID,

		&l.Title,
		&l.Description,
		&l.Price,
		&l.Location,
		&l.PropertyType,
		&l.Bedrooms,
		&l.Bathrooms,
		&l.AreaSqft,
		&l.Features,
		&l.ContactInfo,

		&l.Images,
		&l.Videos,

		&l.CreatedAt,
		&l.UpdatedAt,
		&l.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(l), err
}

func (r *Repository) FetchInternalID(ctx context.Context, uuid listing.UUID) (listing.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, SelectIdByUUID, uuid.String()).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("listing not found by uuid %s: %w", uuid.String(), err)
		}
		return 0, err
	}

	return listing.ID(id), nil
}

func (r *Repository) AppendImage(ctx context.Context, id listing.ID, basename string) error {
	_, err := r.db.Exec(ctx, AppendListingImage, uint64(id), basename)
	return err
}

func (r *Repository) AppendVideo(ctx context.Context, id listing.ID, basename string) error {
	_, err := r.db.Exec(ctx, AppendListingVideo, uint64(id), basename)
	return err
}
