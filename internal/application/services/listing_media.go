package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"listings-media-api/internal/application/ports"
	agentDomain "listings-media-api/internal/domain/agent"
	domain "listings-media-api/internal/domain/listing"
	"listings-media-api/internal/domain/media"
	"listings-media-api/internal/infrastructure/mq"
)

type ListingService struct {
	listingRepository domain.Repository
	agentRepository   agentDomain.Repository
	validator         *IngestValidator
	generator         *Generator
	store             ports.AssetStore
	namer             *media.Namer
	policies          media.Policies
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewListingService(
	listingRepository domain.Repository,
	agentRepository agentDomain.Repository,
	validator *IngestValidator,
	generator *Generator,
	store ports.AssetStore,
	namer *media.Namer,
	policies media.Policies,
	mqPort ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ListingService {
	return &ListingService{
		listingRepository: listingRepository,
		agentRepository:   agentRepository,
		validator:         validator,
		generator:         generator,
		store:             store,
		namer:             namer,
		policies:          policies,
		mq:                mqPort,
		mCounter:          mCounter,
	}
}

func (ls *ListingService) FindListing(ctx context.Context, uuid domain.UUID) (*domain.Listing, error) {
	return ls.listingRepository.FetchListingByID(ctx, uuid)
}

// CreateListing persists the post first, then runs each media item through
// the simple pipeline path: no replacement step, basenames are appended to
// the post's ordered lists. An item that fails its policy is skipped and
// reported; it never aborts the rest of the batch.
func (ls *ListingService) CreateListing(
	ctx context.Context,
	agentUUID agentDomain.UUID,
	draft domain.Listing,
	images, videos []*multipart.FileHeader,
) (*domain.Listing, *ports.ListingMediaResult, error) {
	agentID, err := ls.agentRepository.FetchInternalID(ctx, agentUUID)
	if err != nil {
		return nil, nil, err
	}

	created, err := ls.listingRepository.CreateListing(ctx, agentID, draft)
	if err != nil {
		return nil, nil, err
	}
	listingID, err := ls.listingRepository.FetchInternalID(ctx, created.UUID)
	if err != nil {
		return nil, nil, err
	}

	result := &ports.ListingMediaResult{}

	for _, fh := range images {
		basename, err := ls.ingestPhoto(ctx, listingID, fh)
		if err != nil {
			result.Skipped = append(result.Skipped, skipped(fh, err))
			ls.mCounter.WithLabelValues("listing_media_skipped_total").Inc()
			continue
		}
		result.Images = append(result.Images, basename)
		created.Images = append(created.Images, basename)
		ls.mCounter.WithLabelValues("listing_media_uploaded_total").Inc()
	}

	for _, fh := range videos {
		basename, err := ls.ingestVideo(ctx, listingID, fh)
		if err != nil {
			result.Skipped = append(result.Skipped, skipped(fh, err))
			ls.mCounter.WithLabelValues("listing_media_skipped_total").Inc()
			continue
		}
		result.Videos = append(result.Videos, basename)
		created.Videos = append(created.Videos, basename)
		ls.mCounter.WithLabelValues("listing_media_uploaded_total").Inc()
	}

	if len(result.Images)+len(result.Videos) > 0 {
		ls.publish(ctx, mq.ActionListingMediaAttached, created.UUID.String())
	}

	return created, result, nil
}

// ingestPhoto validates, bounded-fits and stores one property photo, then
// appends its basename to the post. The write happens before the append so
// a listed basename always has its file on disk.
func (ls *ListingService) ingestPhoto(ctx context.Context, id domain.ID, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", media.NewError(media.KindUnreadable, "open upload", err)
	}
	defer f.Close()

	validated, err := ls.validator.Validate(&media.Upload{
		Reader:       f,
		Filename:     sanitizeFileName(fh.Filename),
		DeclaredMIME: fh.Header.Get("Content-Type"),
		DeclaredSize: fh.Size,
		OwnerID:      uint64(id),
		Class:        media.ClassPropertyPhoto,
	})
	if err != nil {
		return "", err
	}

	variant, err := ls.generator.BoundedFit(validated, ls.policies[media.ClassPropertyPhoto].BoundedMaxEdge)
	if err != nil {
		return "", err
	}

	basename := ls.namer.Basename(media.ClassPropertyPhoto, uint64(id), validated.Ext)
	if _, err := ls.store.Write(media.ClassPropertyPhoto, basename, variant.Data); err != nil {
		return "", err
	}

	if err := ls.listingRepository.AppendImage(ctx, id, basename); err != nil {
		ls.store.Remove(media.ClassPropertyPhoto, basename)
		return "", media.NewError(media.KindConsistency, "append listing image", err)
	}
	return basename, nil
}

// ingestVideo stores a video verbatim; no transform at all.
func (ls *ListingService) ingestVideo(ctx context.Context, id domain.ID, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", media.NewError(media.KindUnreadable, "open upload", err)
	}
	defer f.Close()

	validated, err := ls.validator.Validate(&media.Upload{
		Reader:       f,
		Filename:     sanitizeFileName(fh.Filename),
		DeclaredMIME: fh.Header.Get("Content-Type"),
		DeclaredSize: fh.Size,
		OwnerID:      uint64(id),
		Class:        media.ClassPropertyVideo,
	})
	if err != nil {
		return "", err
	}

	basename := ls.namer.Basename(media.ClassPropertyVideo, uint64(id), validated.Ext)
	if _, err := ls.store.Write(media.ClassPropertyVideo, basename, validated.Data); err != nil {
		return "", err
	}

	if err := ls.listingRepository.AppendVideo(ctx, id, basename); err != nil {
		ls.store.Remove(media.ClassPropertyVideo, basename)
		return "", media.NewError(media.KindConsistency, "append listing video", err)
	}
	return basename, nil
}

func (ls *ListingService) publish(_ context.Context, action, ownerID string) {
	if ls.mq == nil {
		return
	}
	select {
	case ls.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		OwnerID: ownerID,
	}:
	default:
	}
}

func skipped(fh *multipart.FileHeader, err error) ports.SkippedItem {
	return ports.SkippedItem{
		Filename: sanitizeFileName(fh.Filename),
		Reason:   media.KindOf(err).String(),
	}
}
