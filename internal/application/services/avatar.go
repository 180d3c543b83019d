package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"listings-media-api/internal/application/ports"
	domain "listings-media-api/internal/domain/agent"
	"listings-media-api/internal/domain/media"
	"listings-media-api/internal/infrastructure/mq"
)

// commit retries cover the window where a concurrent upload for the same
// owner displaces the basename we read at the start of the request.
const maxCommitRetries = 3

type AvatarService struct {
	agentRepository domain.Repository
	validator       *IngestValidator
	generator       *Generator
	store           ports.AssetStore
	namer           *media.Namer
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
}

func NewAvatarService(
	agentRepository domain.Repository,
	validator *IngestValidator,
	generator *Generator,
	store ports.AssetStore,
	namer *media.Namer,
	mqPort ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.AvatarService {
	return &AvatarService{
		agentRepository: agentRepository,
		validator:       validator,
		generator:       generator,
		store:           store,
		namer:           namer,
		mq:              mqPort,
		mCounter:        mCounter,
	}
}

func (as *AvatarService) CurrentAvatar(ctx context.Context, agentUUID domain.UUID) (string, error) {
	id, err := as.agentRepository.FetchInternalID(ctx, agentUUID)
	if err != nil {
		return "", err
	}
	return as.agentRepository.FetchAvatar(ctx, id)
}

// UploadAvatar runs validate → derive → write → CAS commit → sweep. Files
// are written before the pointer moves, so the record's basename always has
// its full variant set on disk; a crash before commit leaves only harmless
// unreferenced files.
func (as *AvatarService) UploadAvatar(
	ctx context.Context,
	agentUUID domain.UUID,
	fh *multipart.FileHeader,
) (*ports.AvatarResult, error) {
	id, err := as.agentRepository.FetchInternalID(ctx, agentUUID)
	if err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, media.NewError(media.KindUnreadable, "open upload", err)
	}
	defer f.Close()

	validated, err := as.validator.Validate(&media.Upload{
		Reader:       f,
		Filename:     sanitizeFileName(fh.Filename),
		DeclaredMIME: fh.Header.Get("Content-Type"),
		DeclaredSize: fh.Size,
		OwnerID:      uint64(id),
		Class:        media.ClassAvatar,
	})
	if err != nil {
		as.mCounter.WithLabelValues("avatar_rejected_total").Inc()
		return nil, err
	}

	variants, err := as.generator.CoverVariants(validated, media.AvatarVariants)
	if err != nil {
		return nil, err
	}

	basename := as.namer.Basename(media.ClassAvatar, uint64(id), validated.Ext)

	written, err := as.writeSet(basename, validated, variants)
	if err != nil {
		as.store.Remove(media.ClassAvatar, written...)
		return nil, err
	}

	displaced, err := as.commit(ctx, id, basename)
	if err != nil {
		// The new files are unreferenced; remove them so a failed commit
		// leaves no orphans and the prior avatar stays fully intact.
		as.store.Remove(media.ClassAvatar, written...)
		return nil, err
	}

	// Strictly after the commit, never transactional with it: a failed
	// sweep orphans old files but can never dangle the record, and the
	// orphaned basename is safely re-sweepable.
	_ = as.store.Sweep(media.ClassAvatar, displaced)

	as.publish(mq.ActionAvatarCommitted, agentUUID.String(), basename)
	as.mCounter.WithLabelValues("avatar_uploaded_total").Inc()

	return &ports.AvatarResult{
		Basename:     basename,
		Variants:     media.FileSet(basename, media.AvatarVariants),
		Width:        validated.Width,
		Height:       validated.Height,
		DetectedMIME: validated.MIME,
		DeclaredMIME: fh.Header.Get("Content-Type"),
		SizeBytes:    fh.Size,
		Swept:        displaced,
	}, nil
}

// writeSet persists the original plus every variant, returning the filenames
// written so far for rollback.
func (as *AvatarService) writeSet(
	basename string,
	validated *media.Validated,
	variants []media.Variant,
) ([]string, error) {
	written := make([]string, 0, len(variants)+1)

	if _, err := as.store.Write(media.ClassAvatar, basename, validated.Data); err != nil {
		return written, err
	}
	written = append(written, basename)

	for _, v := range variants {
		name := media.VariantFilename(basename, v.Name)
		if _, err := as.store.Write(media.ClassAvatar, name, v.Data); err != nil {
			return written, err
		}
		written = append(written, name)
	}
	return written, nil
}

// commit swaps the canonical pointer with a bounded CAS loop and returns the
// basename that was actually displaced, which is what the sweeper must act
// on; a value read earlier in the request may already be stale.
func (as *AvatarService) commit(ctx context.Context, id domain.ID, basename string) (string, error) {
	for attempt := 0; attempt < maxCommitRetries; attempt++ {
		prev, err := as.agentRepository.FetchAvatar(ctx, id)
		if err != nil {
			return "", media.NewError(media.KindConsistency, "read current avatar", err)
		}
		swapped, err := as.agentRepository.SwapAvatar(ctx, id, basename, prev)
		if err != nil {
			return "", media.NewError(media.KindConsistency, "swap avatar pointer", err)
		}
		if swapped {
			return prev, nil
		}
	}
	return "", media.NewError(media.KindConsistency,
		fmt.Sprintf("avatar pointer kept moving after %d attempts", maxCommitRetries), nil)
}

func (as *AvatarService) publish(action, ownerID, basename string) {
	if as.mq == nil {
		return
	}
	select {
	case as.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		OwnerID:  ownerID,
		Class:    string(media.ClassAvatar),
		Basename: basename,
	}:
	default:
		// Events are notifications; a full buffer must not block an upload.
	}
}
