package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andreyxaxa/Social-Submissions/internal/dto"
	"github.com/andreyxaxa/Social-Submissions/internal/entity"
	"github.com/andreyxaxa/Social-Submissions/internal/infrastructure"
	"github.com/andreyxaxa/Social-Submissions/internal/repo"
	"github.com/andreyxaxa/Social-Submissions/pkg/logger"
	"github.com/andreyxaxa/Social-Submissions/pkg/metrics"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
	"golang.org/x/sync/errgroup"
)

type SubmissionUseCase struct {
	submissionRepo repo.SubmissionRepo
	imageStorage   repo.ImageStorage
	inspector      infrastructure.ContentInspector
	events         infrastructure.EventsSender
	metrics        *metrics.Metrics

	maxFiles int
	now      func() time.Time

	logger logger.Interface
}

func New(
	submissionRepo repo.SubmissionRepo,
	imageStorage repo.ImageStorage,
	inspector infrastructure.ContentInspector,
	events infrastructure.EventsSender,
	m *metrics.Metrics,
	maxFiles int,
	l logger.Interface,
) *SubmissionUseCase {
	return &SubmissionUseCase{
		submissionRepo: submissionRepo,
		imageStorage:   imageStorage,
		inspector:      inspector,
		events:         events,
		metrics:        m,
		maxFiles:       maxFiles,
		now:            time.Now,
		logger:         l,
	}
}

func (uc *SubmissionUseCase) Create(ctx context.Context, in dto.NewSubmission) (*entity.Submission, error) {
	// 1. fields and files, nothing is written before this passes
	s, err := uc.validate(in)
	if err != nil {
		return nil, fmt.Errorf("SubmissionUseCase - Create - uc.validate: %w", err)
	}

	for _, file := range in.Files {
		if err := uc.inspector.Inspect(ctx, file); err != nil {
			uc.metrics.Rejected("content")
			return nil, fmt.Errorf("SubmissionUseCase - Create - uc.inspector.Inspect: %w", err)
		}
	}

	// 2. images, concurrently; refs[i] belongs to in.Files[i]
	refs, err := uc.storeImages(ctx, in.Files)
	if err != nil {
		return nil, fmt.Errorf("SubmissionUseCase - Create - uc.storeImages: %w", err)
	}

	// 3. document
	s.Images = refs
	s.CreatedAt = uc.now().UTC()

	err = uc.submissionRepo.Create(ctx, s)
	if err != nil {
		uc.logger.Warn("SubmissionUseCase - Create - stored images are orphaned: %v", refs)
		return nil, fmt.Errorf("SubmissionUseCase - Create - uc.submissionRepo.Create: %w", err)
	}

	uc.metrics.SubmissionCreated()
	uc.publish(ctx, dto.EventSubmissionCreated, s)

	return s, nil
}

func (uc *SubmissionUseCase) storeImages(ctx context.Context, files []dto.UploadFile) ([]string, error) {
	refs := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			ref, err := uc.imageStorage.Store(gctx, file)
			if err != nil {
				uc.metrics.StorageFailed(uc.imageStorage.Name(), "store")
				return fmt.Errorf("uc.imageStorage.Store %s: %w", file.Filename, err)
			}

			uc.metrics.ImageStored(uc.imageStorage.Name())
			uc.logger.Debug("SubmissionUseCase - storeImages - stored %s as %s", file.Filename, ref)
			refs[i] = ref

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// no rollback: whatever was stored before the failure stays behind
		var stored []string
		for _, ref := range refs {
			if ref != "" {
				stored = append(stored, ref)
			}
		}
		if len(stored) > 0 {
			uc.logger.Warn("SubmissionUseCase - storeImages - stored images are orphaned: %v", stored)
		}

		return nil, fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}

	return refs, nil
}

func (uc *SubmissionUseCase) List(ctx context.Context) ([]*entity.Submission, error) {
	list, err := uc.submissionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("SubmissionUseCase - List - uc.submissionRepo.List: %w", err)
	}

	if list == nil {
		list = []*entity.Submission{}
	}

	return list, nil
}

func (uc *SubmissionUseCase) Delete(ctx context.Context, id string) error {
	// 1. record, for the image references
	s, err := uc.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("SubmissionUseCase - Delete - uc.submissionRepo.GetByID: %w", err)
	}

	// 2. images, best effort
	if uc.imageStorage.SupportsDelete() {
		for _, ref := range s.Images {
			err = uc.imageStorage.Delete(ctx, ref)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					continue
				}
				uc.metrics.StorageFailed(uc.imageStorage.Name(), "delete")
				uc.logger.Warn("failed to delete image ref=%s, error=%v", ref, err)
			}
		}
	} else {
		uc.logger.Info("SubmissionUseCase - Delete - %s backend cannot delete, kept %d images of %s",
			uc.imageStorage.Name(), len(s.Images), s.ID)
	}

	// 3. document
	err = uc.submissionRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("SubmissionUseCase - Delete - uc.submissionRepo.Delete: %w", err)
	}

	uc.metrics.SubmissionDeleted()
	uc.publish(ctx, dto.EventSubmissionDeleted, s)

	return nil
}

func (uc *SubmissionUseCase) publish(ctx context.Context, event string, s *entity.Submission) {
	err := uc.events.SendEvent(ctx, dto.SubmissionEvent{
		Event:          event,
		ID:             s.ID,
		SocialPlatform: string(s.SocialPlatform),
		Images:         s.Images,
		OccurredAt:     uc.now().UTC(),
	})
	if err != nil {
		uc.logger.Error(err, "SubmissionUseCase - publish - uc.events.SendEvent")
	}
}
