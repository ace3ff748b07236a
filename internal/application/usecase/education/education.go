package education

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/adapters/event"
	"github.com/hamzabelkadi/portfolio-api/adapters/persistence"
	"github.com/hamzabelkadi/portfolio-api/internal/application/service"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/education"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type EducationUseCase struct {
	repo   education.Repository
	events event.Publisher
	cache  service.ViewCache
	logger logger.Logger
}

func NewEducationUseCase(repo education.Repository, events event.Publisher, cache service.ViewCache, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{repo: repo, events: events, cache: cache, logger: log}
}

func (uc *EducationUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]education.Education, error) {
	return uc.repo.List(ctx, ownerID)
}

func (uc *EducationUseCase) Create(ctx context.Context, ownerID uuid.UUID, entry education.Education) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", apperror.NewInvalidInput("education entry validation failed", err)
	}
	id, err := uc.repo.Create(ctx, ownerID, entry)
	if err != nil {
		return "", err
	}
	uc.notify(ctx, ownerID, id, event.ActionCreated)
	return id, nil
}

func (uc *EducationUseCase) Update(ctx context.Context, ownerID uuid.UUID, id string, entry education.Education) error {
	if err := entry.Validate(); err != nil {
		return apperror.NewInvalidInput("education entry validation failed", err)
	}
	if err := uc.repo.Update(ctx, ownerID, id, entry); err != nil {
		return err
	}
	uc.notify(ctx, ownerID, id, event.ActionUpdated)
	return nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	uc.notify(ctx, ownerID, id, event.ActionDeleted)
	return nil
}

// notify is best effort: the mutation already committed.
func (uc *EducationUseCase) notify(ctx context.Context, ownerID uuid.UUID, recordID, action string) {
	if err := uc.cache.Invalidate(ctx, ownerID); err != nil {
		uc.logger.Warn("Failed to invalidate portfolio view cache", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
	ev := event.ContentEvent{
		OwnerID:    ownerID,
		Collection: persistence.CollectionEducation,
		RecordID:   recordID,
		Action:     action,
	}
	if err := uc.events.PublishContentEvent(ctx, ev); err != nil {
		uc.logger.Warn("Failed to publish content event", zap.String("record_id", recordID), zap.Error(err))
	}
}
