package experience

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/adapters/event"
	"github.com/hamzabelkadi/portfolio-api/adapters/persistence"
	"github.com/hamzabelkadi/portfolio-api/internal/application/service"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/experience"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type ExperienceUseCase struct {
	repo   experience.Repository
	events event.Publisher
	cache  service.ViewCache
	logger logger.Logger
}

func NewExperienceUseCase(repo experience.Repository, events event.Publisher, cache service.ViewCache, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: repo, events: events, cache: cache, logger: log}
}

func (uc *ExperienceUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]experience.Experience, error) {
	return uc.repo.List(ctx, ownerID)
}

func (uc *ExperienceUseCase) Create(ctx context.Context, ownerID uuid.UUID, exp experience.Experience) (string, error) {
	if err := exp.Validate(); err != nil {
		return "", apperror.NewInvalidInput("experience validation failed", err)
	}
	id, err := uc.repo.Create(ctx, ownerID, exp)
	if err != nil {
		return "", err
	}
	uc.notify(ctx, ownerID, id, event.ActionCreated)
	return id, nil
}

func (uc *ExperienceUseCase) Update(ctx context.Context, ownerID uuid.UUID, id string, exp experience.Experience) error {
	if err := exp.Validate(); err != nil {
		return apperror.NewInvalidInput("experience validation failed", err)
	}
	if err := uc.repo.Update(ctx, ownerID, id, exp); err != nil {
		return err
	}
	uc.notify(ctx, ownerID, id, event.ActionUpdated)
	return nil
}

func (uc *ExperienceUseCase) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	uc.notify(ctx, ownerID, id, event.ActionDeleted)
	return nil
}

func (uc *ExperienceUseCase) notify(ctx context.Context, ownerID uuid.UUID, recordID, action string) {
	if err := uc.cache.Invalidate(ctx, ownerID); err != nil {
		uc.logger.Warn("Failed to invalidate portfolio view cache", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
	ev := event.ContentEvent{
		OwnerID:    ownerID,
		Collection: persistence.CollectionExperiences,
		RecordID:   recordID,
		Action:     action,
	}
	if err := uc.events.PublishContentEvent(ctx, ev); err != nil {
		uc.logger.Warn("Failed to publish content event", zap.String("record_id", recordID), zap.Error(err))
	}
}
