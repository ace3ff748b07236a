package skills

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/adapters/event"
	"github.com/hamzabelkadi/portfolio-api/adapters/persistence"
	"github.com/hamzabelkadi/portfolio-api/internal/application/service"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/skills"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type SkillsUseCase struct {
	repo   skills.Repository
	events event.Publisher
	cache  service.ViewCache
	logger logger.Logger
}

func NewSkillsUseCase(repo skills.Repository, events event.Publisher, cache service.ViewCache, log logger.Logger) *SkillsUseCase {
	return &SkillsUseCase{repo: repo, events: events, cache: cache, logger: log}
}

func (uc *SkillsUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]skills.SkillCategory, error) {
	return uc.repo.List(ctx, ownerID)
}

func (uc *SkillsUseCase) Create(ctx context.Context, ownerID uuid.UUID, cat skills.SkillCategory) (string, error) {
	if err := cat.Validate(); err != nil {
		return "", apperror.NewInvalidInput("skill category validation failed", err)
	}
	id, err := uc.repo.Create(ctx, ownerID, cat)
	if err != nil {
		return "", err
	}
	uc.notify(ctx, ownerID, id, event.ActionCreated)
	return id, nil
}

func (uc *SkillsUseCase) Update(ctx context.Context, ownerID uuid.UUID, id string, cat skills.SkillCategory) error {
	if err := cat.Validate(); err != nil {
		return apperror.NewInvalidInput("skill category validation failed", err)
	}
	if err := uc.repo.Update(ctx, ownerID, id, cat); err != nil {
		return err
	}
	uc.notify(ctx, ownerID, id, event.ActionUpdated)
	return nil
}

func (uc *SkillsUseCase) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	uc.notify(ctx, ownerID, id, event.ActionDeleted)
	return nil
}

func (uc *SkillsUseCase) notify(ctx context.Context, ownerID uuid.UUID, recordID, action string) {
	if err := uc.cache.Invalidate(ctx, ownerID); err != nil {
		uc.logger.Warn("Failed to invalidate portfolio view cache", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
	ev := event.ContentEvent{
		OwnerID:    ownerID,
		Collection: persistence.CollectionSkills,
		RecordID:   recordID,
		Action:     action,
	}
	if err := uc.events.PublishContentEvent(ctx, ev); err != nil {
		uc.logger.Warn("Failed to publish content event", zap.String("record_id", recordID), zap.Error(err))
	}
}
