package project

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/adapters/event"
	"github.com/hamzabelkadi/portfolio-api/adapters/persistence"
	"github.com/hamzabelkadi/portfolio-api/internal/application/service"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/project"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type ProjectUseCase struct {
	repo   project.Repository
	events event.Publisher
	cache  service.ViewCache
	logger logger.Logger
}

func NewProjectUseCase(repo project.Repository, events event.Publisher, cache service.ViewCache, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, events: events, cache: cache, logger: log}
}

func (uc *ProjectUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error) {
	return uc.repo.List(ctx, ownerID)
}

func (uc *ProjectUseCase) Create(ctx context.Context, ownerID uuid.UUID, p project.Project) (string, error) {
	if err := p.Validate(); err != nil {
		return "", apperror.NewInvalidInput("project validation failed", err)
	}
	id, err := uc.repo.Create(ctx, ownerID, p)
	if err != nil {
		return "", err
	}
	uc.notify(ctx, ownerID, id, event.ActionCreated)
	return id, nil
}

func (uc *ProjectUseCase) Update(ctx context.Context, ownerID uuid.UUID, id string, p project.Project) error {
	if err := p.Validate(); err != nil {
		return apperror.NewInvalidInput("project validation failed", err)
	}
	if err := uc.repo.Update(ctx, ownerID, id, p); err != nil {
		return err
	}
	uc.notify(ctx, ownerID, id, event.ActionUpdated)
	return nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	uc.notify(ctx, ownerID, id, event.ActionDeleted)
	return nil
}

func (uc *ProjectUseCase) notify(ctx context.Context, ownerID uuid.UUID, recordID, action string) {
	if err := uc.cache.Invalidate(ctx, ownerID); err != nil {
		uc.logger.Warn("Failed to invalidate portfolio view cache", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
	ev := event.ContentEvent{
		OwnerID:    ownerID,
		Collection: persistence.CollectionProjects,
		RecordID:   recordID,
		Action:     action,
	}
	if err := uc.events.PublishContentEvent(ctx, ev); err != nil {
		uc.logger.Warn("Failed to publish content event", zap.String("record_id", recordID), zap.Error(err))
	}
}
