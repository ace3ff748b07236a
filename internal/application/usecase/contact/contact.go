package contact

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/adapters/event"
	"github.com/hamzabelkadi/portfolio-api/adapters/persistence"
	"github.com/hamzabelkadi/portfolio-api/internal/application/service"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/contact"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type ContactInfoUseCase struct {
	repo   contact.Repository
	events event.Publisher
	cache  service.ViewCache
	logger logger.Logger
}

func NewContactInfoUseCase(repo contact.Repository, events event.Publisher, cache service.ViewCache, log logger.Logger) *ContactInfoUseCase {
	return &ContactInfoUseCase{repo: repo, events: events, cache: cache, logger: log}
}

func (uc *ContactInfoUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]contact.ContactInfo, error) {
	return uc.repo.List(ctx, ownerID)
}

func (uc *ContactInfoUseCase) Create(ctx context.Context, ownerID uuid.UUID, info contact.ContactInfo) (string, error) {
	if err := info.Validate(); err != nil {
		return "", apperror.NewInvalidInput("contact info validation failed", err)
	}
	id, err := uc.repo.Create(ctx, ownerID, info)
	if err != nil {
		return "", err
	}
	uc.notify(ctx, ownerID, id, event.ActionCreated)
	return id, nil
}

func (uc *ContactInfoUseCase) Update(ctx context.Context, ownerID uuid.UUID, id string, info contact.ContactInfo) error {
	if err := info.Validate(); err != nil {
		return apperror.NewInvalidInput("contact info validation failed", err)
	}
	if err := uc.repo.Update(ctx, ownerID, id, info); err != nil {
		return err
	}
	uc.notify(ctx, ownerID, id, event.ActionUpdated)
	return nil
}

func (uc *ContactInfoUseCase) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	uc.notify(ctx, ownerID, id, event.ActionDeleted)
	return nil
}

func (uc *ContactInfoUseCase) notify(ctx context.Context, ownerID uuid.UUID, recordID, action string) {
	if err := uc.cache.Invalidate(ctx, ownerID); err != nil {
		uc.logger.Warn("Failed to invalidate portfolio view cache", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
	ev := event.ContentEvent{
		OwnerID:    ownerID,
		Collection: persistence.CollectionContactInfo,
		RecordID:   recordID,
		Action:     action,
	}
	if err := uc.events.PublishContentEvent(ctx, ev); err != nil {
		uc.logger.Warn("Failed to publish content event", zap.String("record_id", recordID), zap.Error(err))
	}
}
