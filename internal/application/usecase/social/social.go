package social

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/adapters/event"
	"github.com/hamzabelkadi/portfolio-api/adapters/persistence"
	"github.com/hamzabelkadi/portfolio-api/internal/application/service"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/social"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type SocialLinkUseCase struct {
	repo   social.Repository
	events event.Publisher
	cache  service.ViewCache
	logger logger.Logger
}

func NewSocialLinkUseCase(repo social.Repository, events event.Publisher, cache service.ViewCache, log logger.Logger) *SocialLinkUseCase {
	return &SocialLinkUseCase{repo: repo, events: events, cache: cache, logger: log}
}

func (uc *SocialLinkUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]social.SocialLink, error) {
	return uc.repo.List(ctx, ownerID)
}

func (uc *SocialLinkUseCase) Create(ctx context.Context, ownerID uuid.UUID, link social.SocialLink) (string, error) {
	if err := link.Validate(); err != nil {
		return "", apperror.NewInvalidInput("social link validation failed", err)
	}
	id, err := uc.repo.Create(ctx, ownerID, link)
	if err != nil {
		return "", err
	}
	uc.notify(ctx, ownerID, id, event.ActionCreated)
	return id, nil
}

func (uc *SocialLinkUseCase) Update(ctx context.Context, ownerID uuid.UUID, id string, link social.SocialLink) error {
	if err := link.Validate(); err != nil {
		return apperror.NewInvalidInput("social link validation failed", err)
	}
	if err := uc.repo.Update(ctx, ownerID, id, link); err != nil {
		return err
	}
	uc.notify(ctx, ownerID, id, event.ActionUpdated)
	return nil
}

func (uc *SocialLinkUseCase) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	uc.notify(ctx, ownerID, id, event.ActionDeleted)
	return nil
}

func (uc *SocialLinkUseCase) notify(ctx context.Context, ownerID uuid.UUID, recordID, action string) {
	if err := uc.cache.Invalidate(ctx, ownerID); err != nil {
		uc.logger.Warn("Failed to invalidate portfolio view cache", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
	ev := event.ContentEvent{
		OwnerID:    ownerID,
		Collection: persistence.CollectionSocialLinks,
		RecordID:   recordID,
		Action:     action,
	}
	if err := uc.events.PublishContentEvent(ctx, ev); err != nil {
		uc.logger.Warn("Failed to publish content event", zap.String("record_id", recordID), zap.Error(err))
	}
}
