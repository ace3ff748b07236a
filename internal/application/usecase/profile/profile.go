package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/adapters/event"
	"github.com/hamzabelkadi/portfolio-api/internal/application/service"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/user"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type ProfileUseCase struct {
	userRepo user.Repository
	events   event.Publisher
	cache    service.ViewCache
	logger   logger.Logger
}

func NewProfileUseCase(repo user.Repository, events event.Publisher, cache service.ViewCache, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo: repo,
		events:   events,
		cache:    cache,
		logger:   log,
	}
}

func (uc *ProfileUseCase) Get(ctx context.Context, ownerID uuid.UUID) (*user.User, error) {
	return uc.userRepo.FindByID(ctx, ownerID)
}

// Update applies a partial profile patch, then refreshes the public view.
func (uc *ProfileUseCase) Update(ctx context.Context, ownerID uuid.UUID, patch user.ProfilePatch) (*user.User, error) {
	if err := uc.userRepo.UpdateProfile(ctx, ownerID, patch); err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx, ownerID); err != nil {
		uc.logger.Warn("Failed to invalidate portfolio view cache", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
	ev := event.ContentEvent{OwnerID: ownerID, Collection: "profile", Action: event.ActionUpdated}
	if err := uc.events.PublishContentEvent(ctx, ev); err != nil {
		uc.logger.Warn("Failed to publish profile change event", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}

	return uc.userRepo.FindByID(ctx, ownerID)
}
