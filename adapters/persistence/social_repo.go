package persistence

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/internal/domain/social"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type socialLinkRepo struct {
	store  *RecordStore
	logger logger.Logger
}

func NewSocialLinkRepo(store *RecordStore, log logger.Logger) social.Repository {
	return &socialLinkRepo{store: store, logger: log}
}

func (r *socialLinkRepo) List(ctx context.Context, ownerID uuid.UUID) ([]social.SocialLink, error) {
	records, err := r.store.List(ctx, ownerID, CollectionSocialLinks)
	if err != nil {
		return nil, err
	}

	links := make([]social.SocialLink, 0, len(records))
	for _, rec := range records {
		var l social.SocialLink
		if err := json.Unmarshal(rec.Data, &l); err != nil {
			r.logger.Warn("Skipping malformed social link record", zap.String("record_id", rec.ID), zap.Error(err))
			continue
		}
		l.ID = rec.ID
		links = append(links, l)
	}
	return links, nil
}

func (r *socialLinkRepo) Create(ctx context.Context, ownerID uuid.UUID, link social.SocialLink) (string, error) {
	return r.store.Push(ctx, ownerID, CollectionSocialLinks, link)
}

func (r *socialLinkRepo) Update(ctx context.Context, ownerID uuid.UUID, id string, link social.SocialLink) error {
	return r.store.Put(ctx, ownerID, CollectionSocialLinks, id, link)
}

func (r *socialLinkRepo) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	return r.store.Delete(ctx, ownerID, CollectionSocialLinks, id)
}
