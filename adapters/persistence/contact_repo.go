package persistence

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/internal/domain/contact"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type contactInfoRepo struct {
	store  *RecordStore
	logger logger.Logger
}

func NewContactInfoRepo(store *RecordStore, log logger.Logger) contact.Repository {
	return &contactInfoRepo{store: store, logger: log}
}

func (r *contactInfoRepo) List(ctx context.Context, ownerID uuid.UUID) ([]contact.ContactInfo, error) {
	records, err := r.store.List(ctx, ownerID, CollectionContactInfo)
	if err != nil {
		return nil, err
	}

	infos := make([]contact.ContactInfo, 0, len(records))
	for _, rec := range records {
		var c contact.ContactInfo
		if err := json.Unmarshal(rec.Data, &c); err != nil {
			r.logger.Warn("Skipping malformed contact info record", zap.String("record_id", rec.ID), zap.Error(err))
			continue
		}
		c.ID = rec.ID
		infos = append(infos, c)
	}
	return infos, nil
}

func (r *contactInfoRepo) Create(ctx context.Context, ownerID uuid.UUID, info contact.ContactInfo) (string, error) {
	return r.store.Push(ctx, ownerID, CollectionContactInfo, info)
}

func (r *contactInfoRepo) Update(ctx context.Context, ownerID uuid.UUID, id string, info contact.ContactInfo) error {
	return r.store.Put(ctx, ownerID, CollectionContactInfo, id, info)
}

func (r *contactInfoRepo) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	return r.store.Delete(ctx, ownerID, CollectionContactInfo, id)
}
