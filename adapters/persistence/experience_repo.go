package persistence

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/internal/domain/experience"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type experienceRepo struct {
	store  *RecordStore
	logger logger.Logger
}

func NewExperienceRepo(store *RecordStore, log logger.Logger) experience.Repository {
	return &experienceRepo{store: store, logger: log}
}

func (r *experienceRepo) List(ctx context.Context, ownerID uuid.UUID) ([]experience.Experience, error) {
	records, err := r.store.List(ctx, ownerID, CollectionExperiences)
	if err != nil {
		return nil, err
	}

	entries := make([]experience.Experience, 0, len(records))
	for _, rec := range records {
		var e experience.Experience
		if err := json.Unmarshal(rec.Data, &e); err != nil {
			r.logger.Warn("Skipping malformed experience record", zap.String("record_id", rec.ID), zap.Error(err))
			continue
		}
		e.ID = rec.ID
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *experienceRepo) Create(ctx context.Context, ownerID uuid.UUID, exp experience.Experience) (string, error) {
	return r.store.Push(ctx, ownerID, CollectionExperiences, exp)
}

func (r *experienceRepo) Update(ctx context.Context, ownerID uuid.UUID, id string, exp experience.Experience) error {
	return r.store.Put(ctx, ownerID, CollectionExperiences, id, exp)
}

func (r *experienceRepo) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	return r.store.Delete(ctx, ownerID, CollectionExperiences, id)
}
