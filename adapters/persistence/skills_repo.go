package persistence

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/internal/domain/skills"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type skillsRepo struct {
	store  *RecordStore
	logger logger.Logger
}

func NewSkillsRepo(store *RecordStore, log logger.Logger) skills.Repository {
	return &skillsRepo{store: store, logger: log}
}

func (r *skillsRepo) List(ctx context.Context, ownerID uuid.UUID) ([]skills.SkillCategory, error) {
	records, err := r.store.List(ctx, ownerID, CollectionSkills)
	if err != nil {
		return nil, err
	}

	// SkillCategory decoding absorbs the legacy object-keyed skills shape.
	categories := make([]skills.SkillCategory, 0, len(records))
	for _, rec := range records {
		var c skills.SkillCategory
		if err := json.Unmarshal(rec.Data, &c); err != nil {
			r.logger.Warn("Skipping malformed skill category record", zap.String("record_id", rec.ID), zap.Error(err))
			continue
		}
		c.ID = rec.ID
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *skillsRepo) Create(ctx context.Context, ownerID uuid.UUID, cat skills.SkillCategory) (string, error) {
	return r.store.Push(ctx, ownerID, CollectionSkills, cat)
}

func (r *skillsRepo) Update(ctx context.Context, ownerID uuid.UUID, id string, cat skills.SkillCategory) error {
	return r.store.Put(ctx, ownerID, CollectionSkills, id, cat)
}

func (r *skillsRepo) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	return r.store.Delete(ctx, ownerID, CollectionSkills, id)
}
