package persistence

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/internal/domain/project"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type projectRepo struct {
	store  *RecordStore
	logger logger.Logger
}

func NewProjectRepo(store *RecordStore, log logger.Logger) project.Repository {
	return &projectRepo{store: store, logger: log}
}

func (r *projectRepo) List(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error) {
	records, err := r.store.List(ctx, ownerID, CollectionProjects)
	if err != nil {
		return nil, err
	}

	projects := make([]project.Project, 0, len(records))
	for _, rec := range records {
		var p project.Project
		if err := json.Unmarshal(rec.Data, &p); err != nil {
			r.logger.Warn("Skipping malformed project record", zap.String("record_id", rec.ID), zap.Error(err))
			continue
		}
		p.ID = rec.ID
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *projectRepo) Create(ctx context.Context, ownerID uuid.UUID, p project.Project) (string, error) {
	return r.store.Push(ctx, ownerID, CollectionProjects, p)
}

func (r *projectRepo) Update(ctx context.Context, ownerID uuid.UUID, id string, p project.Project) error {
	return r.store.Put(ctx, ownerID, CollectionProjects, id, p)
}

func (r *projectRepo) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	return r.store.Delete(ctx, ownerID, CollectionProjects, id)
}
