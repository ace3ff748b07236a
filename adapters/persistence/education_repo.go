package persistence

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/internal/domain/education"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type educationRepo struct {
	store  *RecordStore
	logger logger.Logger
}

func NewEducationRepo(store *RecordStore, log logger.Logger) education.Repository {
	return &educationRepo{store: store, logger: log}
}

func (r *educationRepo) List(ctx context.Context, ownerID uuid.UUID) ([]education.Education, error) {
	records, err := r.store.List(ctx, ownerID, CollectionEducation)
	if err != nil {
		return nil, err
	}

	entries := make([]education.Education, 0, len(records))
	for _, rec := range records {
		var e education.Education
		if err := json.Unmarshal(rec.Data, &e); err != nil {
			r.logger.Warn("Skipping malformed education record", zap.String("record_id", rec.ID), zap.Error(err))
			continue
		}
		e.ID = rec.ID
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *educationRepo) Create(ctx context.Context, ownerID uuid.UUID, entry education.Education) (string, error) {
	return r.store.Push(ctx, ownerID, CollectionEducation, entry)
}

func (r *educationRepo) Update(ctx context.Context, ownerID uuid.UUID, id string, entry education.Education) error {
	return r.store.Put(ctx, ownerID, CollectionEducation, id, entry)
}

func (r *educationRepo) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	return r.store.Delete(ctx, ownerID, CollectionEducation, id)
}
