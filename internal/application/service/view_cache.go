package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/hamzabelkadi/portfolio-api/internal/domain/portfolio"
)

// ViewCache holds the assembled public portfolio view. Get returns
// (nil, nil) on a miss.
type ViewCache interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*portfolio.View, error)
	Set(ctx context.Context, ownerID uuid.UUID, view *portfolio.View) error
	Invalidate(ctx context.Context, ownerID uuid.UUID) error
}
