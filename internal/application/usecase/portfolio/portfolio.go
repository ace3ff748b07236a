package portfolio

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/internal/application/service"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/contact"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/education"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/experience"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/portfolio"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/project"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/skills"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/social"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/user"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("portfolio_usecase")

// PortfolioUseCase reads every collection, runs the transforms, and
// serves the assembled view through the cache.
type PortfolioUseCase struct {
	userRepo       user.Repository
	educationRepo  education.Repository
	skillsRepo     skills.Repository
	experienceRepo experience.Repository
	projectRepo    project.Repository
	contactRepo    contact.Repository
	socialRepo     social.Repository
	cache          service.ViewCache
	logger         logger.Logger
}

func NewPortfolioUseCase(
	userRepo user.Repository,
	educationRepo education.Repository,
	skillsRepo skills.Repository,
	experienceRepo experience.Repository,
	projectRepo project.Repository,
	contactRepo contact.Repository,
	socialRepo social.Repository,
	cache service.ViewCache,
	log logger.Logger,
) *PortfolioUseCase {
	return &PortfolioUseCase{
		userRepo:       userRepo,
		educationRepo:  educationRepo,
		skillsRepo:     skillsRepo,
		experienceRepo: experienceRepo,
		projectRepo:    projectRepo,
		contactRepo:    contactRepo,
		socialRepo:     socialRepo,
		cache:          cache,
		logger:         log,
	}
}

// GetView returns the cached view when present, otherwise assembles it
// and fills the cache.
func (uc *PortfolioUseCase) GetView(ctx context.Context, ownerID uuid.UUID) (*portfolio.View, error) {
	ctx, span := tracer.Start(ctx, "GetView")
	defer span.End()

	cached, err := uc.cache.Get(ctx, ownerID)
	if err != nil {
		uc.logger.Warn("Portfolio view cache read failed", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	return uc.RebuildView(ctx, ownerID)
}

// RebuildView recomputes the view from the record store and writes it
// back to the cache.
func (uc *PortfolioUseCase) RebuildView(ctx context.Context, ownerID uuid.UUID) (*portfolio.View, error) {
	ctx, span := tracer.Start(ctx, "RebuildView")
	defer span.End()

	owner, err := uc.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	edu, err := uc.educationRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	cats, err := uc.skillsRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	exps, err := uc.experienceRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	projs, err := uc.projectRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	contacts, err := uc.contactRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	links, err := uc.socialRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	view := portfolio.BuildView(owner, edu, cats, exps, projs, contacts, links)

	if err := uc.cache.Set(ctx, ownerID, &view); err != nil {
		uc.logger.Warn("Portfolio view cache write failed", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
	return &view, nil
}

// ListProjects applies the category-tab filter over the assembled view.
func (uc *PortfolioUseCase) ListProjects(ctx context.Context, ownerID uuid.UUID, category string) ([]portfolio.ProjectCard, error) {
	view, err := uc.GetView(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return portfolio.FilterByCategory(view.Projects, category), nil
}
