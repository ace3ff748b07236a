package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/adapters/event"
	httpAdapter "github.com/hamzabelkadi/portfolio-api/adapters/http"
	"github.com/hamzabelkadi/portfolio-api/adapters/media_storage"
	"github.com/hamzabelkadi/portfolio-api/adapters/persistence"
	authUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/auth"
	contactUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/contact"
	educationUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/experience"
	mediaUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/media"
	portfolioUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/project"
	skillsUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/skills"
	socialUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/social"
	"github.com/hamzabelkadi/portfolio-api/internal/config"
	"github.com/hamzabelkadi/portfolio-api/pkg/auth"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
	"github.com/hamzabelkadi/portfolio-api/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting portfolio API server...")

	ownerID, err := uuid.Parse(cfg.Owner.ID)
	if err != nil {
		appLogger.Fatal("OWNER_ID is not a valid UUID", err)
	}

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracer provider", err)
	}
	defer tracing.Shutdown(context.Background(), tp, appLogger)

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	recordStore := persistence.NewRecordStore(dbPool, appLogger)
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	educationRepo := persistence.NewEducationRepo(recordStore, appLogger)
	experienceRepo := persistence.NewExperienceRepo(recordStore, appLogger)
	projectRepo := persistence.NewProjectRepo(recordStore, appLogger)
	skillsRepo := persistence.NewSkillsRepo(recordStore, appLogger)
	socialRepo := persistence.NewSocialLinkRepo(recordStore, appLogger)
	contactRepo := persistence.NewContactInfoRepo(recordStore, appLogger)
	viewCache := persistence.NewPortfolioCache(redisClient, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	credentialsUseCase := authUC.NewCredentialsUseCase(userRepo, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(userRepo, kafkaClient, viewCache, appLogger)
	educationUseCase := educationUC.NewEducationUseCase(educationRepo, kafkaClient, viewCache, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, kafkaClient, viewCache, appLogger)
	projectUseCase := projectUC.NewProjectUseCase(projectRepo, kafkaClient, viewCache, appLogger)
	skillsUseCase := skillsUC.NewSkillsUseCase(skillsRepo, kafkaClient, viewCache, appLogger)
	socialUseCase := socialUC.NewSocialLinkUseCase(socialRepo, kafkaClient, viewCache, appLogger)
	contactUseCase := contactUC.NewContactInfoUseCase(contactRepo, kafkaClient, viewCache, appLogger)
	uploadImageUseCase := mediaUC.NewUploadImageUseCase(uploader, appLogger)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(
		userRepo,
		educationRepo,
		skillsRepo,
		experienceRepo,
		projectRepo,
		contactRepo,
		socialRepo,
		viewCache,
		appLogger,
	)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Auth:       httpAdapter.NewAuthHandler(loginUseCase, credentialsUseCase),
		Profile:    httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		Education:  httpAdapter.NewEducationHandler(educationUseCase),
		Experience: httpAdapter.NewExperienceHandler(experienceUseCase),
		Project:    httpAdapter.NewProjectHandler(projectUseCase),
		Skills:     httpAdapter.NewSkillsHandler(skillsUseCase),
		Social:     httpAdapter.NewSocialLinkHandler(socialUseCase),
		Contact:    httpAdapter.NewContactInfoHandler(contactUseCase),
		Media:      httpAdapter.NewMediaHandler(uploadImageUseCase, appLogger),
		Portfolio:  httpAdapter.NewPortfolioHandler(portfolioUseCase, ownerID, appLogger),
	}

	router := httpAdapter.NewRouter(handlers, jwtSvc, appLogger)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
