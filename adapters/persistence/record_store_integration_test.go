package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/hamzabelkadi/portfolio-api/internal/domain/project"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/user"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type RecordStoreIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
	store       *RecordStore
	userRepo    user.Repository
	testOwner   *user.User
}

func (s *RecordStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewZapLogger("development")
	s.store = NewRecordStore(s.dbPool, s.testLogger)
	s.userRepo = NewPostgresUserRepo(s.dbPool, s.testLogger)

	s.testOwner = &user.User{
		ID:           uuid.New(),
		Email:        "testowner@example.com",
		PasswordHash: "hashedpassword",
	}
	query := `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`
	_, err = s.dbPool.Exec(ctx, query, s.testOwner.ID, s.testOwner.Email, s.testOwner.PasswordHash)
	if err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
}

func (s *RecordStoreIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRecordStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RecordStoreIntegrationTestSuite))
}

func (s *RecordStoreIntegrationTestSuite) Test_List_EmptyCollection() {
	records, err := s.store.List(context.Background(), s.testOwner.ID, "empty_collection")

	s.NoError(err)
	s.NotNil(records)
	s.Empty(records)
}

func (s *RecordStoreIntegrationTestSuite) Test_Push_Then_Get() {
	ctx := context.Background()

	doc := map[string]any{"degree": "MSc", "school": "ENSIAS"}
	id, err := s.store.Push(ctx, s.testOwner.ID, CollectionEducation, doc)
	s.Require().NoError(err)
	s.NotEmpty(id)

	rec, err := s.store.Get(ctx, s.testOwner.ID, CollectionEducation, id)
	s.Require().NoError(err)
	s.Equal(id, rec.ID)

	var got map[string]any
	s.Require().NoError(json.Unmarshal(rec.Data, &got))
	s.Equal("ENSIAS", got["school"])
}

func (s *RecordStoreIntegrationTestSuite) Test_List_PreservesInsertionOrder() {
	ctx := context.Background()

	first, err := s.store.Push(ctx, s.testOwner.ID, "ordering_check", map[string]any{"n": 1})
	s.Require().NoError(err)
	second, err := s.store.Push(ctx, s.testOwner.ID, "ordering_check", map[string]any{"n": 2})
	s.Require().NoError(err)

	records, err := s.store.List(ctx, s.testOwner.ID, "ordering_check")
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(first, records[0].ID)
	s.Equal(second, records[1].ID)
}

func (s *RecordStoreIntegrationTestSuite) Test_Patch_ShallowMerge() {
	ctx := context.Background()

	doc := map[string]any{"title": "Engineer", "company": "Acme", "current": false}
	id, err := s.store.Push(ctx, s.testOwner.ID, CollectionExperiences, doc)
	s.Require().NoError(err)

	err = s.store.Patch(ctx, s.testOwner.ID, CollectionExperiences, id, map[string]any{"current": true})
	s.Require().NoError(err)

	rec, err := s.store.Get(ctx, s.testOwner.ID, CollectionExperiences, id)
	s.Require().NoError(err)

	var got map[string]any
	s.Require().NoError(json.Unmarshal(rec.Data, &got))
	s.Equal(true, got["current"])
	// untouched keys survive the merge
	s.Equal("Acme", got["company"])
}

func (s *RecordStoreIntegrationTestSuite) Test_Put_ReplacesDocument() {
	ctx := context.Background()

	id, err := s.store.Push(ctx, s.testOwner.ID, CollectionProjects, map[string]any{"name": "Old", "link": "https://old.example.com"})
	s.Require().NoError(err)

	err = s.store.Put(ctx, s.testOwner.ID, CollectionProjects, id, map[string]any{"name": "New"})
	s.Require().NoError(err)

	rec, err := s.store.Get(ctx, s.testOwner.ID, CollectionProjects, id)
	s.Require().NoError(err)

	var got map[string]any
	s.Require().NoError(json.Unmarshal(rec.Data, &got))
	s.Equal("New", got["name"])
	s.NotContains(got, "link")
}

func (s *RecordStoreIntegrationTestSuite) Test_ProjectRepo_Update_ClearsOptionalFields() {
	ctx := context.Background()
	repo := NewProjectRepo(s.store, s.testLogger)

	created := project.Project{
		Name:        "Site",
		Description: "d",
		Category:    project.CategoryWeb,
		Icon:        "Code",
		Link:        "https://old.example.com",
		Stack:       []string{"Go"},
	}
	id, err := repo.Create(ctx, s.testOwner.ID, created)
	s.Require().NoError(err)

	edited := created
	edited.Link = ""
	s.Require().NoError(repo.Update(ctx, s.testOwner.ID, id, edited))

	projects, err := repo.List(ctx, s.testOwner.ID)
	s.Require().NoError(err)

	var found *project.Project
	for i := range projects {
		if projects[i].ID == id {
			found = &projects[i]
		}
	}
	s.Require().NotNil(found)
	s.Empty(found.Link)

	// the stored document must not keep the removed key either
	rec, err := s.store.Get(ctx, s.testOwner.ID, CollectionProjects, id)
	s.Require().NoError(err)
	var got map[string]any
	s.Require().NoError(json.Unmarshal(rec.Data, &got))
	s.NotContains(got, "link")
}

func (s *RecordStoreIntegrationTestSuite) Test_Delete_UnknownRecord_NotFound() {
	err := s.store.Delete(context.Background(), s.testOwner.ID, CollectionProjects, "missing")

	s.Error(err)
	var appErr *apperror.AppError
	s.True(errors.As(err, &appErr))
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *RecordStoreIntegrationTestSuite) Test_UserRepo_UpdateEmail_Conflict() {
	ctx := context.Background()

	other := uuid.New()
	query := `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`
	_, err := s.dbPool.Exec(ctx, query, other, "taken@example.com", "hash")
	s.Require().NoError(err)

	err = s.userRepo.UpdateEmail(ctx, s.testOwner.ID, "taken@example.com")
	s.Error(err)
	s.ErrorIs(err, apperror.ErrConflict)
}
