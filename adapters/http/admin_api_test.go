package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

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
	"github.com/hamzabelkadi/portfolio-api/internal/domain/contact"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/education"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/experience"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/project"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/skills"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/social"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/user"
	"github.com/hamzabelkadi/portfolio-api/pkg/auth"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type AdminAPITestSuite struct {
	suite.Suite
	router   *gin.Engine
	ownerID  uuid.UUID
	token    string
	userRepo *memUserRepo

	educationRepo  *memRepo[education.Education]
	experienceRepo *memRepo[experience.Experience]
	projectRepo    *memRepo[project.Project]
	skillsRepo     *memRepo[skills.SkillCategory]
	socialRepo     *memRepo[social.SocialLink]
	contactRepo    *memRepo[contact.ContactInfo]

	events *memPublisher
	cache  *memViewCache
}

const (
	testOwnerEmail    = "owner@example.com"
	testOwnerPassword = "correct-horse-battery"
)

func (s *AdminAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	appLogger := logger.NewZapLogger("development")

	s.ownerID = uuid.New()
	hash, err := auth.HashPassword(testOwnerPassword)
	s.Require().NoError(err)
	s.userRepo = &memUserRepo{user: user.User{
		ID:           s.ownerID,
		Email:        testOwnerEmail,
		PasswordHash: hash,
		UpdatedAt:    time.Now().UTC(),
	}}

	s.educationRepo = newMemRepo(func(e education.Education, id string) education.Education { e.ID = id; return e })
	s.experienceRepo = newMemRepo(func(e experience.Experience, id string) experience.Experience { e.ID = id; return e })
	s.projectRepo = newMemRepo(func(p project.Project, id string) project.Project { p.ID = id; return p })
	s.skillsRepo = newMemRepo(func(c skills.SkillCategory, id string) skills.SkillCategory { c.ID = id; return c })
	s.socialRepo = newMemRepo(func(l social.SocialLink, id string) social.SocialLink { l.ID = id; return l })
	s.contactRepo = newMemRepo(func(c contact.ContactInfo, id string) contact.ContactInfo { c.ID = id; return c })

	s.events = &memPublisher{}
	s.cache = newMemViewCache()

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)

	loginUC := authUC.NewLoginUseCase(s.userRepo, jwtSvc, appLogger)
	credsUC := authUC.NewCredentialsUseCase(s.userRepo, appLogger)
	profUC := profileUC.NewProfileUseCase(s.userRepo, s.events, s.cache, appLogger)
	eduUC := educationUC.NewEducationUseCase(s.educationRepo, s.events, s.cache, appLogger)
	expUC := experienceUC.NewExperienceUseCase(s.experienceRepo, s.events, s.cache, appLogger)
	projUC := projectUC.NewProjectUseCase(s.projectRepo, s.events, s.cache, appLogger)
	skillUC := skillsUC.NewSkillsUseCase(s.skillsRepo, s.events, s.cache, appLogger)
	socUC := socialUC.NewSocialLinkUseCase(s.socialRepo, s.events, s.cache, appLogger)
	conUC := contactUC.NewContactInfoUseCase(s.contactRepo, s.events, s.cache, appLogger)
	uploadUC := mediaUC.NewUploadImageUseCase(memUploader{}, appLogger)
	viewUC := portfolioUC.NewPortfolioUseCase(
		s.userRepo, s.educationRepo, s.skillsRepo, s.experienceRepo,
		s.projectRepo, s.contactRepo, s.socialRepo, s.cache, appLogger,
	)

	handlers := Handlers{
		Auth:       NewAuthHandler(loginUC, credsUC),
		Profile:    NewProfileHandler(profUC, appLogger),
		Education:  NewEducationHandler(eduUC),
		Experience: NewExperienceHandler(expUC),
		Project:    NewProjectHandler(projUC),
		Skills:     NewSkillsHandler(skillUC),
		Social:     NewSocialLinkHandler(socUC),
		Contact:    NewContactInfoHandler(conUC),
		Media:      NewMediaHandler(uploadUC, appLogger),
		Portfolio:  NewPortfolioHandler(viewUC, s.ownerID, appLogger),
	}

	s.router = NewRouter(handlers, jwtSvc, appLogger)
	s.token = s.login(testOwnerPassword)
}

func TestAdminAPI(t *testing.T) {
	suite.Run(t, new(AdminAPITestSuite))
}

func (s *AdminAPITestSuite) login(password string) string {
	body, _ := json.Marshal(gin.H{"email": testOwnerEmail, "password": password})
	rr := s.do(http.MethodPost, "/api/admin/auth/login", body, "")
	if rr.Code != http.StatusOK {
		return ""
	}
	var resp map[string]string
	json.Unmarshal(rr.Body.Bytes(), &resp)
	return resp["access_token"]
}

func (s *AdminAPITestSuite) do(method, path string, body []byte, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *AdminAPITestSuite) Test_Login_WrongPassword() {
	body, _ := json.Marshal(gin.H{"email": testOwnerEmail, "password": "nope"})
	rr := s.do(http.MethodPost, "/api/admin/auth/login", body, "")

	s.Equal(http.StatusUnauthorized, rr.Code)
	s.NotContains(rr.Body.String(), "access_token")
}

func (s *AdminAPITestSuite) Test_ProtectedRoute_RequiresToken() {
	rr := s.do(http.MethodGet, "/api/admin/profile", nil, "")
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *AdminAPITestSuite) Test_Profile_Get_And_Update() {
	rr := s.do(http.MethodGet, "/api/admin/profile", nil, s.token)
	s.Equal(http.StatusOK, rr.Code)

	var got ProfileDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &got))
	s.Equal(testOwnerEmail, got.Email)

	body, _ := json.Marshal(gin.H{"full_name": "Jane Doe", "bio": "Backend engineer"})
	rr = s.do(http.MethodPut, "/api/admin/profile", body, s.token)
	s.Equal(http.StatusOK, rr.Code)

	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &got))
	s.Equal("Jane Doe", got.FullName)
	s.Equal("Backend engineer", got.Bio)
	// email untouched by a profile patch
	s.Equal(testOwnerEmail, got.Email)
}

func (s *AdminAPITestSuite) Test_Project_Create_List_Delete() {
	body, _ := json.Marshal(gin.H{
		"name":        "Chess Engine",
		"description": "A UCI chess engine",
		"category":    "ai",
		"icon":        "Brain",
		"stack":       []string{"Go"},
	})
	rr := s.do(http.MethodPost, "/api/admin/projects", body, s.token)
	s.Require().Equal(http.StatusCreated, rr.Code)

	var created map[string]string
	json.Unmarshal(rr.Body.Bytes(), &created)
	s.NotEmpty(created["id"])

	rr = s.do(http.MethodGet, "/api/admin/projects", nil, s.token)
	s.Require().Equal(http.StatusOK, rr.Code)

	var projects []ProjectDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &projects))
	s.Require().Len(projects, 1)
	s.Equal("Chess Engine", projects[0].Name)
	s.Equal([]string{"Go"}, projects[0].Stack)
	s.Empty(projects[0].Link)

	rr = s.do(http.MethodDelete, "/api/admin/projects/"+created["id"], nil, s.token)
	s.Equal(http.StatusNoContent, rr.Code)

	rr = s.do(http.MethodGet, "/api/admin/projects", nil, s.token)
	json.Unmarshal(rr.Body.Bytes(), &projects)
	s.Empty(projects)
}

func (s *AdminAPITestSuite) Test_Project_Edit_ClearsLink() {
	body, _ := json.Marshal(gin.H{
		"name":        "Site",
		"description": "d",
		"category":    "web",
		"icon":        "Code",
		"link":        "https://old.example.com",
		"stack":       []string{"Go"},
	})
	rr := s.do(http.MethodPost, "/api/admin/projects", body, s.token)
	s.Require().Equal(http.StatusCreated, rr.Code)

	var created map[string]string
	json.Unmarshal(rr.Body.Bytes(), &created)

	// edit form resubmits every field; the cleared link must not survive
	body, _ = json.Marshal(gin.H{
		"name":        "Site",
		"description": "d",
		"category":    "web",
		"icon":        "Code",
		"stack":       []string{"Go"},
	})
	rr = s.do(http.MethodPut, "/api/admin/projects/"+created["id"], body, s.token)
	s.Require().Equal(http.StatusOK, rr.Code)

	rr = s.do(http.MethodGet, "/api/admin/projects", nil, s.token)
	var projects []ProjectDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &projects))
	s.Require().Len(projects, 1)
	s.Empty(projects[0].Link)
}

func (s *AdminAPITestSuite) Test_Project_InvalidCategory_Rejected() {
	body, _ := json.Marshal(gin.H{
		"name":        "Broken",
		"description": "bad category",
		"category":    "blockchain",
		"icon":        "Code",
		"stack":       []string{"Go"},
	})
	rr := s.do(http.MethodPost, "/api/admin/projects", body, s.token)

	s.Equal(http.StatusBadRequest, rr.Code)
	s.Zero(s.projectRepo.count())
}

func (s *AdminAPITestSuite) Test_Education_RoundTrip() {
	body, _ := json.Marshal(gin.H{
		"degree":      "MSc Computer Science",
		"school":      "ENSIAS",
		"description": "Distributed systems track",
		"start_date":  "2019-09-01",
		"end_date":    "2023-06-30",
	})
	rr := s.do(http.MethodPost, "/api/admin/education", body, s.token)
	s.Require().Equal(http.StatusCreated, rr.Code)

	rr = s.do(http.MethodGet, "/api/admin/education", nil, s.token)
	var entries []EducationDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &entries))
	s.Require().Len(entries, 1)
	s.Equal("ENSIAS", entries[0].School)
	s.NotEmpty(entries[0].ID)
}

func (s *AdminAPITestSuite) Test_Education_MissingEndDate_Rejected() {
	body, _ := json.Marshal(gin.H{
		"degree":      "BSc",
		"school":      "Somewhere",
		"description": "No end date and not current",
		"start_date":  "2019-09-01",
	})
	rr := s.do(http.MethodPost, "/api/admin/education", body, s.token)

	s.Equal(http.StatusBadRequest, rr.Code)
	s.Zero(s.educationRepo.count())
}

func (s *AdminAPITestSuite) Test_Experience_TasksRequired() {
	body, _ := json.Marshal(gin.H{
		"title":      "Engineer",
		"company":    "Acme",
		"start_date": "2020-01-15",
		"current":    true,
		"tasks":      []string{},
	})
	rr := s.do(http.MethodPost, "/api/admin/experiences", body, s.token)

	s.Equal(http.StatusBadRequest, rr.Code)
	s.Zero(s.experienceRepo.count())
}

func (s *AdminAPITestSuite) Test_SkillCategory_LevelBounds() {
	payload := func(level int) []byte {
		body, _ := json.Marshal(gin.H{
			"title":  "Backend",
			"icon":   "Database",
			"skills": []gin.H{{"name": "Go", "level": level}},
		})
		return body
	}

	rr := s.do(http.MethodPost, "/api/admin/skill-categories", payload(101), s.token)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Zero(s.skillsRepo.count())

	rr = s.do(http.MethodPost, "/api/admin/skill-categories", payload(100), s.token)
	s.Equal(http.StatusCreated, rr.Code)
	s.Equal(1, s.skillsRepo.count())
}

func (s *AdminAPITestSuite) Test_SocialLink_EmailTargetAccepted() {
	body, _ := json.Marshal(gin.H{
		"platform_name": "Mail",
		"url":           "jane@example.com",
		"icon":          "Mail",
	})
	rr := s.do(http.MethodPost, "/api/admin/social-links", body, s.token)
	s.Equal(http.StatusCreated, rr.Code)

	body, _ = json.Marshal(gin.H{
		"platform_name": "Github",
		"url":           "not a url",
		"icon":          "Github",
	})
	rr = s.do(http.MethodPost, "/api/admin/social-links", body, s.token)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal(1, s.socialRepo.count())
}

func (s *AdminAPITestSuite) Test_Update_UnknownRecord_NotFound() {
	body, _ := json.Marshal(gin.H{"phone": "+212 600-000-000"})
	rr := s.do(http.MethodPut, "/api/admin/contact-info/does-not-exist", body, s.token)
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *AdminAPITestSuite) Test_ChangePassword_WrongCurrent() {
	body, _ := json.Marshal(gin.H{
		"current_password": "wrong",
		"new_password":     "brand-new-pass",
	})
	rr := s.do(http.MethodPost, "/api/admin/settings/password", body, s.token)
	s.Equal(http.StatusUnauthorized, rr.Code)

	// old password still works
	s.NotEmpty(s.login(testOwnerPassword))
}

func (s *AdminAPITestSuite) Test_ChangePassword_Succeeds() {
	body, _ := json.Marshal(gin.H{
		"current_password": testOwnerPassword,
		"new_password":     "brand-new-pass",
	})
	rr := s.do(http.MethodPost, "/api/admin/settings/password", body, s.token)
	s.Equal(http.StatusOK, rr.Code)

	s.Empty(s.login(testOwnerPassword))
	s.NotEmpty(s.login("brand-new-pass"))
}

func (s *AdminAPITestSuite) Test_ChangeEmail_RequiresValidAddress() {
	body, _ := json.Marshal(gin.H{
		"new_email":        "not-an-email",
		"current_password": testOwnerPassword,
	})
	rr := s.do(http.MethodPost, "/api/admin/settings/email", body, s.token)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *AdminAPITestSuite) Test_PublicPortfolio_DefaultsWhenEmpty() {
	rr := s.do(http.MethodGet, "/api/portfolio", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code)

	var view struct {
		Hero struct {
			Name  string `json:"name"`
			Title string `json:"title"`
		} `json:"hero"`
		Projects []ProjectDTO `json:"projects"`
	}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &view))
	s.NotEmpty(view.Hero.Name)
	s.Empty(view.Projects)
}

func (s *AdminAPITestSuite) Test_PublicProjects_CategoryFilter() {
	create := func(name, category string) {
		body, _ := json.Marshal(gin.H{
			"name":        name,
			"description": "d",
			"category":    category,
			"icon":        "Code",
			"stack":       []string{"Go"},
		})
		rr := s.do(http.MethodPost, "/api/admin/projects", body, s.token)
		s.Require().Equal(http.StatusCreated, rr.Code)
	}
	create("Site", "web")
	create("Model", "ai")

	rr := s.do(http.MethodGet, "/api/portfolio/projects?category=ai", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code)

	var cards []map[string]any
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &cards))
	s.Require().Len(cards, 1)
	s.Equal("Model", cards[0]["name"])

	rr = s.do(http.MethodGet, "/api/portfolio/projects", nil, "")
	json.Unmarshal(rr.Body.Bytes(), &cards)
	s.Len(cards, 2)
}

func (s *AdminAPITestSuite) Test_Mutation_InvalidatesCachedView() {
	// prime the cache
	rr := s.do(http.MethodGet, "/api/portfolio", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code)

	body, _ := json.Marshal(gin.H{
		"name":        "New Project",
		"description": "d",
		"category":    "web",
		"icon":        "Code",
		"stack":       []string{"Go"},
	})
	rr = s.do(http.MethodPost, "/api/admin/projects", body, s.token)
	s.Require().Equal(http.StatusCreated, rr.Code)
	s.NotEmpty(s.events.events)

	rr = s.do(http.MethodGet, "/api/portfolio", nil, "")
	var view struct {
		Projects []map[string]any `json:"projects"`
	}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &view))
	s.Len(view.Projects, 1)
}
