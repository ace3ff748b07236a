package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamzabelkadi/portfolio-api/pkg/auth"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Profile    *ProfileHandler
	Education  *EducationHandler
	Experience *ExperienceHandler
	Project    *ProjectHandler
	Skills     *SkillsHandler
	Social     *SocialLinkHandler
	Contact    *ContactInfoHandler
	Media      *MediaHandler
	Portfolio  *PortfolioHandler
}

func NewRouter(h Handlers, jwtSvc *auth.JWTService, log logger.Logger) *gin.Engine {
	router := gin.Default()
	router.Use(ErrorMiddleware(log))

	authMiddleware := AuthMiddleware(jwtSvc)

	api := router.Group("/api")
	{

		admin := api.Group("/admin")
		{

			adminAuth := admin.Group("/auth")
			adminAuth.POST("/login", h.Auth.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{

				adminPrivate.GET("/profile", h.Profile.GetProfile)
				adminPrivate.PUT("/profile", h.Profile.UpdateProfile)

				settings := adminPrivate.Group("/settings")
				{
					settings.POST("/email", h.Auth.ChangeEmail)
					settings.POST("/password", h.Auth.ChangePassword)
				}

				education := adminPrivate.Group("/education")
				{
					education.GET("", h.Education.ListEducation)
					education.POST("", h.Education.CreateEducation)
					education.PUT("/:id", h.Education.UpdateEducation)
					education.DELETE("/:id", h.Education.DeleteEducation)
				}

				experiences := adminPrivate.Group("/experiences")
				{
					experiences.GET("", h.Experience.ListExperiences)
					experiences.POST("", h.Experience.CreateExperience)
					experiences.PUT("/:id", h.Experience.UpdateExperience)
					experiences.DELETE("/:id", h.Experience.DeleteExperience)
				}

				projects := adminPrivate.Group("/projects")
				{
					projects.GET("", h.Project.ListProjects)
					projects.POST("", h.Project.CreateProject)
					projects.PUT("/:id", h.Project.UpdateProject)
					projects.DELETE("/:id", h.Project.DeleteProject)
				}

				skillCategories := adminPrivate.Group("/skill-categories")
				{
					skillCategories.GET("", h.Skills.ListSkillCategories)
					skillCategories.POST("", h.Skills.CreateSkillCategory)
					skillCategories.PUT("/:id", h.Skills.UpdateSkillCategory)
					skillCategories.DELETE("/:id", h.Skills.DeleteSkillCategory)
				}

				socialLinks := adminPrivate.Group("/social-links")
				{
					socialLinks.GET("", h.Social.ListSocialLinks)
					socialLinks.POST("", h.Social.CreateSocialLink)
					socialLinks.PUT("/:id", h.Social.UpdateSocialLink)
					socialLinks.DELETE("/:id", h.Social.DeleteSocialLink)
				}

				contactInfo := adminPrivate.Group("/contact-info")
				{
					contactInfo.GET("", h.Contact.ListContactInfo)
					contactInfo.POST("", h.Contact.CreateContactInfo)
					contactInfo.PUT("/:id", h.Contact.UpdateContactInfo)
					contactInfo.DELETE("/:id", h.Contact.DeleteContactInfo)
				}

				adminPrivate.POST("/media", h.Media.UploadImage)
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/portfolio", h.Portfolio.GetPortfolio)
			public.GET("/portfolio/projects", h.Portfolio.GetPortfolioProjects)
		}
	}

	return router
}
