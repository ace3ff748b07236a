package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	skillsUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/skills"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
)

type SkillsHandler struct {
	useCase *skillsUC.SkillsUseCase
}

func NewSkillsHandler(uc *skillsUC.SkillsUseCase) *SkillsHandler {
	return &SkillsHandler{useCase: uc}
}

func (h *SkillsHandler) ListSkillCategories(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	cats, err := h.useCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]SkillCategoryDTO, len(cats))
	for i, cat := range cats {
		dtos[i] = ToSkillCategoryDTO(cat)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *SkillsHandler) CreateSkillCategory(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req SkillCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	id, err := h.useCase.Create(c.Request.Context(), ownerID, req.ToDomain())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *SkillsHandler) UpdateSkillCategory(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id := c.Param("id")

	var req SkillCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	if err := h.useCase.Update(c.Request.Context(), ownerID, id, req.ToDomain()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill category updated"})
}

func (h *SkillsHandler) DeleteSkillCategory(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id := c.Param("id")

	if err := h.useCase.Delete(c.Request.Context(), ownerID, id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
