package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	socialUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/social"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
)

type SocialLinkHandler struct {
	useCase *socialUC.SocialLinkUseCase
}

func NewSocialLinkHandler(uc *socialUC.SocialLinkUseCase) *SocialLinkHandler {
	return &SocialLinkHandler{useCase: uc}
}

func (h *SocialLinkHandler) ListSocialLinks(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	links, err := h.useCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]SocialLinkDTO, len(links))
	for i, l := range links {
		dtos[i] = ToSocialLinkDTO(l)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *SocialLinkHandler) CreateSocialLink(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req SocialLinkRequest
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

func (h *SocialLinkHandler) UpdateSocialLink(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id := c.Param("id")

	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	if err := h.useCase.Update(c.Request.Context(), ownerID, id, req.ToDomain()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Social link updated"})
}

func (h *SocialLinkHandler) DeleteSocialLink(c *gin.Context) {
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
