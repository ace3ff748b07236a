package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	contactUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/contact"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/contact"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
)

type ContactInfoHandler struct {
	useCase *contactUC.ContactInfoUseCase
}

func NewContactInfoHandler(uc *contactUC.ContactInfoUseCase) *ContactInfoHandler {
	return &ContactInfoHandler{useCase: uc}
}

func (h *ContactInfoHandler) ListContactInfo(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	infos, err := h.useCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ContactInfoDTO, len(infos))
	for i, info := range infos {
		dtos[i] = ToContactInfoDTO(info)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ContactInfoHandler) CreateContactInfo(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	id, err := h.useCase.Create(c.Request.Context(), ownerID, contact.ContactInfo{Phone: req.Phone})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ContactInfoHandler) UpdateContactInfo(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id := c.Param("id")

	var req ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	if err := h.useCase.Update(c.Request.Context(), ownerID, id, contact.ContactInfo{Phone: req.Phone}); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact info updated"})
}

func (h *ContactInfoHandler) DeleteContactInfo(c *gin.Context) {
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
