package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	mediaUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/media"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type MediaHandler struct {
	uploadImageUC *mediaUC.UploadImageUseCase
	logger        logger.Logger
}

func NewMediaHandler(uploadUC *mediaUC.UploadImageUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{
		uploadImageUC: uploadUC,
		logger:        log,
	}
}

func (h *MediaHandler) UploadImage(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	url, err := h.uploadImageUC.Execute(c.Request.Context(), ownerID, file, fileHeader.Filename)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
