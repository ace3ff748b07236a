package media

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hamzabelkadi/portfolio-api/internal/application/service"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

type UploadImageUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadImageUseCase(uploader service.Uploader, log logger.Logger) *UploadImageUseCase {
	return &UploadImageUseCase{uploader: uploader, logger: log}
}

// Execute uploads an image and returns its public URL, to be pasted into
// profile or project records.
func (uc *UploadImageUseCase) Execute(ctx context.Context, ownerID uuid.UUID, file io.Reader, filename string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" || base == "." {
		base = "image"
	}
	publicID := base + "-" + uuid.NewString()[:8]
	folder := "portfolio/" + ownerID.String()

	url, err := uc.uploader.Upload(ctx, file, folder, publicID)
	if err != nil {
		return "", apperror.NewInternal("image upload failed", err)
	}
	return url, nil
}
