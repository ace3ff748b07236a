package auth

import (
	"context"
	"errors"
	"net/mail"

	"github.com/google/uuid"

	"github.com/hamzabelkadi/portfolio-api/internal/domain/user"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
	"github.com/hamzabelkadi/portfolio-api/pkg/auth"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

const minPasswordLength = 6

// CredentialsUseCase changes the owner's email or password. Both flows
// replay the current password against the stored hash before mutating,
// so a leaked token alone cannot rotate login credentials.
type CredentialsUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewCredentialsUseCase(repo user.Repository, log logger.Logger) *CredentialsUseCase {
	return &CredentialsUseCase{userRepo: repo, logger: log}
}

type ChangeEmailInput struct {
	OwnerID         uuid.UUID
	NewEmail        string
	CurrentPassword string
}

func (uc *CredentialsUseCase) ChangeEmail(ctx context.Context, input ChangeEmailInput) error {
	ctx, span := tracer.Start(ctx, "ChangeEmail")
	defer span.End()

	if _, err := mail.ParseAddress(input.NewEmail); err != nil {
		return apperror.NewInvalidInput("new email is not a valid address", err)
	}

	if err := uc.reauthenticate(ctx, input.OwnerID, input.CurrentPassword); err != nil {
		span.RecordError(err)
		return err
	}

	if err := uc.userRepo.UpdateEmail(ctx, input.OwnerID, input.NewEmail); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

type ChangePasswordInput struct {
	OwnerID         uuid.UUID
	CurrentPassword string
	NewPassword     string
}

func (uc *CredentialsUseCase) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	ctx, span := tracer.Start(ctx, "ChangePassword")
	defer span.End()

	if len(input.NewPassword) < minPasswordLength {
		return apperror.NewInvalidInput("new password is too short", errors.New("password must be at least 6 characters"))
	}

	if err := uc.reauthenticate(ctx, input.OwnerID, input.CurrentPassword); err != nil {
		span.RecordError(err)
		return err
	}

	hash, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		return apperror.NewInternal("failed to hash new password", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, input.OwnerID, hash); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// reauthenticate is the credential replay step. A missing user means the
// session is stale; a mismatched password is reported distinctly.
func (uc *CredentialsUseCase) reauthenticate(ctx context.Context, ownerID uuid.UUID, currentPassword string) error {
	u, err := uc.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return apperror.NewUnauthorized("session no longer matches a known user", err)
	}
	if !auth.CheckPasswordHash(currentPassword, u.PasswordHash) {
		return apperror.NewWrongPassword("credential replay failed")
	}
	return nil
}
