package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the site owner. Profile fields (full name, bio, image) live on
// the user row itself and feed the public hero/contact sections.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Bio          string    `json:"bio"`
	ImageURL     string    `json:"image_url"`
	PasswordHash string    `json:"-"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfilePatch is a partial profile update: nil fields are left untouched.
type ProfilePatch struct {
	FullName *string
	Bio      *string
	ImageURL *string
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, patch ProfilePatch) error
	UpdateEmail(ctx context.Context, id uuid.UUID, newEmail string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
