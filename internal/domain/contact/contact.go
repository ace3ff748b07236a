package contact

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ContactInfo carries the owner's phone number. The stored shape is a
// collection with at most one meaningful entry; the transformer takes the
// first record it finds.
type ContactInfo struct {
	ID    string `json:"-"`
	Phone string `json:"phone"`
}

var ErrContactNotFound = errors.New("contact info not found")

func (c *ContactInfo) Validate() error {
	if c.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}

type Repository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]ContactInfo, error)
	Create(ctx context.Context, ownerID uuid.UUID, info ContactInfo) (string, error)
	Update(ctx context.Context, ownerID uuid.UUID, id string, info ContactInfo) error
	Delete(ctx context.Context, ownerID uuid.UUID, id string) error
}
