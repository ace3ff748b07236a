package social

import (
	"context"
	"errors"
	"net/mail"
	"net/url"

	"github.com/google/uuid"
)

var validIcons = map[string]bool{
	"Github": true, "Linkedin": true, "Twitter": true, "Instagram": true,
	"Facebook": true, "Youtube": true, "Mail": true, "Globe": true, "Phone": true,
}

// SocialLink points at a profile elsewhere. URL holds either an absolute
// URL or a bare email address (the contact block renders both).
type SocialLink struct {
	ID           string `json:"-"`
	PlatformName string `json:"platform_name"`
	URL          string `json:"url"`
	Icon         string `json:"icon"`
}

var (
	ErrLinkNotFound  = errors.New("social link not found")
	ErrInvalidIcon   = errors.New("invalid social link icon")
	ErrInvalidTarget = errors.New("must be a valid URL or email address")
)

func (l *SocialLink) Validate() error {
	if l.PlatformName == "" {
		return errors.New("platform name is required")
	}
	if !validIcons[l.Icon] {
		return ErrInvalidIcon
	}
	if !IsURLOrEmail(l.URL) {
		return ErrInvalidTarget
	}
	return nil
}

func IsURLOrEmail(value string) bool {
	if value == "" {
		return false
	}
	if u, err := url.Parse(value); err == nil && u.Scheme != "" && u.Host != "" {
		return true
	}
	if addr, err := mail.ParseAddress(value); err == nil && addr.Address == value {
		return true
	}
	return false
}

type Repository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]SocialLink, error)
	Create(ctx context.Context, ownerID uuid.UUID, link SocialLink) (string, error)
	Update(ctx context.Context, ownerID uuid.UUID, id string, link SocialLink) error
	Delete(ctx context.Context, ownerID uuid.UUID, id string) error
}
