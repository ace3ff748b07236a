package project

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"
)

const (
	CategoryWeb     = "web"
	CategoryAI      = "ai"
	CategoryMobile  = "mobile"
	CategoryDesktop = "desktop"
)

// icon tags the admin form offers for project cards
var validIcons = map[string]bool{
	"Bot": true, "LibraryBig": true, "BookOpen": true, "Video": true,
	"Camera": true, "Brain": true, "ShieldCheck": true, "Code": true,
	"Printer": true, "Palette": true,
}

type Project struct {
	ID          string   `json:"-"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Icon        string   `json:"icon"`
	Link        string   `json:"link,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Stack       []string `json:"stack"`
}

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidCategory = errors.New("invalid project category")
	ErrInvalidIcon     = errors.New("invalid project icon")
)

func (p *Project) Validate() error {
	if p.Name == "" {
		return errors.New("project name is required")
	}
	if p.Description == "" {
		return errors.New("description is required")
	}
	switch p.Category {
	case CategoryWeb, CategoryAI, CategoryMobile, CategoryDesktop:
	default:
		return ErrInvalidCategory
	}
	if !validIcons[p.Icon] {
		return ErrInvalidIcon
	}
	if p.Link != "" && !isAbsoluteURL(p.Link) {
		return errors.New("link must be a valid URL")
	}
	if p.ImageURL != "" && !isAbsoluteURL(p.ImageURL) {
		return errors.New("image_url must be a valid URL")
	}
	if len(p.Stack) == 0 {
		return errors.New("at least one technology is required")
	}
	for _, tech := range p.Stack {
		if tech == "" {
			return errors.New("stack entries cannot be empty")
		}
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

type Repository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]Project, error)
	Create(ctx context.Context, ownerID uuid.UUID, p Project) (string, error)
	Update(ctx context.Context, ownerID uuid.UUID, id string, p Project) error
	Delete(ctx context.Context, ownerID uuid.UUID, id string) error
}
