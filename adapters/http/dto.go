package http

import (
	"time"

	"github.com/hamzabelkadi/portfolio-api/internal/domain/contact"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/education"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/experience"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/project"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/skills"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/social"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/user"
)

// Profile DTOs

type ProfileDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Bio       string    `json:"bio"`
	ImageURL  string    `json:"image_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToProfileDTO(u *user.User) ProfileDTO {
	return ProfileDTO{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Bio:       u.Bio,
		ImageURL:  u.ImageURL,
		UpdatedAt: u.UpdatedAt,
	}
}

// UpdateProfileRequest carries a partial update: absent fields stay as
// they are.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"image_url" binding:"omitempty,url"`
}

func (r *UpdateProfileRequest) ToPatch() user.ProfilePatch {
	return user.ProfilePatch{
		FullName: r.FullName,
		Bio:      r.Bio,
		ImageURL: r.ImageURL,
	}
}

// Settings DTOs

type ChangeEmailRequest struct {
	NewEmail        string `json:"new_email" binding:"required,email"`
	CurrentPassword string `json:"current_password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// Education DTOs

type EducationRequest struct {
	Degree      string `json:"degree" binding:"required"`
	School      string `json:"school" binding:"required"`
	Description string `json:"description" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
}

func (r *EducationRequest) ToDomain() education.Education {
	return education.Education{
		Degree:      r.Degree,
		School:      r.School,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Current:     r.Current,
	}
}

type EducationDTO struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
}

func ToEducationDTO(e education.Education) EducationDTO {
	return EducationDTO{
		ID:          e.ID,
		Degree:      e.Degree,
		School:      e.School,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Current:     e.Current,
	}
}

// Experience DTOs

type ExperienceRequest struct {
	Title     string   `json:"title" binding:"required"`
	Company   string   `json:"company" binding:"required"`
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date"`
	Current   bool     `json:"current"`
	Tasks     []string `json:"tasks" binding:"required,min=1,dive,required"`
}

func (r *ExperienceRequest) ToDomain() experience.Experience {
	return experience.Experience{
		Title:     r.Title,
		Company:   r.Company,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Current:   r.Current,
		Tasks:     r.Tasks,
	}
}

type ExperienceDTO struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Current   bool     `json:"current"`
	Tasks     []string `json:"tasks"`
}

func ToExperienceDTO(e experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:        e.ID,
		Title:     e.Title,
		Company:   e.Company,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Current:   e.Current,
		Tasks:     e.Tasks,
	}
}

// Project DTOs

type ProjectRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required,oneof=web ai mobile desktop"`
	Icon        string   `json:"icon" binding:"required"`
	Link        string   `json:"link" binding:"omitempty,url"`
	ImageURL    string   `json:"image_url" binding:"omitempty,url"`
	Stack       []string `json:"stack" binding:"required,min=1,dive,required"`
}

func (r *ProjectRequest) ToDomain() project.Project {
	return project.Project{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Icon:        r.Icon,
		Link:        r.Link,
		ImageURL:    r.ImageURL,
		Stack:       r.Stack,
	}
}

type ProjectDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Icon        string   `json:"icon"`
	Link        string   `json:"link,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Stack       []string `json:"stack"`
}

func ToProjectDTO(p project.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Icon:        p.Icon,
		Link:        p.Link,
		ImageURL:    p.ImageURL,
		Stack:       p.Stack,
	}
}

// Skill category DTOs

type SkillPayload struct {
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level" binding:"gte=0,lte=100"`
}

type SkillCategoryRequest struct {
	Title  string         `json:"title" binding:"required"`
	Icon   string         `json:"icon" binding:"required,oneof=Code Brain Database GitBranch Users"`
	Skills []SkillPayload `json:"skills" binding:"required,min=1,dive"`
}

func (r *SkillCategoryRequest) ToDomain() skills.SkillCategory {
	list := make(skills.SkillList, len(r.Skills))
	for i, s := range r.Skills {
		list[i] = skills.Skill{Name: s.Name, Level: s.Level}
	}
	return skills.SkillCategory{
		Title:  r.Title,
		Icon:   r.Icon,
		Skills: list,
	}
}

type SkillCategoryDTO struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Icon   string         `json:"icon"`
	Skills []SkillPayload `json:"skills"`
}

func ToSkillCategoryDTO(c skills.SkillCategory) SkillCategoryDTO {
	payloads := make([]SkillPayload, len(c.Skills))
	for i, s := range c.Skills {
		payloads[i] = SkillPayload{Name: s.Name, Level: s.Level}
	}
	return SkillCategoryDTO{
		ID:     c.ID,
		Title:  c.Title,
		Icon:   c.Icon,
		Skills: payloads,
	}
}

// Social link DTOs

type SocialLinkRequest struct {
	PlatformName string `json:"platform_name" binding:"required"`
	URL          string `json:"url" binding:"required"`
	Icon         string `json:"icon" binding:"required"`
}

func (r *SocialLinkRequest) ToDomain() social.SocialLink {
	return social.SocialLink{
		PlatformName: r.PlatformName,
		URL:          r.URL,
		Icon:         r.Icon,
	}
}

type SocialLinkDTO struct {
	ID           string `json:"id"`
	PlatformName string `json:"platform_name"`
	URL          string `json:"url"`
	Icon         string `json:"icon"`
}

func ToSocialLinkDTO(l social.SocialLink) SocialLinkDTO {
	return SocialLinkDTO{
		ID:           l.ID,
		PlatformName: l.PlatformName,
		URL:          l.URL,
		Icon:         l.Icon,
	}
}

// Contact info DTOs

type ContactInfoRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type ContactInfoDTO struct {
	ID    string `json:"id"`
	Phone string `json:"phone"`
}

func ToContactInfoDTO(c contact.ContactInfo) ContactInfoDTO {
	return ContactInfoDTO{ID: c.ID, Phone: c.Phone}
}
