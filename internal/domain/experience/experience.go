package experience

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID        string   `json:"-"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Current   bool     `json:"current"`
	Tasks     []string `json:"tasks"`
}

var ErrExperienceNotFound = errors.New("experience not found")

func (e *Experience) Validate() error {
	if e.Title == "" {
		return errors.New("title is required")
	}
	if e.Company == "" {
		return errors.New("company is required")
	}
	if _, err := time.Parse("2006-01-02", e.StartDate); err != nil {
		return errors.New("start date must be a valid ISO date")
	}
	if e.EndDate != "" {
		if _, err := time.Parse("2006-01-02", e.EndDate); err != nil {
			return errors.New("end date must be a valid ISO date")
		}
	}
	if e.EndDate == "" && !e.Current {
		return errors.New("end date is required unless the position is ongoing")
	}
	if len(e.Tasks) == 0 {
		return errors.New("at least one task is required")
	}
	for _, t := range e.Tasks {
		if t == "" {
			return errors.New("tasks cannot be empty")
		}
	}
	return nil
}

type Repository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]Experience, error)
	Create(ctx context.Context, ownerID uuid.UUID, exp Experience) (string, error)
	Update(ctx context.Context, ownerID uuid.UUID, id string, exp Experience) error
	Delete(ctx context.Context, ownerID uuid.UUID, id string) error
}
