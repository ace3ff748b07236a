package education

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Education is one timeline entry. Dates are ISO date strings as stored;
// when Current is true the end date is ignored for display.
type Education struct {
	ID          string `json:"-"`
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
}

var ErrEducationNotFound = errors.New("education entry not found")

func (e *Education) Validate() error {
	if e.Degree == "" {
		return errors.New("degree is required")
	}
	if e.School == "" {
		return errors.New("school is required")
	}
	if e.Description == "" {
		return errors.New("description is required")
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
		return errors.New("end date is required unless the entry is ongoing")
	}
	return nil
}

type Repository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]Education, error)
	Create(ctx context.Context, ownerID uuid.UUID, entry Education) (string, error)
	Update(ctx context.Context, ownerID uuid.UUID, id string, entry Education) error
	Delete(ctx context.Context, ownerID uuid.UUID, id string) error
}
