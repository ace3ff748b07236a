package skills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

var validIcons = map[string]bool{
	"Code": true, "Brain": true, "Database": true, "GitBranch": true, "Users": true,
}

type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillList normalizes the two storage shapes for skills within a category:
// a plain JSON array, or an id-keyed object left behind by older writes.
// Object entries are ordered by key so decoding stays deterministic.
type SkillList []Skill

func (l *SkillList) UnmarshalJSON(data []byte) error {
	var asArray []Skill
	if err := json.Unmarshal(data, &asArray); err == nil {
		*l = asArray
		return nil
	}

	var asMap map[string]Skill
	if err := json.Unmarshal(data, &asMap); err != nil {
		return fmt.Errorf("skills must be an array or an id-keyed object: %w", err)
	}

	keys := make([]string, 0, len(asMap))
	for k := range asMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(SkillList, 0, len(asMap))
	for _, k := range keys {
		out = append(out, asMap[k])
	}
	*l = out
	return nil
}

type SkillCategory struct {
	ID     string    `json:"-"`
	Title  string    `json:"title"`
	Icon   string    `json:"icon"`
	Skills SkillList `json:"skills"`
}

var (
	ErrCategoryNotFound = errors.New("skill category not found")
	ErrInvalidIcon      = errors.New("invalid skill category icon")
	ErrLevelOutOfRange  = errors.New("skill level must be between 0 and 100")
)

func (c *SkillCategory) Validate() error {
	if c.Title == "" {
		return errors.New("category title is required")
	}
	if !validIcons[c.Icon] {
		return ErrInvalidIcon
	}
	if len(c.Skills) == 0 {
		return errors.New("at least one skill is required")
	}
	for _, s := range c.Skills {
		if s.Name == "" {
			return errors.New("skill name is required")
		}
		if s.Level < 0 || s.Level > 100 {
			return ErrLevelOutOfRange
		}
	}
	return nil
}

type Repository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]SkillCategory, error)
	Create(ctx context.Context, ownerID uuid.UUID, cat SkillCategory) (string, error)
	Update(ctx context.Context, ownerID uuid.UUID, id string, cat SkillCategory) error
	Delete(ctx context.Context, ownerID uuid.UUID, id string) error
}
