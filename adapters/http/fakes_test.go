package http

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/hamzabelkadi/portfolio-api/adapters/event"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/portfolio"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/user"
	"github.com/hamzabelkadi/portfolio-api/pkg/apperror"
)

// memRepo is an in-memory collection keyed by generated record IDs,
// preserving insertion order like the real store does.
type memRepo[T any] struct {
	mu     sync.Mutex
	order  []string
	items  map[string]T
	withID func(T, string) T
}

func newMemRepo[T any](withID func(T, string) T) *memRepo[T] {
	return &memRepo[T]{items: make(map[string]T), withID: withID}
}

func (r *memRepo[T]) List(_ context.Context, _ uuid.UUID) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.withID(r.items[id], id))
	}
	return out, nil
}

func (r *memRepo[T]) Create(_ context.Context, _ uuid.UUID, item T) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.NewString()
	r.items[id] = item
	r.order = append(r.order, id)
	return id, nil
}

func (r *memRepo[T]) Update(_ context.Context, _ uuid.UUID, id string, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperror.NewNotFound("record", id)
	}
	r.items[id] = item
	return nil
}

func (r *memRepo[T]) Delete(_ context.Context, _ uuid.UUID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperror.NewNotFound("record", id)
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memRepo[T]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type memUserRepo struct {
	mu   sync.Mutex
	user user.User
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.user.Email != email {
		return nil, apperror.NewNotFound("user", email)
	}
	u := r.user
	return &u, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.user.ID != id {
		return nil, apperror.NewNotFound("user", id.String())
	}
	u := r.user
	return &u, nil
}

func (r *memUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, patch user.ProfilePatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.user.ID != id {
		return apperror.NewNotFound("user", id.String())
	}
	if patch.FullName != nil {
		r.user.FullName = *patch.FullName
	}
	if patch.Bio != nil {
		r.user.Bio = *patch.Bio
	}
	if patch.ImageURL != nil {
		r.user.ImageURL = *patch.ImageURL
	}
	return nil
}

func (r *memUserRepo) UpdateEmail(_ context.Context, id uuid.UUID, newEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.user.ID != id {
		return apperror.NewNotFound("user", id.String())
	}
	r.user.Email = newEmail
	return nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.user.ID != id {
		return apperror.NewNotFound("user", id.String())
	}
	r.user.PasswordHash = passwordHash
	return nil
}

type memPublisher struct {
	mu     sync.Mutex
	events []event.ContentEvent
}

func (p *memPublisher) PublishContentEvent(_ context.Context, ev event.ContentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

type memViewCache struct {
	mu    sync.Mutex
	views map[uuid.UUID]*portfolio.View
}

func newMemViewCache() *memViewCache {
	return &memViewCache{views: make(map[uuid.UUID]*portfolio.View)}
}

func (c *memViewCache) Get(_ context.Context, ownerID uuid.UUID) (*portfolio.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.views[ownerID], nil
}

func (c *memViewCache) Set(_ context.Context, ownerID uuid.UUID, view *portfolio.View) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views[ownerID] = view
	return nil
}

func (c *memViewCache) Invalidate(_ context.Context, ownerID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.views, ownerID)
	return nil
}

type memUploader struct{}

func (memUploader) Upload(_ context.Context, file io.Reader, folder string, publicID string) (string, error) {
	io.Copy(io.Discard, file)
	return "https://res.example.com/" + folder + "/" + publicID + ".jpg", nil
}
