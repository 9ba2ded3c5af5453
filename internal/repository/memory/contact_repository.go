// Package memory provides in-process implementations of the repository interfaces.
// They back the site when no database is configured and double as test fakes.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/repository"
)

// ContactRepository is an in-memory repository.ContactRepository.
type ContactRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.ContactSubmission
}

// Option configures the repository.
type Option func(*ContactRepository)

// WithItems seeds the repository with the provided submissions (by ID).
func WithItems(items ...domain.ContactSubmission) Option {
	return func(r *ContactRepository) {
		for _, s := range items {
			r.byID[s.ID] = s
		}
	}
}

// NewContactRepository creates a new in-memory repo.
func NewContactRepository(opts ...Option) *ContactRepository {
	r := &ContactRepository{byID: make(map[string]domain.ContactSubmission)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Insert stores s, replacing any submission with the same ID.
func (r *ContactRepository) Insert(_ context.Context, s domain.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[s.ID] = s
	return nil
}

// FindByID returns repository.ErrNotFound for unknown IDs.
func (r *ContactRepository) FindByID(_ context.Context, id string) (domain.ContactSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.byID[id]; ok {
		return s, nil
	}
	return domain.ContactSubmission{}, repository.ErrNotFound
}

// List returns submissions newest first.
func (r *ContactRepository) List(_ context.Context, page, limit int) ([]domain.ContactSubmission, error) {
	r.mu.RLock()
	items := make([]domain.ContactSubmission, 0, len(r.byID))
	for _, s := range r.byID {
		items = append(items, s)
	}
	r.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].ReceivedAt.After(items[j].ReceivedAt) })
	return paginate(items, page, limit), nil
}

func paginate(items []domain.ContactSubmission, page, limit int) []domain.ContactSubmission {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if page-1 >= len(items)/limit+1 {
		return []domain.ContactSubmission{}
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []domain.ContactSubmission{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
