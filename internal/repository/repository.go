// Package repository defines the storage contracts used by the services.
package repository

import (
	"context"
	"errors"

	"github.com/roguepikachu/smileline/internal/domain"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ContactRepository stores accepted contact form submissions.
type ContactRepository interface {
	Insert(ctx context.Context, s domain.ContactSubmission) error
	FindByID(ctx context.Context, id string) (domain.ContactSubmission, error)
	List(ctx context.Context, page, limit int) ([]domain.ContactSubmission, error)
}

// ScheduleRepository stores the Monday-first weekly office hours.
type ScheduleRepository interface {
	Week(ctx context.Context) ([]domain.ScheduleEntry, error)
	Save(ctx context.Context, week []domain.ScheduleEntry) error
}
