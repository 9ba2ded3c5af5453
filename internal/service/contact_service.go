package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/notify"
	"github.com/roguepikachu/smileline/internal/repository"
	"github.com/roguepikachu/smileline/pkg/logger"
)

// Pagination bounds for listing submissions.
const (
	ServiceDefaultPage  = 1
	ServiceDefaultLimit = 20
	ServiceMaxLimit     = 100
	// ServiceMaxPage bounds page so offsets stay far from int overflow.
	ServiceMaxPage = 10000
)

// ErrSubmissionNotFound is returned when a submission ID is unknown.
var ErrSubmissionNotFound = errors.New("submission not found")

// ContactService accepts contact form submissions.
type ContactService struct {
	repo     repository.ContactRepository
	notifier notify.Notifier
	spam     *SpamFilter
	clock    Clock
	idGen    func() string
}

// ContactOption configures a ContactService.
type ContactOption func(*ContactService)

// WithIDGenerator overrides how submission IDs are generated.
func WithIDGenerator(f func() string) ContactOption {
	return func(s *ContactService) { s.idGen = f }
}

// WithSpamFilter overrides the default spam filter.
func WithSpamFilter(f *SpamFilter) ContactOption {
	return func(s *ContactService) { s.spam = f }
}

// NewContactService creates a ContactService. A nil notifier logs submissions.
func NewContactService(repo repository.ContactRepository, notifier notify.Notifier, clock Clock, opts ...ContactOption) *ContactService {
	if notifier == nil {
		notifier = notify.Log{}
	}
	s := &ContactService{
		repo:     repo,
		notifier: notifier,
		spam:     NewSpamFilter(nil),
		clock:    clock,
		idGen:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit filters, stores and forwards a submission.
// Notification failures are logged and do not fail the submission.
func (s *ContactService) Submit(ctx context.Context, req domain.ContactRequestDTO, meta domain.ClientMeta) (domain.ContactSubmission, error) {
	if reason := s.spam.Check(req); reason != "" {
		logger.With(ctx, map[string]any{"reason": reason, "ip": meta.IP}).Warn("contact submission rejected as spam")
		return domain.ContactSubmission{}, domain.ErrSpamDetected
	}
	sub := domain.ContactSubmission{
		ID:         s.idGen(),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Message:    strings.TrimSpace(req.Message),
		IP:         meta.IP,
		UserAgent:  meta.UserAgent,
		ReceivedAt: s.clock.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, sub); err != nil {
		return domain.ContactSubmission{}, fmt.Errorf("store submission: %w", err)
	}
	if err := s.notifier.NotifyContact(ctx, sub); err != nil {
		logger.Error(ctx, "contact notification failed for %s: %v", sub.ID, err)
	}
	return sub, nil
}

// List returns a page of submissions, newest first.
func (s *ContactService) List(ctx context.Context, page, limit int) ([]domain.ContactSubmission, error) {
	if limit > ServiceMaxLimit {
		limit = ServiceMaxLimit
	}
	if limit < 1 {
		limit = ServiceDefaultLimit
	}
	if page < 1 {
		page = ServiceDefaultPage
	}
	if page > ServiceMaxPage {
		return []domain.ContactSubmission{}, nil
	}
	return s.repo.List(ctx, page, limit)
}

// Get fetches one submission.
func (s *ContactService) Get(ctx context.Context, id string) (domain.ContactSubmission, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ContactSubmission{}, ErrSubmissionNotFound
		}
		return domain.ContactSubmission{}, fmt.Errorf("find by id: %w", err)
	}
	return sub, nil
}
