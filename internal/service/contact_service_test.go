package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/repository"
	"github.com/roguepikachu/smileline/internal/repository/memory"
)

type recordingNotifier struct {
	got []domain.ContactSubmission
	err error
}

func (n *recordingNotifier) NotifyContact(_ context.Context, s domain.ContactSubmission) error {
	n.got = append(n.got, s)
	return n.err
}

type failingContactRepo struct{ err error }

func (f failingContactRepo) Insert(context.Context, domain.ContactSubmission) error { return f.err }

func (f failingContactRepo) FindByID(context.Context, string) (domain.ContactSubmission, error) {
	return domain.ContactSubmission{}, f.err
}

func (f failingContactRepo) List(context.Context, int, int) ([]domain.ContactSubmission, error) {
	return nil, f.err
}

type listArgsRepo struct {
	memory.ContactRepository
	page, limit int
}

func (l *listArgsRepo) List(_ context.Context, page, limit int) ([]domain.ContactSubmission, error) {
	l.page, l.limit = page, limit
	return nil, nil
}

func validRequest() domain.ContactRequestDTO {
	return domain.ContactRequestDTO{
		Name:    "  Ana Lima ",
		Email:   "ana@example.com",
		Phone:   "555-0100",
		Message: "Can I book a cleaning next week?",
	}
}

func TestSubmit_StoresAndNotifies(t *testing.T) {
	fixed := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := memory.NewContactRepository()
	n := &recordingNotifier{}
	svc := NewContactService(repo, n, stubClock{t: fixed}, WithIDGenerator(func() string { return "sub-1" }))

	got, err := svc.Submit(context.Background(), validRequest(), domain.ClientMeta{IP: "10.0.0.1", UserAgent: "test"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.ID != "sub-1" || got.Name != "Ana Lima" || !got.ReceivedAt.Equal(fixed) || got.IP != "10.0.0.1" {
		t.Fatalf("unexpected submission: %+v", got)
	}
	stored, err := repo.FindByID(context.Background(), "sub-1")
	if err != nil || stored.Email != "ana@example.com" {
		t.Fatalf("not stored: %+v %v", stored, err)
	}
	if len(n.got) != 1 || n.got[0].ID != "sub-1" {
		t.Fatalf("notifier not called: %+v", n.got)
	}
}

func TestSubmit_NotifierFailureIsNotFatal(t *testing.T) {
	n := &recordingNotifier{err: errors.New("broker down")}
	svc := NewContactService(memory.NewContactRepository(), n, stubClock{t: time.Now()})
	if _, err := svc.Submit(context.Background(), validRequest(), domain.ClientMeta{}); err != nil {
		t.Fatalf("submit should succeed, got %v", err)
	}
}

func TestSubmit_Spam(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ContactRequestDTO)
	}{
		{"honeypot", func(r *domain.ContactRequestDTO) { r.Website = "http://spam.example" }},
		{"link in message", func(r *domain.ContactRequestDTO) { r.Message = "Visit HTTPS://cheap.example now" }},
		{"keyword in name", func(r *domain.ContactRequestDTO) { r.Name = "Best Casino" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewContactRepository()
			n := &recordingNotifier{}
			svc := NewContactService(repo, n, stubClock{t: time.Now()})
			req := validRequest()
			tt.mutate(&req)
			if _, err := svc.Submit(context.Background(), req, domain.ClientMeta{}); !errors.Is(err, domain.ErrSpamDetected) {
				t.Fatalf("want ErrSpamDetected, got %v", err)
			}
			if items, _ := repo.List(context.Background(), 1, 10); len(items) != 0 {
				t.Fatalf("spam must not be stored, got %d", len(items))
			}
			if len(n.got) != 0 {
				t.Fatal("spam must not be forwarded")
			}
		})
	}
}

func TestSubmit_CustomPatterns(t *testing.T) {
	svc := NewContactService(memory.NewContactRepository(), nil, stubClock{t: time.Now()}, WithSpamFilter(NewSpamFilter([]string{" Teeth Whitening Deal "})))
	req := validRequest()
	req.Message = "Exclusive TEETH WHITENING DEAL inside"
	if _, err := svc.Submit(context.Background(), req, domain.ClientMeta{}); !errors.Is(err, domain.ErrSpamDetected) {
		t.Fatalf("want ErrSpamDetected, got %v", err)
	}
	// links are fine once defaults are replaced
	req.Message = "my x-ray is at https://portal.example"
	if _, err := svc.Submit(context.Background(), req, domain.ClientMeta{}); err != nil {
		t.Fatalf("want accepted, got %v", err)
	}
}

func TestSubmit_RepoError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewContactService(failingContactRepo{err: boom}, nil, stubClock{t: time.Now()})
	if _, err := svc.Submit(context.Background(), validRequest(), domain.ClientMeta{}); !errors.Is(err, boom) {
		t.Fatalf("want wrapped db error, got %v", err)
	}
}

func TestGet(t *testing.T) {
	repo := memory.NewContactRepository(memory.WithItems(domain.ContactSubmission{ID: "a"}))
	svc := NewContactService(repo, nil, stubClock{t: time.Now()})
	if _, err := svc.Get(context.Background(), "a"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("want ErrSubmissionNotFound, got %v", err)
	}
	boom := errors.New("db down")
	_, err := NewContactService(failingContactRepo{err: boom}, nil, stubClock{}).Get(context.Background(), "a")
	if !errors.Is(err, boom) || errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("want wrapped db error, got %v", err)
	}
	_, err = NewContactService(failingContactRepo{err: repository.ErrNotFound}, nil, stubClock{}).Get(context.Background(), "a")
	if !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("want ErrSubmissionNotFound, got %v", err)
	}
}

func TestList_Caps(t *testing.T) {
	repo := &listArgsRepo{}
	svc := NewContactService(repo, nil, stubClock{t: time.Now()})

	_, _ = svc.List(context.Background(), 0, 0)
	if repo.page != ServiceDefaultPage || repo.limit != ServiceDefaultLimit {
		t.Fatalf("defaults not applied: page=%d limit=%d", repo.page, repo.limit)
	}
	_, _ = svc.List(context.Background(), 3, 1000)
	if repo.page != 3 || repo.limit != ServiceMaxLimit {
		t.Fatalf("cap not applied: page=%d limit=%d", repo.page, repo.limit)
	}
}

func TestList_PageBeyondMaxIsEmpty(t *testing.T) {
	repo := &listArgsRepo{}
	svc := NewContactService(repo, nil, stubClock{t: time.Now()})
	got, err := svc.List(context.Background(), 4611686018427387905, 2)
	if err != nil || len(got) != 0 {
		t.Fatalf("want empty page, got %d items, err %v", len(got), err)
	}
	if repo.page != 0 {
		t.Fatalf("repository must not be queried, got page %d", repo.page)
	}
}
