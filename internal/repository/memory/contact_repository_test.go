package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/repository"
)

func TestContactRepo_ListNewestFirstAndPaginates(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	r := NewContactRepository(WithItems(domain.ContactSubmission{ID: "seed", ReceivedAt: now.Add(-time.Hour)}))
	_ = r.Insert(ctx, domain.ContactSubmission{ID: "1", ReceivedAt: now})
	_ = r.Insert(ctx, domain.ContactSubmission{ID: "2", ReceivedAt: now.Add(time.Second)})

	got, err := r.List(ctx, 1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 items, got %d", len(got))
	}
	if got[0].ID != "2" || got[1].ID != "1" {
		t.Fatalf("want newest first, got %s, %s", got[0].ID, got[1].ID)
	}

	got, _ = r.List(ctx, 2, 2)
	if len(got) != 1 || got[0].ID != "seed" {
		t.Fatalf("want seed on page 2, got %+v", got)
	}
	got, _ = r.List(ctx, 5, 2)
	if len(got) != 0 {
		t.Fatalf("want empty page, got %d", len(got))
	}
}

func TestContactRepo_FindByID(t *testing.T) {
	ctx := context.Background()
	r := NewContactRepository()
	_ = r.Insert(ctx, domain.ContactSubmission{ID: "a", Name: "Ana"})
	s, err := r.FindByID(ctx, "a")
	if err != nil || s.Name != "Ana" {
		t.Fatalf("find: %+v %v", s, err)
	}
	if _, err := r.FindByID(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestContactRepo_ListHugePage(t *testing.T) {
	ctx := context.Background()
	r := NewContactRepository()
	_ = r.Insert(ctx, domain.ContactSubmission{ID: "a", ReceivedAt: time.Now()})
	got, err := r.List(ctx, 4611686018427387905, 2)
	if err != nil || len(got) != 0 {
		t.Fatalf("want empty page, got %d items, err %v", len(got), err)
	}
}
