// Package redis provides a Redis-backed implementation of the contact repository.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/repository"
)

const indexKey = "contacts:index"

func keyContact(id string) string { return "contact:" + id }

// ContactRepository stores each submission as JSON and keeps a sorted set
// of IDs scored by receive time for listing.
type ContactRepository struct {
	client *redis.Client
}

// NewContactRepository creates a new Redis-backed contact repository.
func NewContactRepository(client *redis.Client) *ContactRepository {
	return &ContactRepository{client: client}
}

// Insert adds a submission to Redis.
func (r *ContactRepository) Insert(ctx context.Context, s domain.ContactSubmission) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, keyContact(s.ID), data, 0)
		p.ZAdd(ctx, indexKey, &redis.Z{Score: float64(s.ReceivedAt.UnixNano()), Member: s.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis insert: %w", err)
	}
	return nil
}

// FindByID retrieves a submission by its ID from Redis.
func (r *ContactRepository) FindByID(ctx context.Context, id string) (domain.ContactSubmission, error) {
	val, err := r.client.Get(ctx, keyContact(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ContactSubmission{}, repository.ErrNotFound
		}
		return domain.ContactSubmission{}, fmt.Errorf("redis get: %w", err)
	}
	var s domain.ContactSubmission
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return domain.ContactSubmission{}, fmt.Errorf("unmarshal: %w", err)
	}
	return s, nil
}

// List returns a page of submissions, newest first.
func (r *ContactRepository) List(ctx context.Context, page, limit int) ([]domain.ContactSubmission, error) {
	start := int64((page - 1) * limit)
	stop := start + int64(limit) - 1
	ids, err := r.client.ZRevRange(ctx, indexKey, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("redis zrevrange: %w", err)
	}
	res := make([]domain.ContactSubmission, 0, len(ids))
	for _, id := range ids {
		s, err := r.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			// index entry without a body
			continue
		}
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
