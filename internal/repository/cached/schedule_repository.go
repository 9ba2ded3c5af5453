// Package cached provides a caching wrapper over a primary repository using Redis.
package cached

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/repository"
	"github.com/roguepikachu/smileline/pkg/logger"
)

const keyWeek = "office_hours:week"

// ScheduleRepository is a cache-aside repository combining Redis with a primary store.
type ScheduleRepository struct {
	primary repository.ScheduleRepository
	redis   *redis.Client
	ttl     time.Duration
}

// NewScheduleRepository creates a new cached repository.
func NewScheduleRepository(primary repository.ScheduleRepository, redis *redis.Client, ttl time.Duration) *ScheduleRepository {
	return &ScheduleRepository{primary: primary, redis: redis, ttl: ttl}
}

// Week attempts Redis then falls back to primary, refilling the cache.
func (r *ScheduleRepository) Week(ctx context.Context) ([]domain.ScheduleEntry, error) {
	val, err := r.redis.Get(ctx, keyWeek).Result()
	if err == nil && val != "" {
		var week []domain.ScheduleEntry
		if jsonErr := json.Unmarshal([]byte(val), &week); jsonErr == nil {
			return week, nil
		}
	} else if err != nil && err != redis.Nil {
		logger.Warn(ctx, "office hours cache read failed: %v", err)
	}
	week, err := r.primary.Week(ctx)
	if err != nil {
		return nil, err
	}
	data, _ := json.Marshal(week)
	_ = r.redis.Set(ctx, keyWeek, data, r.ttl).Err()
	return week, nil
}

// Save writes through to primary and drops the cached copy.
func (r *ScheduleRepository) Save(ctx context.Context, week []domain.ScheduleEntry) error {
	if err := r.primary.Save(ctx, week); err != nil {
		return err
	}
	if err := r.redis.Del(ctx, keyWeek).Err(); err != nil {
		logger.Warn(ctx, "office hours cache invalidation failed: %v", err)
	}
	return nil
}

var _ repository.ScheduleRepository = (*ScheduleRepository)(nil)
