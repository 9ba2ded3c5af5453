package data

import (
	"github.com/go-redis/redis/v8"
	"github.com/roguepikachu/smileline/internal/config"
)

// NewRedisClient creates and returns a new Redis client using environment configuration.
func NewRedisClient() *redis.Client {
	addr := config.Conf.RedisAddr
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Conf.RedisPassword,
		DB:       config.Conf.RedisDB,
	})
}
