package database

import (
	"context"

	"promptvault-backend/config"

	"github.com/go-redis/redis/v8"
)

var (
	// RedisClient is nil when no Redis host is configured; callers skip caching then.
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis(cfg *config.Config) error {
	if !cfg.RedisEnabled() {
		RedisClient = nil
		return nil
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	_, err := RedisClient.Ping(Ctx).Result()
	return err
}
