// Package repository contains the repository layer for the Aethelgard Community API
package repository

import (
	"context"
	"time"

	"github.com/aethelgard/aethelgardapi/internal/config"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis connects to the Redis server used for the ranking cache
func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := redisClient.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}
	return redisClient, nil
}
