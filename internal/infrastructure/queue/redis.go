package queue

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// RedisConfigFromEnv builds the asynq connection options shared by the API
// (enqueue side) and the worker (consume side).
func RedisConfigFromEnv() asynq.RedisClientOpt {
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			db = parsed
		}
	}
	return asynq.RedisClientOpt{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}
}

// PingRedis verifies the broker is reachable before the process starts
// accepting work.
func PingRedis(ctx context.Context, opt asynq.RedisClientOpt) error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
	defer rdb.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(pingCtx).Result(); err != nil {
		return fmt.Errorf("connecting to Redis at %s: %w", opt.Addr, err)
	}
	log.Printf("[queue][redis] broker reachable addr=%s db=%d", opt.Addr, opt.DB)
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
