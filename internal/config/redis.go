package config

// This file defines a Redis client constructor for the application.  Redis
// holds the seat-status snapshot and backs rate limiting and response
// caching.  If the server cannot be reached at startup the constructor
// returns nil; every Redis user treats a nil client as "feature off".

import (
    "context"
    "crypto/tls"
    "os"
    "time"

    "github.com/redis/go-redis/v9"
)

// RedisOptions builds client options from environment variables:
//   REDIS_ADDR – host:port shorthand
//   REDIS_HOST and REDIS_PORT – take precedence over REDIS_ADDR when both set
//   REDIS_PASSWORD – optional password
//   REDIS_DB – database number (default 0)
//   REDIS_TLS – enable TLS when "true" or "1"
func RedisOptions() *redis.Options {
    addr := envStr("REDIS_ADDR", "localhost:6379")
    if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
        addr = host + ":" + port
    }
    opts := &redis.Options{
        Addr:     addr,
        Password: os.Getenv("REDIS_PASSWORD"),
        DB:       envInt("REDIS_DB", 0),
    }
    if envBool("REDIS_TLS", false) {
        opts.TLSConfig = &tls.Config{InsecureSkipVerify: true}
    }
    return opts
}

// NewRedisClient connects with RedisOptions and pings the server with a
// short timeout.  It returns nil when the server is unreachable.
func NewRedisClient() *redis.Client {
    client := redis.NewClient(RedisOptions())
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        _ = client.Close()
        return nil
    }
    return client
}
