// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"chcrent/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient is the dedicated client for session-token caching.
	AuthCacheClient *redis.Client
	// OTPCacheClient is the dedicated client for login-code storage.
	OTPCacheClient *redis.Client
	// CatalogCacheClient holds short-lived equipment snapshots for the assistant.
	CatalogCacheClient *redis.Client
)

// AuthCachePrefix namespaces session-token hashes in the auth cache.
const AuthCachePrefix = "auth:"

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients.
func InitRedis() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB)
	CatalogCacheClient = newRedisClient(config.AppConfig.RedisCatalogDB)
}

// GetAuthCacheClient returns the Redis client for session-token caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetOTPCacheClient returns the Redis client for login-code storage.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB)
	}
	return OTPCacheClient
}

// GetCatalogCacheClient returns the Redis client for catalog snapshots.
func GetCatalogCacheClient() *redis.Client {
	if CatalogCacheClient == nil {
		CatalogCacheClient = newRedisClient(config.AppConfig.RedisCatalogDB)
	}
	return CatalogCacheClient
}
