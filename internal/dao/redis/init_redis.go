package redis

import (
	"strconv"

	"crusade_campaign_server/internal/config"

	"github.com/redis/go-redis/v9"
)

// cacheService is the global instance handed to the service layer.
var cacheService AsyncCacheService

// Init connects to Redis and builds the cache service with its worker
// pool.
func Init() {
	conf := config.GetConfig()
	addr := conf.RedisConfig.Host + ":" + strconv.Itoa(conf.RedisConfig.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.RedisConfig.Password,
		DB:       conf.RedisConfig.Db,

		PoolSize:     50,
		MinIdleConns: 10,
	})

	// 10 workers, buffer 1000: invalidations are small and bursty.
	cacheService = NewRedisCache(client, 10, 1000)
}

// GetCacheService returns the global cache service for injection into
// the service layer.
func GetCacheService() AsyncCacheService {
	return cacheService
}
