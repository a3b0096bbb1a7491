package data

import (
	"privacyguard/config"

	"github.com/go-redis/redis"
)

var rdb *redis.Client

// GetRedis - returns the shared redis client
func GetRedis() *redis.Client {

	if rdb != nil {
		return rdb
	}

	cg := config.GetConfig()

	rdb = redis.NewClient(&redis.Options{
		Addr:     cg.GetString("redis.host") + ":" + cg.GetString("redis.port"),
		Password: cg.GetString("redis.pass"),
		DB:       cg.GetInt("redis.db"),
	})

	return rdb
}
