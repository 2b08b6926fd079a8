package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis configuration. Zero PoolSize and ConnectTimeout
// fall back to the go-redis pool default and DefaultConnectTimeout.
type RedisConfig struct {
	Host           string
	Port           int
	Password       string
	DB             int
	PoolSize       int
	ConnectTimeout time.Duration
}

type redisImpl struct {
	client *goredis.Client
}
