package service

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// releaseScript deletes the lock only while it still holds our owner value.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type lockClient interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// RedisLocker implements Locker with SETNX and a TTL, so a crashed holder
// cannot block seeding forever.
type RedisLocker struct {
	rdb   lockClient
	owner string
}

func NewRedisLocker(rdb *redis.Client) *RedisLocker {
	owner, err := os.Hostname()
	if err != nil || owner == "" {
		owner = "resume-service"
	}
	return newRedisLocker(rdb, owner)
}

func newRedisLocker(rdb lockClient, owner string) *RedisLocker {
	return &RedisLocker{rdb: rdb, owner: owner}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.rdb.SetNX(ctx, key, l.owner, ttl).Result()
}

// Release drops the lock if this locker still owns it. A lock that expired
// and was taken by another instance is left alone.
func (l *RedisLocker) Release(ctx context.Context, key string) error {
	if err := releaseScript.Run(ctx, l.rdb, []string{key}, l.owner).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
