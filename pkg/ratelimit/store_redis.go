package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// countAndAddScript trims the window, counts and conditionally adds
// in one round trip so concurrent requests cannot both take the last
// slot. KEYS[1] is the member set, ARGV: windowStart, now (unix
// micros), limit, ttl seconds, member. The member carries a nonce so
// two requests landing in the same microsecond stay distinct entries.
var countAndAddScript = redis.NewScript(`
local key = KEYS[1]
local window_start = tonumber(ARGV[1])
local now = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)
local count = redis.call('ZCARD', key)
if count >= limit then
    return {count, 0}
end
redis.call('ZADD', key, now, ARGV[5])
redis.call('EXPIRE', key, ttl)
return {count, 1}
`)

// RedisStore keeps per-key request timestamps in Redis sorted sets so
// limits are shared across API instances. Keys expire on their own;
// Cleanup is a no-op.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client. ttl bounds key lifetime and
// should be at least the longest rule window.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisStore{client: client, ttl: ttl}
}

// windowMember builds a unique sorted-set member for one request. The
// score alone identifies the slot in time; the nonce keeps requests
// from the same microsecond apart.
func windowMember(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMicro(), uuid.NewString())
}

func (s *RedisStore) CountAndAdd(ctx context.Context, key string, windowStart, now time.Time, limit int) (int, bool, error) {
	member := windowMember(now)
	res, err := countAndAddScript.Run(ctx, s.client, []string{redisKeyPrefix + key},
		windowStart.UnixMicro(), now.UnixMicro(), limit, int(s.ttl.Seconds()), member).Int64Slice()
	if err != nil {
		return 0, false, fmt.Errorf("RedisStore.CountAndAdd: %w", err)
	}
	if len(res) != 2 {
		return 0, false, fmt.Errorf("RedisStore.CountAndAdd: unexpected script result %v", res)
	}
	return int(res[0]), res[1] == 1, nil
}

func (s *RedisStore) OldestTimestamp(ctx context.Context, key string) (time.Time, error) {
	members, err := s.client.ZRangeWithScores(ctx, redisKeyPrefix+key, 0, 0).Result()
	if err != nil {
		return time.Time{}, fmt.Errorf("RedisStore.OldestTimestamp: %w", err)
	}
	if len(members) == 0 {
		return time.Time{}, nil
	}
	return time.UnixMicro(int64(members[0].Score)), nil
}

// Cleanup is a no-op, Redis expires keys via EXPIRE.
func (s *RedisStore) Cleanup(context.Context, time.Time) error { return nil }

// Close is a no-op, the client is owned by the caller.
func (s *RedisStore) Close() error { return nil }
