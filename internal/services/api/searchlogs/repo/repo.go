// Package repo stores recent search logs as capped redis lists
package repo

import (
	"context"
	"strconv"

	"pillbox/internal/platform/store"

	"github.com/redis/go-redis/v9"
)

// Cap bounds every member's list
const Cap = 10

// Repo is the storage contract for recent search logs; values are opaque strings
type Repo interface {
	Push(ctx context.Context, memberID int64, value string) error
	Range(ctx context.Context, memberID int64) ([]string, error)
	Remove(ctx context.Context, memberID int64, value string) (int64, error)
	Clear(ctx context.Context, memberID int64) (int64, error)
}

// pushCapped trims from the tail until there is room, then pushes on the head
// KEYS[1] list key, ARGV[1] value, ARGV[2] cap
var pushCapped = redis.NewScript(`
local cap = tonumber(ARGV[2])
while redis.call('LLEN', KEYS[1]) >= cap do
  redis.call('RPOP', KEYS[1])
end
return redis.call('LPUSH', KEYS[1], ARGV[1])
`)

// Redis binds Repo to the redis seam
type Redis struct {
	rds store.Redis
	cap int
}

// NewRedis returns a Repo over r
func NewRedis(r store.Redis) *Redis {
	if r == nil {
		panic("searchlogs repo requires a non nil redis seam")
	}
	return &Redis{rds: r, cap: Cap}
}

// Key is the list key for memberID
func Key(memberID int64) string {
	return "searchlog:" + strconv.FormatInt(memberID, 10)
}

// Push adds value at the head, evicting the oldest entries past the cap atomically
func (r *Redis) Push(ctx context.Context, memberID int64, value string) error {
	_, err := r.rds.Run(ctx, pushCapped, []string{Key(memberID)}, value, r.cap)
	return err
}

// Range returns the newest cap entries, newest first
func (r *Redis) Range(ctx context.Context, memberID int64) ([]string, error) {
	return r.rds.LRange(ctx, Key(memberID), 0, int64(r.cap-1))
}

// Remove deletes the first occurrence of value
func (r *Redis) Remove(ctx context.Context, memberID int64, value string) (int64, error) {
	return r.rds.LRem(ctx, Key(memberID), 1, value)
}

// Clear drops the whole list
func (r *Redis) Clear(ctx context.Context, memberID int64) (int64, error) {
	return r.rds.Del(ctx, Key(memberID))
}
