package errors

import (
	"context"
	stderrs "errors"
	"net"
	"strings"

	"github.com/redis/go-redis/v9"
)

// server replies that mean try again later
var redisRetryPrefixes = []string{"LOADING ", "READONLY ", "CLUSTERDOWN ", "TRYAGAIN ", "MASTERDOWN "}

// IsRedisNil reports a missing key
func IsRedisNil(err error) bool { return stderrs.Is(err, redis.Nil) }

// IsRedisRetryable reports a transient redis failure: a network timeout,
// a dropped connection or a server that is loading or failing over
func IsRedisRetryable(err error) bool {
	switch {
	case err == nil, IsRedisNil(err), stderrs.Is(err, redis.ErrClosed),
		stderrs.Is(err, context.Canceled), stderrs.Is(err, context.DeadlineExceeded):
		return false
	}
	var ne net.Error
	if stderrs.As(err, &ne) && ne.Timeout() {
		return true
	}
	msg := Root(err).Error()
	for _, p := range redisRetryPrefixes {
		if strings.HasPrefix(msg, p) {
			return true
		}
	}
	return strings.Contains(msg, "connection reset") || strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "i/o timeout")
}

// FromRedis wraps err with msg: a missing key is NotFound, anything else Unavailable
func FromRedis(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case IsRedisNil(err):
		return Wrap(err, ErrorCodeNotFound, msg)
	default:
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
}
