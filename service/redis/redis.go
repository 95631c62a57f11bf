package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/base/metrics"
)

const (
	// Forever is passed as expire to keep a key without ttl
	Forever = time.Duration(0)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil

	// ErrGapTime is returned when no pool can serve the command
	ErrGapTime = errors.New("in gap time, command is forbidden")
)

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// Service is the redis operation surface used by the repositories
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error

	SAdd(c ctx.Ctx, key string, member ...string) error
	SIsMember(c ctx.Ctx, key, member string) (bool, error)
	SCard(c ctx.Ctx, key string) (int, error)

	LPush(c ctx.Ctx, key string, val []byte) error
	LTrim(c ctx.Ctx, key string, start, end int) error
	LRange(c ctx.Ctx, key string, offset, count int) ([][]byte, error)
}

// New redis service over the given pools
func New(name string, met metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   met,
		pools: pools,
	}
}
