package redis

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/base/metrics"
	"github.com/OneIdeaStart/dewild-royalties/domain/keys"
)

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

func (r *redImpl) getConn(command string) (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	pool := r.pools.Src
	if pool == nil {
		return nil, ErrGapTime
	}

	conn := pool.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}

	return conn, nil
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn(commandName)
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// Closing conn explicitly asap improves redigo's performance,
	// bacause longer an connection is hold and not closed, the
	// pool need to handle more connections at the same time and
	// getConn time might burst.
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	tags := []string{"func", "get", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo(context, "GET", key))
	if err != nil {
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := []string{"func", "set", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = r.connDo(context, "SET", key, val)
	} else {
		_, err = r.connDo(context, "SET", key, val, "PX", int(expire/time.Millisecond))
	}
	if err != nil {
		context.WithField("err", err).Error("set redis failed")
	}
	return err
}

func (r *redImpl) SAdd(context ctx.Ctx, key string, member ...string) error {
	if len(member) == 0 {
		return fmt.Errorf("length of member is 0")
	}

	tags := []string{"func", "sadd", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()

	vars := []interface{}{key}
	size := 0
	for _, m := range member {
		vars = append(vars, interface{}(m))
		size += len([]byte(m))
	}
	r.met.BumpHistogram("bytes", float64(size), tags...)

	if _, err := r.connDo(context, "SADD", vars...); err != nil {
		context.WithField("err", err).Error("SAdd redis failed")
		return err
	}
	return nil
}

// SIsMember Returns if member is a member of the set stored at key.
func (r *redImpl) SIsMember(context ctx.Ctx, key, member string) (bool, error) {
	defer r.met.BumpTime("time", "func", "sismember", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()
	res, err := redis.Bool(r.connDo(context, "SISMEMBER", key, member))
	if err != nil {
		context.WithField("err", err).Error("SIsMember redis failed")
	}
	return res, err
}

// SCard Returns the set cardinality (number of elements) of the set stored at key.
func (r *redImpl) SCard(context ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", "func", "scard", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()
	res, err := redis.Int(r.connDo(context, "SCARD", key))
	if err != nil {
		context.WithField("err", err).Error("SCard redis failed")
	}
	return res, err
}

func (r *redImpl) LPush(context ctx.Ctx, key string, val []byte) error {
	tags := []string{"func", "lpush", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	if _, err := r.connDo(context, "LPUSH", key, val); err != nil {
		context.WithField("err", err).Error("LPush redis failed")
		return err
	}
	return nil
}

func (r *redImpl) LTrim(context ctx.Ctx, key string, start, end int) error {
	defer r.met.BumpTime("time", "func", "ltrim", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()
	if _, err := r.connDo(context, "LTRIM", key, start, end); err != nil {
		context.WithField("err", err).Error("LTrim redis failed")
		return err
	}
	return nil
}

func (r *redImpl) LRange(context ctx.Ctx, key string, offset, count int) ([][]byte, error) {
	tags := []string{"func", "lrange", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.ByteSlices(r.connDo(context, "LRANGE", key, offset, count-1+offset))
	if err != nil {
		context.WithField("err", err).Error("LRANGE redis failed")
		return nil, err
	}
	r.met.BumpHistogram("elements", float64(len(val)), tags...)
	return val, nil
}
