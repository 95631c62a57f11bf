package repository

import (
	"errors"
	"strconv"
	"time"

	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/domain"
	"github.com/OneIdeaStart/dewild-royalties/domain/keys"
	"github.com/OneIdeaStart/dewild-royalties/service/redis"
)

// runLogCap bounds the run log; oldest entries are evicted first
const runLogCap = 1000

type impl struct {
	redis redis.Service
}

// New creates the redis backed ledger of the reconciliation engine
func New(redis redis.Service) domain.LedgerRepo {
	return &impl{redis: redis}
}

func (im *impl) processedSetKey() string {
	return keys.RedisKey(keys.PfxRoyalty, keys.KeyProcessedSet)
}

func (im *impl) lastRunTimeKey() string {
	return keys.RedisKey(keys.PfxRoyalty, keys.KeyLastRunTime)
}

func (im *impl) runLogKey() string {
	return keys.RedisKey(keys.PfxRoyalty, keys.KeyRunLog)
}

func (im *impl) HasProcessed(c ctx.Ctx, txHash domain.TxHash) (bool, error) {
	return im.redis.SIsMember(c, im.processedSetKey(), txHash.ToLower().String())
}

func (im *impl) MarkProcessed(c ctx.Ctx, txHash domain.TxHash) error {
	return im.redis.SAdd(c, im.processedSetKey(), txHash.ToLower().String())
}

func (im *impl) ProcessedCount(c ctx.Ctx) (int, error) {
	return im.redis.SCard(c, im.processedSetKey())
}

func (im *impl) GetLastRunTime(c ctx.Ctx) (time.Time, error) {
	val, err := im.redis.Get(c, im.lastRunTimeKey())
	if errors.Is(err, redis.ErrNotFound) {
		// never ran
		return time.Time{}, nil
	} else if err != nil {
		return time.Time{}, err
	}
	unix, err := strconv.ParseInt(string(val), 10, 64)
	if err != nil {
		c.WithField("err", err).Error("parse lastRunTime failed")
		return time.Time{}, err
	}
	return time.Unix(unix, 0), nil
}

func (im *impl) SetLastRunTime(c ctx.Ctx, t time.Time) error {
	val := strconv.FormatInt(t.Unix(), 10)
	return im.redis.Set(c, im.lastRunTimeKey(), []byte(val), redis.Forever)
}

func (im *impl) AppendLog(c ctx.Ctx, message string) error {
	entry := time.Now().UTC().Format(time.RFC3339) + " " + message
	if err := im.redis.LPush(c, im.runLogKey(), []byte(entry)); err != nil {
		return err
	}
	return im.redis.LTrim(c, im.runLogKey(), 0, runLogCap-1)
}

func (im *impl) RecentLogs(c ctx.Ctx, limit int) ([]string, error) {
	if limit <= 0 || limit > runLogCap {
		limit = runLogCap
	}
	vals, err := im.redis.LRange(c, im.runLogKey(), 0, limit)
	if err != nil {
		return nil, err
	}
	logs := make([]string, 0, len(vals))
	for _, v := range vals {
		logs = append(logs, string(v))
	}
	return logs, nil
}
