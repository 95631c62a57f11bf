package repository

import (
	"time"

	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
	hcdomain "github.com/OneIdeaStart/dewild-royalties/domain/healthcheck"
	"github.com/OneIdeaStart/dewild-royalties/domain/keys"
	"github.com/OneIdeaStart/dewild-royalties/service/redis"
)

type impl struct {
	redis redis.Service
}

// New creates the repository backing HealthCheckRepo
func New(redis redis.Service) hcdomain.HealthCheckRepo {
	return &impl{
		redis: redis,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.redis.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}
