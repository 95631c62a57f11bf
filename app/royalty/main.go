package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/base/database/redisclient"
	"github.com/OneIdeaStart/dewild-royalties/base/goroutine"
	"github.com/OneIdeaStart/dewild-royalties/base/log"
	"github.com/OneIdeaStart/dewild-royalties/base/metrics"
	bValidator "github.com/OneIdeaStart/dewild-royalties/base/validator"
	"github.com/OneIdeaStart/dewild-royalties/domain"
	mmiddleware "github.com/OneIdeaStart/dewild-royalties/middleware"
	"github.com/OneIdeaStart/dewild-royalties/service/chain"
	"github.com/OneIdeaStart/dewild-royalties/service/chain/contract"
	"github.com/OneIdeaStart/dewild-royalties/service/etherscan"
	"github.com/OneIdeaStart/dewild-royalties/service/redis"
	attribution_usecase "github.com/OneIdeaStart/dewild-royalties/stores/attribution/usecase"
	hc_delivery "github.com/OneIdeaStart/dewild-royalties/stores/healthcheck/delivery/http"
	hc_repo "github.com/OneIdeaStart/dewild-royalties/stores/healthcheck/repository"
	hc_usecase "github.com/OneIdeaStart/dewild-royalties/stores/healthcheck/usecase"
	ledger_repository "github.com/OneIdeaStart/dewild-royalties/stores/ledger/repository"
	royalty_delivery "github.com/OneIdeaStart/dewild-royalties/stores/royalty/delivery/http"
	royalty_usecase "github.com/OneIdeaStart/dewild-royalties/stores/royalty/usecase"
	settlement_usecase "github.com/OneIdeaStart/dewild-royalties/stores/settlement/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// engineConfig is validated before anything is wired; the engine never
// runs with partial configuration.
type engineConfig struct {
	ChainId        int32  `validate:"required"`
	RpcUrl         string `validate:"required,url"`
	RoyaltyAddress string `validate:"required"`
	NftContract    string `validate:"required"`
	SignerKey      string `validate:"required"`
	EtherscanUrl   string `validate:"required,url"`
	EtherscanKey   string `validate:"required"`
}

func loadEngineConfig() *engineConfig {
	cfg := &engineConfig{
		ChainId:        viper.GetInt32("network.chainId"),
		RpcUrl:         viper.GetString("network.rpcUrl"),
		RoyaltyAddress: viper.GetString("royalty.address"),
		NftContract:    viper.GetString("royalty.nftContract"),
		SignerKey:      viper.GetString("royalty.signerKey"),
		EtherscanUrl:   viper.GetString("etherscan.baseUrl"),
		EtherscanKey:   viper.GetString("etherscan.apiKey"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		log.Log().WithField("err", err).Panic("invalid configuration")
	}
	for _, addr := range []string{cfg.RoyaltyAddress, cfg.NftContract} {
		if !bValidator.IsValidAddress(addr) {
			log.Log().WithField("address", addr).Panic("invalid configured address")
		}
	}
	return cfg
}

func main() {
	context := ctx.Background()
	cfg := loadEngineConfig()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	// init redis ledger store
	context.Info("init redis")
	redisName := viper.GetString("redis.name")
	redisURI := viper.GetString("redis.uri")
	redisPwd := viper.GetString("redis.password")
	redisPoolMultiplier := viper.GetFloat64("redis.poolMultiplier")
	redisPool := redisclient.MustConnectRedis(redisURI, redisPwd, redisclient.RedisParam{
		PoolMultiplier: redisPoolMultiplier,
		Retry:          true,
	})
	redisService := redis.New(redisName, metrics.New(redisName), &redis.Pools{
		Src: redisPool,
	})

	// init chain service
	context.Info("init chain client")
	chainId := domain.ChainId(cfg.ChainId)
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: map[domain.ChainId]string{
			chainId: cfg.RpcUrl,
		},
	})
	if err != nil {
		context.WithField("err", err).Panic("failed to init chain client")
	}

	etherscanClient := etherscan.NewClient(&etherscan.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("etherscan.timeout"),
		BaseUrl:    cfg.EtherscanUrl,
		ApiKey:     cfg.EtherscanKey,
	})

	ledgerRepo := ledger_repository.New(redisService)
	dewildNft := contract.NewDewildNft(chainService)

	attribution := attribution_usecase.New(&attribution_usecase.AttributionCfg{
		ChainId:     chainId,
		NftContract: domain.Address(cfg.NftContract).ToLower(),
		Etherscan:   etherscanClient,
		Chain:       chainService,
		DewildNft:   dewildNft,
	})

	settlement, err := settlement_usecase.New(&settlement_usecase.SettlementCfg{
		ChainId:        chainId,
		SignerKey:      cfg.SignerKey,
		Chain:          chainService,
		ConfirmTimeout: viper.GetDuration("royalty.confirmTimeout"),
	})
	if err != nil {
		context.WithField("err", err).Panic("failed to init settlement executor")
	}

	royalty := royalty_usecase.New(&royalty_usecase.RoyaltyCfg{
		RoyaltyAddress: domain.Address(cfg.RoyaltyAddress).ToLower(),
		RunInterval:    viper.GetDuration("royalty.runInterval"),
		Ledger:         ledgerRepo,
		Etherscan:      etherscanClient,
		Attribution:    attribution,
		Settlement:     settlement,
		Metrics:        metrics.New("royalty"),
	})

	hc := hc_usecase.New(hc_repo.New(redisService))

	hc_delivery.New(e, hc)
	royalty_delivery.New(e, royalty)

	// hourly scheduled trigger; the 24h gate keeps extra ticks cheap and
	// an external cron hitting the scheduled endpoint stays safe too
	tickInterval := viper.GetDuration("royalty.tickInterval")
	if tickInterval == 0 {
		tickInterval = time.Hour
	}
	goroutine.RecoverableGo(func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for range ticker.C {
			runCtx := ctx.WithValue(ctx.Background(), "trigger", string(domain.TriggerScheduled))
			if _, err := royalty.Reconcile(runCtx, domain.TriggerScheduled); err != nil {
				runCtx.WithField("err", err).Error("scheduled reconcile failed")
			}
		}
	})

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
