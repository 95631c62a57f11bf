package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/base/log"
	"github.com/OneIdeaStart/dewild-royalties/base/metrics"
	"github.com/OneIdeaStart/dewild-royalties/domain"
	"github.com/OneIdeaStart/dewild-royalties/service/etherscan"
)

const defaultRunInterval = 24 * time.Hour

var timeNow = time.Now

type RoyaltyCfg struct {
	// RoyaltyAddress collects the incoming royalty transfers
	RoyaltyAddress domain.Address
	// RunInterval gates scheduled triggers, default 24h
	RunInterval time.Duration
	Ledger      domain.LedgerRepo
	Etherscan   etherscan.Client
	Attribution domain.AttributionUsecase
	Settlement  domain.SettlementUsecase
	Metrics     metrics.Service
}

type impl struct {
	royaltyAddress domain.Address
	runInterval    time.Duration
	ledger         domain.LedgerRepo
	etherscan      etherscan.Client
	attribution    domain.AttributionUsecase
	settlement     domain.SettlementUsecase
	met            metrics.Service
}

func New(cfg *RoyaltyCfg) domain.RoyaltyUsecase {
	runInterval := cfg.RunInterval
	if runInterval == 0 {
		runInterval = defaultRunInterval
	}
	return &impl{
		royaltyAddress: cfg.RoyaltyAddress,
		runInterval:    runInterval,
		ledger:         cfg.Ledger,
		etherscan:      cfg.Etherscan,
		attribution:    cfg.Attribution,
		settlement:     cfg.Settlement,
		met:            cfg.Metrics,
	}
}

func (im *impl) Reconcile(c ctx.Ctx, trigger domain.Trigger) (*domain.RunReport, error) {
	defer im.met.BumpTime("reconcile.time", "trigger", string(trigger)).End()

	now := timeNow()

	if trigger == domain.TriggerScheduled {
		last, err := im.ledger.GetLastRunTime(c)
		if err != nil {
			c.WithField("err", err).Error("ledger.GetLastRunTime failed")
			return &domain.RunReport{Success: false}, err
		}
		if elapsed := now.Sub(last); elapsed < im.runInterval {
			remaining := im.runInterval - elapsed
			c.WithFields(log.Fields{
				"hoursUntilNext": remaining.Hours(),
			}).Info("run gated, not due yet")
			return &domain.RunReport{
				Success:        true,
				Skipped:        true,
				HoursUntilNext: remaining.Hours(),
			}, nil
		}
	}

	payments, err := im.etherscan.ListIncomingPayments(c, im.royaltyAddress)
	if err != nil {
		c.WithField("err", err).Error("etherscan.ListIncomingPayments failed")
		im.met.BumpSum("reconcile.abort", 1, "reason", "discovery")
		return &domain.RunReport{Success: false}, err
	}

	report := &domain.RunReport{
		Success:      true,
		Transactions: []domain.PaymentRecord{},
		Errors:       []domain.PaymentRecord{},
	}

	for _, payment := range payments {
		processed, err := im.ledger.HasProcessed(c, payment.SourceTxHash)
		if err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"txHash": payment.SourceTxHash,
			}).Error("ledger.HasProcessed failed")
			// fail the payment instead of risking a double payout
			report.Errors = append(report.Errors, domain.PaymentRecord{
				TxHash: payment.SourceTxHash,
				Status: domain.SettlementStatusFailed,
				Reason: err.Error(),
			})
			continue
		}
		if processed {
			continue
		}

		record := im.processPayment(c, payment)
		switch record.Status {
		case domain.SettlementStatusCompleted:
			report.ProcessedCount++
			report.Transactions = append(report.Transactions, record)
		default:
			report.Errors = append(report.Errors, record)
		}
		im.met.BumpSum("payment", 1, "status", string(record.Status))
	}

	// the timestamp advances on partial failure too; only an aborted run
	// leaves it untouched
	if err := im.ledger.SetLastRunTime(c, now); err != nil {
		c.WithField("err", err).Error("ledger.SetLastRunTime failed")
	}
	total, err := im.ledger.ProcessedCount(c)
	if err != nil {
		c.WithField("err", err).Warn("ledger.ProcessedCount failed")
	}
	im.appendLog(c, fmt.Sprintf("run finished: %d settled, %d failed or skipped, %d settled in total", report.ProcessedCount, len(report.Errors), total))

	return report, nil
}

// processPayment runs attribution, creator resolution and settlement for a
// single payment. Every outcome is caught here; a failure never aborts the
// surrounding run.
func (im *impl) processPayment(c ctx.Ctx, payment domain.IncomingPayment) domain.PaymentRecord {
	record := domain.PaymentRecord{TxHash: payment.SourceTxHash}

	attribution, err := im.attribution.ResolveToken(c, payment.SourceTxHash)
	if err != nil {
		return im.failRecord(c, record, err)
	}
	record.TokenId = attribution.TokenId

	artist, err := im.attribution.ResolveCreator(c, attribution)
	if err != nil {
		return im.failRecord(c, record, err)
	}
	record.ArtistAddress = artist

	result, err := im.settlement.Settle(c, artist, payment.ValueWei)
	if errors.Is(err, domain.ErrEconomicallyUnviable) {
		record.Status = domain.SettlementStatusSkipped
		record.Reason = err.Error()
		return record
	} else if err != nil {
		return im.failRecord(c, record, err)
	}

	record.Status = domain.SettlementStatusCompleted
	record.ArtistPayment = domain.WeiToEth(result.Payment)
	record.PaymentTxHash = result.PaymentTxHash

	// the source hash enters the processed set only after on-chain
	// confirmation; this is the at-most-once guarantee
	if err := im.ledger.MarkProcessed(c, payment.SourceTxHash); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"txHash": payment.SourceTxHash,
		}).Error("ledger.MarkProcessed failed after confirmed payout")
		im.met.BumpSum("mark.err", 1)
	}
	im.appendLog(c, fmt.Sprintf("paid %s ETH to %s for token %s (source %s, payout %s)",
		record.ArtistPayment, artist, record.TokenId, payment.SourceTxHash, record.PaymentTxHash))

	return record
}

func (im *impl) failRecord(c ctx.Ctx, record domain.PaymentRecord, err error) domain.PaymentRecord {
	c.WithFields(log.Fields{
		"err":    err,
		"txHash": record.TxHash,
	}).Warn("payment not settled")
	record.Status = domain.SettlementStatusFailed
	record.Reason = reason(err)
	return record
}

// reason strips wrapping noise down to the taxonomy sentinel when one is
// present, so the dashboard shows stable messages.
func reason(err error) string {
	for _, sentinel := range []error{
		domain.ErrAttributionNotFound,
		domain.ErrCreatorNotFound,
		domain.ErrConfirmationTimeout,
		domain.ErrBroadcastFailed,
		domain.ErrSettlementReverted,
		domain.ErrExplorerUnavailable,
		domain.ErrChainUnavailable,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func (im *impl) appendLog(c ctx.Ctx, message string) {
	if err := im.ledger.AppendLog(c, message); err != nil {
		c.WithField("err", err).Warn("ledger.AppendLog failed")
	}
}

func (im *impl) RecentLogs(c ctx.Ctx, limit int) ([]string, error) {
	return im.ledger.RecentLogs(c, limit)
}
