package domain

import (
	"time"

	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
)

// LedgerRepo is the durable state of the reconciliation engine. The
// processed set is the single source of truth for idempotency: a source tx
// hash is added if and only if its payout was confirmed on-chain.
type LedgerRepo interface {
	HasProcessed(c ctx.Ctx, txHash TxHash) (bool, error)
	MarkProcessed(c ctx.Ctx, txHash TxHash) error
	ProcessedCount(c ctx.Ctx) (int, error)
	GetLastRunTime(c ctx.Ctx) (time.Time, error)
	SetLastRunTime(c ctx.Ctx, t time.Time) error
	AppendLog(c ctx.Ctx, message string) error
	RecentLogs(c ctx.Ctx, limit int) ([]string, error)
}
