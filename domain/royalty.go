package domain

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
)

// IncomingPayment is one value transfer into the royalty address,
// discovered fresh on every run. Only its hash is ever persisted.
type IncomingPayment struct {
	SourceTxHash TxHash
	ValueWei     *big.Int
}

// TokenAttribution maps a payment to the NFT that generated it.
type TokenAttribution struct {
	TokenId       TokenId
	TokenContract Address
}

type SettlementStatus string

const (
	SettlementStatusCompleted SettlementStatus = "completed"
	SettlementStatusSkipped   SettlementStatus = "skipped"
	SettlementStatusFailed    SettlementStatus = "failed"
)

// PaymentRecord is the per-payment entry of the run report consumed by the
// dashboard. Amounts are ETH decimal strings.
type PaymentRecord struct {
	TxHash        TxHash           `json:"txHash"`
	TokenId       TokenId          `json:"tokenId,omitempty"`
	ArtistAddress Address          `json:"artistAddress,omitempty"`
	ArtistPayment string           `json:"artistPayment,omitempty"`
	PaymentTxHash TxHash           `json:"paymentTxHash,omitempty"`
	Status        SettlementStatus `json:"status"`
	Reason        string           `json:"reason,omitempty"`
}

type RunReport struct {
	Success        bool            `json:"success"`
	Skipped        bool            `json:"skipped,omitempty"`
	HoursUntilNext float64         `json:"hoursUntilNext,omitempty"`
	ProcessedCount int             `json:"processedCount"`
	Transactions   []PaymentRecord `json:"transactions"`
	Errors         []PaymentRecord `json:"errors"`
}

type Trigger string

const (
	// TriggerManual bypasses the 24h gate
	TriggerManual Trigger = "manual"
	// TriggerScheduled respects the 24h gate
	TriggerScheduled Trigger = "scheduled"
)

// RoyaltyUsecase runs one reconciliation pass: discover incoming royalty
// payments, attribute each to the minting artist, settle the artist share
// on-chain and record progress so re-runs never double-pay.
type RoyaltyUsecase interface {
	Reconcile(c ctx.Ctx, trigger Trigger) (*RunReport, error)
	RecentLogs(c ctx.Ctx, limit int) ([]string, error)
}

// WeiToEth renders a wei amount as an ETH decimal string for reports and
// log lines.
func WeiToEth(wei *big.Int) string {
	return decimal.NewFromBigInt(wei, -18).String()
}
