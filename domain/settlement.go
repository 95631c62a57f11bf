package domain

import (
	"math/big"

	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
)

// SettlementResult describes one confirmed payout.
// Payment + GasCost == ArtistShare == floor(valueWei / 2).
type SettlementResult struct {
	PaymentTxHash TxHash
	BlockNumber   BlockNumber
	ArtistShare   *big.Int
	GasCost       *big.Int
	Payment       *big.Int
}

// SettlementUsecase computes the artist share of a royalty payment, checks
// economic viability against gas, and pays it out as a plain value
// transfer. Returns ErrEconomicallyUnviable when the share would not cover
// gas; such payments are deferred, not discarded.
type SettlementUsecase interface {
	Settle(c ctx.Ctx, artist Address, valueWei *big.Int) (*SettlementResult, error)
}
