package domain

import (
	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
)

// AttributionUsecase resolves which NFT a royalty payment paid for and
// which wallet minted that NFT. Each resolution walks an ordered strategy
// chain; the first hit short-circuits the rest and nothing is cached
// across runs.
type AttributionUsecase interface {
	// ResolveToken returns ErrAttributionNotFound after exhausting every
	// strategy for the given source transaction.
	ResolveToken(c ctx.Ctx, txHash TxHash) (*TokenAttribution, error)
	// ResolveCreator returns ErrCreatorNotFound when neither the contract
	// nor the transfer history yields a minter.
	ResolveCreator(c ctx.Ctx, attribution *TokenAttribution) (Address, error)
}
