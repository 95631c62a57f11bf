package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/OneIdeaStart/dewild-royalties/base/abi"
	bCtx "github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/domain"
	"github.com/OneIdeaStart/dewild-royalties/service/chain"
)

// DewildNftContract reads creator information from the collection contract.
type DewildNftContract interface {
	TokenArtist(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (domain.Address, error)
}

type DewildNft struct {
	chainService chain.Client
}

func NewDewildNft(chainService chain.Client) *DewildNft {
	return &DewildNft{
		chainService: chainService,
	}
}

func (d *DewildNft) TokenArtist(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (domain.Address, error) {
	method := "tokenArtists"
	unpacked, err := d.chainService.Call(ctx, chainId, common.HexToAddress(string(addr)), nil, baseabi.DewildNftABI, method, tokenId)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).Hex()).ToLower(), nil
}
