package etherscan

import (
	"errors"
	"math/big"
	"net/http"
	"time"

	bCtx "github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrApiStatusNotOk  = errors.New("etherscan api status != 1")
	ErrParseValue      = errors.New("parse transaction value error")
)

// Transaction is one row of the txlist / txlistinternal listings.
type Transaction struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	IsError     string `json:"isError"`
	BlockNumber string `json:"blockNumber"`
	TimeStamp   string `json:"timeStamp"`
}

// NftTransfer is one row of the tokennfttx listing.
type NftTransfer struct {
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	TokenID         string `json:"tokenID"`
	ContractAddress string `json:"contractAddress"`
	BlockNumber     string `json:"blockNumber"`
}

func (t NftTransfer) ToAttribution() *domain.TokenAttribution {
	return &domain.TokenAttribution{
		TokenId:       domain.TokenId(t.TokenID),
		TokenContract: domain.Address(t.ContractAddress).ToLower(),
	}
}

type TokenNftTransfersOptions struct {
	TxHash          *domain.TxHash
	ContractAddress *domain.Address
	TokenId         *domain.TokenId
	StartBlock      *domain.BlockNumber
	EndBlock        *domain.BlockNumber
	Sort            *string
}

type TokenNftTransfersOptionsFunc func(*TokenNftTransfersOptions) error

func ParseTokenNftTransfersOptions(opts ...TokenNftTransfersOptionsFunc) (TokenNftTransfersOptions, error) {
	opt := TokenNftTransfersOptions{}
	for _, f := range opts {
		if err := f(&opt); err != nil {
			return opt, err
		}
	}
	return opt, nil
}

func WithTxHash(txHash domain.TxHash) TokenNftTransfersOptionsFunc {
	return func(opt *TokenNftTransfersOptions) error {
		opt.TxHash = &txHash
		return nil
	}
}

func WithContractAddress(address domain.Address) TokenNftTransfersOptionsFunc {
	return func(opt *TokenNftTransfersOptions) error {
		opt.ContractAddress = &address
		return nil
	}
}

func WithTokenId(tokenId domain.TokenId) TokenNftTransfersOptionsFunc {
	return func(opt *TokenNftTransfersOptions) error {
		opt.TokenId = &tokenId
		return nil
	}
}

func WithStartBlock(blk domain.BlockNumber) TokenNftTransfersOptionsFunc {
	return func(opt *TokenNftTransfersOptions) error {
		opt.StartBlock = &blk
		return nil
	}
}

func WithEndBlock(blk domain.BlockNumber) TokenNftTransfersOptionsFunc {
	return func(opt *TokenNftTransfersOptions) error {
		opt.EndBlock = &blk
		return nil
	}
}

func WithSort(sort string) TokenNftTransfersOptionsFunc {
	return func(opt *TokenNftTransfersOptions) error {
		opt.Sort = &sort
		return nil
	}
}

type Client interface {
	// ListIncomingPayments merges the normal and internal transaction
	// listings of address, keeping confirmed nonzero transfers into it.
	ListIncomingPayments(ctx bCtx.Ctx, address domain.Address) ([]domain.IncomingPayment, error)
	// TokenNftTransfers lists NFT transfer events matching the options.
	// An empty result is not an error.
	TokenNftTransfers(ctx bCtx.Ctx, opts ...TokenNftTransfersOptionsFunc) ([]NftTransfer, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	BaseUrl    string
	ApiKey     string
}

func parseWei(value string) (*big.Int, error) {
	wei, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, ErrParseValue
	}
	return wei, nil
}
