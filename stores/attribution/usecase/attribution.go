package usecase

import (
	"sort"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/OneIdeaStart/dewild-royalties/base/abi"
	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/base/log"
	"github.com/OneIdeaStart/dewild-royalties/domain"
	"github.com/OneIdeaStart/dewild-royalties/service/chain"
	"github.com/OneIdeaStart/dewild-royalties/service/chain/contract"
	"github.com/OneIdeaStart/dewild-royalties/service/etherscan"
)

// tokenStrategy resolves the NFT behind a source transaction. A nil
// attribution with nil error means the strategy had no answer; an error is
// a transport failure. Either way the next strategy runs.
type tokenStrategy struct {
	name    string
	resolve func(ctx.Ctx, domain.TxHash) (*domain.TokenAttribution, error)
}

type AttributionCfg struct {
	ChainId     domain.ChainId
	NftContract domain.Address
	Etherscan   etherscan.Client
	Chain       chain.Client
	DewildNft   contract.DewildNftContract
}

type impl struct {
	chainId     domain.ChainId
	nftContract domain.Address
	etherscan   etherscan.Client
	chain       chain.Client
	dewildNft   contract.DewildNftContract
}

func New(cfg *AttributionCfg) domain.AttributionUsecase {
	return &impl{
		chainId:     cfg.ChainId,
		nftContract: cfg.NftContract,
		etherscan:   cfg.Etherscan,
		chain:       cfg.Chain,
		dewildNft:   cfg.DewildNft,
	}
}

func (im *impl) ResolveToken(c ctx.Ctx, txHash domain.TxHash) (*domain.TokenAttribution, error) {
	strategies := []tokenStrategy{
		{"explorerByTxHash", im.tokenByTxHash},
		{"explorerByBlock", im.tokenByBlock},
		{"receiptLogScan", im.tokenByReceiptLogs},
	}
	for _, strategy := range strategies {
		attribution, err := strategy.resolve(c, txHash)
		if err != nil {
			c.WithFields(log.Fields{
				"err":      err,
				"strategy": strategy.name,
				"txHash":   txHash,
			}).Warn("token strategy failed")
			continue
		}
		if attribution != nil {
			c.WithFields(log.Fields{
				"strategy":      strategy.name,
				"txHash":        txHash,
				"tokenId":       attribution.TokenId,
				"tokenContract": attribution.TokenContract,
			}).Info("token attributed")
			return attribution, nil
		}
	}
	return nil, domain.ErrAttributionNotFound
}

func (im *impl) tokenByTxHash(c ctx.Ctx, txHash domain.TxHash) (*domain.TokenAttribution, error) {
	transfers, err := im.etherscan.TokenNftTransfers(c, etherscan.WithTxHash(txHash))
	if err != nil {
		return nil, err
	}
	for _, t := range transfers {
		if domain.TxHash(t.Hash).Equals(txHash) {
			return t.ToAttribution(), nil
		}
	}
	return nil, nil
}

// tokenByBlock guards against the explorer's by-hash index lagging: list
// every collection transfer in the containing block and match on the hash.
func (im *impl) tokenByBlock(c ctx.Ctx, txHash domain.TxHash) (*domain.TokenAttribution, error) {
	blk, err := im.chain.TransactionBlockNumber(c, im.chainId, common.HexToHash(txHash.String()))
	if err != nil {
		return nil, err
	}
	transfers, err := im.etherscan.TokenNftTransfers(c,
		etherscan.WithContractAddress(im.nftContract),
		etherscan.WithStartBlock(blk),
		etherscan.WithEndBlock(blk),
	)
	if err != nil {
		return nil, err
	}
	for _, t := range transfers {
		if domain.TxHash(t.Hash).Equals(txHash) {
			return t.ToAttribution(), nil
		}
	}
	return nil, nil
}

func (im *impl) tokenByReceiptLogs(c ctx.Ctx, txHash domain.TxHash) (*domain.TokenAttribution, error) {
	receipt, err := im.chain.TransactionReceipt(c, im.chainId, common.HexToHash(txHash.String()))
	if err != nil {
		return nil, err
	}
	for _, l := range receipt.Logs {
		// an erc721 transfer indexes the token id, so the log carries
		// four topics; erc20 transfers only carry three
		if len(l.Topics) != 4 || l.Topics[0] != baseabi.Erc721TransferTopic {
			continue
		}
		tokenId := l.Topics[3].Big()
		return &domain.TokenAttribution{
			TokenId:       domain.TokenId(tokenId.String()),
			TokenContract: domain.Address(l.Address.Hex()).ToLower(),
		}, nil
	}
	return nil, nil
}

func (im *impl) ResolveCreator(c ctx.Ctx, attribution *domain.TokenAttribution) (domain.Address, error) {
	if artist, err := im.creatorByContract(c, attribution); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": attribution.TokenId,
		}).Warn("tokenArtists lookup failed")
	} else if !artist.IsEmpty() {
		return artist, nil
	}

	if artist, err := im.creatorByMintTransfer(c, attribution); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": attribution.TokenId,
		}).Warn("mint transfer lookup failed")
	} else if !artist.IsEmpty() {
		return artist, nil
	}

	return "", domain.ErrCreatorNotFound
}

func (im *impl) creatorByContract(c ctx.Ctx, attribution *domain.TokenAttribution) (domain.Address, error) {
	tokenId, err := attribution.TokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	artist, err := im.dewildNft.TokenArtist(c, im.chainId, attribution.TokenContract, tokenId)
	if err != nil {
		return "", err
	}
	if artist.IsZero() {
		return "", nil
	}
	return artist, nil
}

// creatorByMintTransfer walks the token's transfer history back to the
// mint event: the recipient of the first transfer out of the zero address.
func (im *impl) creatorByMintTransfer(c ctx.Ctx, attribution *domain.TokenAttribution) (domain.Address, error) {
	transfers, err := im.etherscan.TokenNftTransfers(c,
		etherscan.WithContractAddress(attribution.TokenContract),
		etherscan.WithTokenId(attribution.TokenId),
		etherscan.WithSort("asc"),
	)
	if err != nil {
		return "", err
	}
	sort.SliceStable(transfers, func(i, j int) bool {
		bi, _ := strconv.ParseUint(transfers[i].BlockNumber, 10, 64)
		bj, _ := strconv.ParseUint(transfers[j].BlockNumber, 10, 64)
		return bi < bj
	})
	for _, t := range transfers {
		if domain.Address(t.From).Equals(domain.EmptyAddress) {
			return domain.Address(t.To).ToLower(), nil
		}
	}
	return "", nil
}
