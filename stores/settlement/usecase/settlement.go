package usecase

import (
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"

	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/base/log"
	"github.com/OneIdeaStart/dewild-royalties/domain"
	"github.com/OneIdeaStart/dewild-royalties/service/chain"
)

const (
	// transferGasLimit is the fixed gas of a plain value transfer
	transferGasLimit = uint64(21000)

	defaultConfirmTimeout = 120 * time.Second
)

type SettlementCfg struct {
	ChainId domain.ChainId
	// SignerKey is the hex encoded private key of the payout wallet
	SignerKey      string
	Chain          chain.Client
	ConfirmTimeout time.Duration
}

type impl struct {
	chainId        domain.ChainId
	signerKey      *ecdsa.PrivateKey
	signerAddress  common.Address
	signer         types.Signer
	chain          chain.Client
	confirmTimeout time.Duration
}

// New derives the payout wallet from cfg.SignerKey, failing when the key
// is malformed.
func New(cfg *SettlementCfg) (domain.SettlementUsecase, error) {
	key, err := crypto.HexToECDSA(cfg.SignerKey)
	if err != nil {
		return nil, xerrors.Errorf("derive signer wallet: %v: %w", err, domain.ErrConfiguration)
	}
	confirmTimeout := cfg.ConfirmTimeout
	if confirmTimeout == 0 {
		confirmTimeout = defaultConfirmTimeout
	}
	return &impl{
		chainId:        cfg.ChainId,
		signerKey:      key,
		signerAddress:  crypto.PubkeyToAddress(key.PublicKey),
		signer:         types.LatestSignerForChainID(big.NewInt(int64(cfg.ChainId))),
		chain:          cfg.Chain,
		confirmTimeout: confirmTimeout,
	}, nil
}

func (im *impl) Settle(c ctx.Ctx, artist domain.Address, valueWei *big.Int) (*domain.SettlementResult, error) {
	artistShare := new(big.Int).Div(valueWei, domain.Big2)

	gasPrice, err := im.chain.SuggestGasPrice(c, im.chainId)
	if err != nil {
		return nil, err
	}
	gasCost := new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(transferGasLimit))

	// small payments are deferred, not discarded: the source stays
	// unmarked and a later run reconsiders it when gas is cheaper
	if artistShare.Cmp(gasCost) <= 0 {
		c.WithFields(log.Fields{
			"artist":      artist,
			"artistShare": domain.WeiToEth(artistShare),
			"gasCost":     domain.WeiToEth(gasCost),
		}).Info("artist share does not cover gas")
		return nil, domain.ErrEconomicallyUnviable
	}
	payment := new(big.Int).Sub(artistShare, gasCost)

	nonce, err := im.chain.PendingNonceAt(c, im.chainId, im.signerAddress)
	if err != nil {
		return nil, err
	}

	to := common.HexToAddress(string(artist))
	tx := types.NewTransaction(nonce, to, payment, transferGasLimit, gasPrice, nil)
	signedTx, err := types.SignTx(tx, im.signer, im.signerKey)
	if err != nil {
		c.WithField("err", err).Error("types.SignTx failed")
		return nil, xerrors.Errorf("sign payout: %v: %w", err, domain.ErrBroadcastFailed)
	}

	if err := im.chain.SendTransaction(c, im.chainId, signedTx); err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{
		"artist":        artist,
		"payment":       domain.WeiToEth(payment),
		"paymentTxHash": signedTx.Hash().Hex(),
	}).Info("payout broadcast")

	receipt, err := im.chain.WaitMined(c, im.chainId, signedTx.Hash(), im.confirmTimeout)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, xerrors.Errorf("payout %s: %w", signedTx.Hash().Hex(), domain.ErrSettlementReverted)
	}

	return &domain.SettlementResult{
		PaymentTxHash: domain.TxHash(signedTx.Hash().Hex()).ToLower(),
		BlockNumber:   domain.BlockNumber(receipt.BlockNumber.Uint64()),
		ArtistShare:   artistShare,
		GasCost:       gasCost,
		Payment:       payment,
	}, nil
}
