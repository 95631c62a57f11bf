package chain

import (
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/xerrors"

	bCtx "github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/base/log"
	"github.com/OneIdeaStart/dewild-royalties/domain"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

const receiptPollInterval = 2 * time.Second

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
}

type Client interface {
	// Call performs a read-only contract call and unpacks the result
	Call(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	TransactionReceipt(c bCtx.Ctx, chainId domain.ChainId, txHash common.Hash) (*types.Receipt, error)
	// TransactionBlockNumber resolves the containing block of a mined
	// transaction through a raw eth_getTransactionByHash call
	TransactionBlockNumber(c bCtx.Ctx, chainId domain.ChainId, txHash common.Hash) (domain.BlockNumber, error)
	SuggestGasPrice(c bCtx.Ctx, chainId domain.ChainId) (*big.Int, error)
	PendingNonceAt(c bCtx.Ctx, chainId domain.ChainId, addr common.Address) (uint64, error)
	SendTransaction(c bCtx.Ctx, chainId domain.ChainId, tx *types.Transaction) error
	// WaitMined polls for the receipt of txHash until it lands or timeout
	// elapses. On timeout the error wraps domain.ErrConfirmationTimeout;
	// the transaction may still be mined later.
	WaitMined(c bCtx.Ctx, chainId domain.ChainId, txHash common.Hash, timeout time.Duration) (*types.Receipt, error)
}

type clientImpl struct {
	clients    map[domain.ChainId]*ethclient.Client
	rpcClients map[domain.ChainId]*rpc.Client
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	clients := make(map[domain.ChainId]*ethclient.Client)
	rpcClients := make(map[domain.ChainId]*rpc.Client)
	for chainId, url := range cfg.RpcUrls {
		rpcClient, err := rpc.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		rpcClients[chainId] = rpcClient
		clients[chainId] = ethclient.NewClient(rpcClient)
	}
	return &clientImpl{
		clients:    clients,
		rpcClients: rpcClients,
	}, anyerr
}

func (c *clientImpl) client(chainId domain.ChainId) (*ethclient.Client, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	return client, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, xerrors.Errorf("call %s: %v: %w", method, err, domain.ErrChainUnavailable)
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) TransactionReceipt(ctx bCtx.Ctx, chainId domain.ChainId, txHash common.Hash) (*types.Receipt, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}

	receipt, err := client.TransactionReceipt(ctx, txHash)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": txHash.Hex(),
		}).Warn("client.TransactionReceipt failed")
		return nil, xerrors.Errorf("receipt %s: %v: %w", txHash.Hex(), err, domain.ErrChainUnavailable)
	}
	return receipt, nil
}

// rawTransaction is the subset of the eth_getTransactionByHash response the
// engine cares about
type rawTransaction struct {
	BlockNumber *hexutil.Big `json:"blockNumber"`
}

func (c *clientImpl) TransactionBlockNumber(ctx bCtx.Ctx, chainId domain.ChainId, txHash common.Hash) (domain.BlockNumber, error) {
	rpcClient, ok := c.rpcClients[chainId]
	if !ok {
		return 0, ErrUnsupportedChain
	}

	var tx *rawTransaction
	if err := rpcClient.CallContext(ctx, &tx, "eth_getTransactionByHash", txHash); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": txHash.Hex(),
		}).Warn("eth_getTransactionByHash failed")
		return 0, xerrors.Errorf("transaction %s: %v: %w", txHash.Hex(), err, domain.ErrChainUnavailable)
	}
	if tx == nil || tx.BlockNumber == nil {
		// unknown hash or still pending
		return 0, domain.ErrNotFound
	}
	return domain.BlockNumber(tx.BlockNumber.ToInt().Uint64()), nil
}

func (c *clientImpl) SuggestGasPrice(ctx bCtx.Ctx, chainId domain.ChainId) (*big.Int, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}

	price, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, xerrors.Errorf("gas price: %v: %w", err, domain.ErrChainUnavailable)
	}
	return price, nil
}

func (c *clientImpl) PendingNonceAt(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address) (uint64, error) {
	client, err := c.client(chainId)
	if err != nil {
		return 0, err
	}

	nonce, err := client.PendingNonceAt(ctx, addr)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"addr": addr.Hex(),
		}).Error("client.PendingNonceAt failed")
		return 0, xerrors.Errorf("nonce of %s: %v: %w", addr.Hex(), err, domain.ErrChainUnavailable)
	}
	return nonce, nil
}

func (c *clientImpl) SendTransaction(ctx bCtx.Ctx, chainId domain.ChainId, tx *types.Transaction) error {
	client, err := c.client(chainId)
	if err != nil {
		return err
	}

	if err := client.SendTransaction(ctx, tx); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": tx.Hash().Hex(),
		}).Error("client.SendTransaction failed")
		return xerrors.Errorf("send %s: %v: %w", tx.Hash().Hex(), err, domain.ErrBroadcastFailed)
	}
	return nil
}

func (c *clientImpl) WaitMined(ctx bCtx.Ctx, chainId domain.ChainId, txHash common.Hash, timeout time.Duration) (*types.Receipt, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}

	waitCtx, cancel := bCtx.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := client.TransactionReceipt(waitCtx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			ctx.WithFields(log.Fields{
				"err":    err,
				"txHash": txHash.Hex(),
			}).Warn("polling receipt failed")
		}

		select {
		case <-waitCtx.Done():
			return nil, xerrors.Errorf("wait mined %s: %w", txHash.Hex(), domain.ErrConfirmationTimeout)
		case <-ticker.C:
		}
	}
}
