package etherscan

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/xerrors"

	"github.com/OneIdeaStart/dewild-royalties/base/backoff"
	bCtx "github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/base/log"
	"github.com/OneIdeaStart/dewild-royalties/domain"
)

const (
	maxAttempts = 3

	retryStart = 500 * time.Millisecond
	retryLimit = 5 * time.Second
)

// envelope is the common etherscan-family response wrapper
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		baseUrl: cfg.BaseUrl,
		apiKey:  cfg.ApiKey,
	}
}

type client struct {
	client  http.Client
	timeout time.Duration
	baseUrl string
	apiKey  string
}

func (c *client) ListIncomingPayments(ctx bCtx.Ctx, address domain.Address) ([]domain.IncomingPayment, error) {
	normal, err := c.listTransactions(ctx, "txlist", address)
	if err != nil {
		return nil, err
	}
	internal, err := c.listTransactions(ctx, "txlistinternal", address)
	if err != nil {
		return nil, err
	}

	seen := map[domain.TxHash]bool{}
	payments := []domain.IncomingPayment{}
	appendIncoming := func(txs []Transaction, checkRevert bool) error {
		for _, tx := range txs {
			if !domain.Address(tx.To).Equals(address) {
				continue
			}
			if tx.Value == "" || tx.Value == "0" {
				continue
			}
			if checkRevert && tx.IsError == "1" {
				continue
			}
			hash := domain.TxHash(tx.Hash).ToLower()
			if seen[hash] {
				continue
			}
			wei, err := parseWei(tx.Value)
			if err != nil {
				ctx.WithFields(log.Fields{
					"txHash": tx.Hash,
					"value":  tx.Value,
				}).Error("parse value failed")
				return err
			}
			seen[hash] = true
			payments = append(payments, domain.IncomingPayment{
				SourceTxHash: hash,
				ValueWei:     wei,
			})
		}
		return nil
	}

	if err := appendIncoming(normal, true); err != nil {
		return nil, err
	}
	// internal transactions have no execution status of their own, a
	// recorded value transfer already succeeded
	if err := appendIncoming(internal, false); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *client) listTransactions(ctx bCtx.Ctx, action string, address domain.Address) ([]Transaction, error) {
	params := url.Values{
		"module":     {"account"},
		"action":     {action},
		"address":    {address.ToLowerStr()},
		"startblock": {"0"},
		"endblock":   {"99999999"},
		"sort":       {"desc"},
	}
	data, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	txs := []Transaction{}
	if err := json.Unmarshal(data, &txs); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("unmarshal %s: %v: %w", action, err, domain.ErrExplorerUnavailable)
	}
	return txs, nil
}

func (c *client) TokenNftTransfers(ctx bCtx.Ctx, opts ...TokenNftTransfersOptionsFunc) ([]NftTransfer, error) {
	opt, err := ParseTokenNftTransfersOptions(opts...)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"module": {"account"},
		"action": {"tokennfttx"},
	}
	if opt.TxHash != nil {
		params.Set("txhash", opt.TxHash.ToLower().String())
	}
	if opt.ContractAddress != nil {
		params.Set("contractaddress", opt.ContractAddress.ToLowerStr())
	}
	if opt.TokenId != nil {
		params.Set("tokenid", opt.TokenId.String())
	}
	if opt.StartBlock != nil {
		params.Set("startblock", opt.StartBlock.String())
	}
	if opt.EndBlock != nil {
		params.Set("endblock", opt.EndBlock.String())
	}
	if opt.Sort != nil {
		params.Set("sort", *opt.Sort)
	}

	data, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	transfers := []NftTransfer{}
	if err := json.Unmarshal(data, &transfers); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("unmarshal tokennfttx: %v: %w", err, domain.ErrExplorerUnavailable)
	}
	return transfers, nil
}

// get performs one explorer api call with retries and unwraps the response
// envelope. An empty listing is returned as an empty result, not an error.
func (c *client) get(ctx bCtx.Ctx, params url.Values) (json.RawMessage, error) {
	params.Set("apikey", c.apiKey)
	url := fmt.Sprintf("%s?%s", c.baseUrl, params.Encode())

	bo := backoff.NewExponential(retryStart, retryLimit)
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			if err := bo.Backoff(ctx); err != nil {
				return nil, err
			}
		}
		res, err := c.getOnce(ctx, url)
		if err == nil {
			return res, nil
		}
		lastErr = err
		ctx.WithFields(log.Fields{
			"err":     err,
			"attempt": attempt,
			"action":  params.Get("action"),
		}).Warn("explorer call failed")
	}
	return nil, xerrors.Errorf("explorer %s: %v: %w", params.Get("action"), lastErr, domain.ErrExplorerUnavailable)
}

func (c *client) getOnce(ctx bCtx.Ctx, url string) (json.RawMessage, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithField("statusCode", resp.StatusCode).Warn("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	env := envelope{}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	if env.Status != "1" {
		// the api reports empty listings as status 0
		if env.Message == "No transactions found" {
			return json.RawMessage("[]"), nil
		}
		ctx.WithFields(log.Fields{
			"status":  env.Status,
			"message": env.Message,
		}).Warn("etherscan api status != 1")
		return nil, ErrApiStatusNotOk
	}
	return env.Result, nil
}
