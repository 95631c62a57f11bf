package etherscan

import (
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/domain"
)

const (
	royaltyAddress = domain.Address("0x1111111111111111111111111111111111111111")
	otherAddress   = "0x2222222222222222222222222222222222222222"
)

type EtherscanSuite struct {
	suite.Suite
}

func TestEtherscanSuite(t *testing.T) {
	suite.Run(t, new(EtherscanSuite))
}

func (s *EtherscanSuite) newClient(handler http.Handler) (Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    5 * time.Second,
		BaseUrl:    server.URL,
		ApiKey:     "testkey",
	})
	return client, server
}

func envelopeBody(result string) string {
	return fmt.Sprintf(`{"status":"1","message":"OK","result":%s}`, result)
}

func (s *EtherscanSuite) TestListIncomingPaymentsMergesAndFilters() {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("action") {
		case "txlist":
			// incoming, outgoing, zero value, reverted and a duplicate of
			// an internal transfer
			fmt.Fprint(w, envelopeBody(`[
				{"hash":"0xAA","from":"0xsender","to":"`+royaltyAddress.ToLowerStr()+`","value":"1000000000000000000","isError":"0"},
				{"hash":"0xbb","from":"`+royaltyAddress.ToLowerStr()+`","to":"`+otherAddress+`","value":"5","isError":"0"},
				{"hash":"0xcc","from":"0xsender","to":"`+royaltyAddress.ToLowerStr()+`","value":"0","isError":"0"},
				{"hash":"0xdd","from":"0xsender","to":"`+royaltyAddress.ToLowerStr()+`","value":"7","isError":"1"},
				{"hash":"0xee","from":"0xsender","to":"`+royaltyAddress.ToLowerStr()+`","value":"9","isError":"0"}
			]`))
		case "txlistinternal":
			fmt.Fprint(w, envelopeBody(`[
				{"hash":"0xEE","from":"0xmarket","to":"`+royaltyAddress.ToLowerStr()+`","value":"9"},
				{"hash":"0xff","from":"0xmarket","to":"`+royaltyAddress.ToLowerStr()+`","value":"300"}
			]`))
		default:
			s.Failf("unexpected action", "action=%s", r.URL.Query().Get("action"))
		}
	})
	client, server := s.newClient(handler)
	defer server.Close()

	payments, err := client.ListIncomingPayments(bCtx.Background(), royaltyAddress)
	s.Nil(err)
	s.Equal([]domain.IncomingPayment{
		{SourceTxHash: "0xaa", ValueWei: big.NewInt(1000000000000000000)},
		{SourceTxHash: "0xee", ValueWei: big.NewInt(9)},
		{SourceTxHash: "0xff", ValueWei: big.NewInt(300)},
	}, payments)
}

func (s *EtherscanSuite) TestListIncomingPaymentsEmpty() {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"0","message":"No transactions found","result":[]}`)
	})
	client, server := s.newClient(handler)
	defer server.Close()

	payments, err := client.ListIncomingPayments(bCtx.Background(), royaltyAddress)
	s.Nil(err)
	s.Empty(payments)
}

func (s *EtherscanSuite) TestListIncomingPaymentsApiError() {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"status":"0","message":"NOTOK","result":"Max rate limit reached"}`)
	})
	client, server := s.newClient(handler)
	defer server.Close()

	_, err := client.ListIncomingPayments(bCtx.Background(), royaltyAddress)
	s.True(xerrors.Is(err, domain.ErrExplorerUnavailable))
	s.Equal(maxAttempts, calls)
}

func (s *EtherscanSuite) TestTokenNftTransfersParams() {
	var query map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		fmt.Fprint(w, envelopeBody(`[
			{"hash":"0x01","from":"0x0000000000000000000000000000000000000000","to":"0xartist","tokenID":"7","contractAddress":"0xCAFE","blockNumber":"100"}
		]`))
	})
	client, server := s.newClient(handler)
	defer server.Close()

	transfers, err := client.TokenNftTransfers(bCtx.Background(),
		WithContractAddress("0xCAFE"),
		WithStartBlock(100),
		WithEndBlock(100),
		WithSort("asc"),
	)
	s.Nil(err)

	s.Equal("tokennfttx", query["action"][0])
	s.Equal("0xcafe", query["contractaddress"][0])
	s.Equal("100", query["startblock"][0])
	s.Equal("100", query["endblock"][0])
	s.Equal("asc", query["sort"][0])
	s.Equal("testkey", query["apikey"][0])

	s.Len(transfers, 1)
	s.Equal(&domain.TokenAttribution{
		TokenId:       "7",
		TokenContract: "0xcafe",
	}, transfers[0].ToAttribution())
}

func (s *EtherscanSuite) TestTokenNftTransfersByTxHash() {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("0xdeadbeef", r.URL.Query().Get("txhash"))
		fmt.Fprint(w, `{"status":"0","message":"No transactions found","result":[]}`)
	})
	client, server := s.newClient(handler)
	defer server.Close()

	transfers, err := client.TokenNftTransfers(bCtx.Background(), WithTxHash("0xDEADBEEF"))
	s.Nil(err)
	s.Empty(transfers)
}
