package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/OneIdeaStart/dewild-royalties/base/abi"
	bCtx "github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/domain"
	contractmocks "github.com/OneIdeaStart/dewild-royalties/service/chain/contract/mocks"
	chainmocks "github.com/OneIdeaStart/dewild-royalties/service/chain/mocks"
	"github.com/OneIdeaStart/dewild-royalties/service/etherscan"
	etherscanmocks "github.com/OneIdeaStart/dewild-royalties/service/etherscan/mocks"
)

const (
	testChainId     = domain.ChainId(8453)
	testNftContract = domain.Address("0xcafecafecafecafecafecafecafecafecafecafe")
	testArtist      = domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	testTxHash      = domain.TxHash("0x1234000000000000000000000000000000000000000000000000000000000000")
)

type AttributionSuite struct {
	suite.Suite

	etherscan *etherscanmocks.Client
	chain     *chainmocks.Client
	dewildNft *contractmocks.DewildNftContract
	uc        domain.AttributionUsecase
}

func TestAttributionSuite(t *testing.T) {
	suite.Run(t, new(AttributionSuite))
}

func (s *AttributionSuite) SetupTest() {
	s.etherscan = &etherscanmocks.Client{}
	s.chain = &chainmocks.Client{}
	s.dewildNft = &contractmocks.DewildNftContract{}
	s.uc = New(&AttributionCfg{
		ChainId:     testChainId,
		NftContract: testNftContract,
		Etherscan:   s.etherscan,
		Chain:       s.chain,
		DewildNft:   s.dewildNft,
	})
}

func (s *AttributionSuite) TestResolveTokenByTxHash() {
	mockCtx := bCtx.Background()

	// TokenNftTransfers with a single txhash option
	s.etherscan.On("TokenNftTransfers", mock.Anything, mock.Anything).Return([]etherscan.NftTransfer{
		{Hash: string(testTxHash), TokenID: "7", ContractAddress: string(testNftContract)},
	}, nil)

	attribution, err := s.uc.ResolveToken(mockCtx, testTxHash)
	s.Nil(err)
	s.Equal(&domain.TokenAttribution{
		TokenId:       "7",
		TokenContract: testNftContract,
	}, attribution)

	// the first strategy answered, the chain is never touched
	s.chain.AssertNotCalled(s.T(), "TransactionBlockNumber", mock.Anything, mock.Anything, mock.Anything)
	s.chain.AssertNotCalled(s.T(), "TransactionReceipt", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AttributionSuite) TestResolveTokenByBlockFallback() {
	mockCtx := bCtx.Background()

	// the by-hash index lags, the by-hash lookup comes back empty
	s.etherscan.On("TokenNftTransfers", mock.Anything, mock.Anything).
		Return([]etherscan.NftTransfer{}, nil)

	s.chain.On("TransactionBlockNumber", mock.Anything, testChainId, common.HexToHash(testTxHash.String())).
		Return(domain.BlockNumber(123), nil)

	// the per-block listing carries the matching transfer
	s.etherscan.On("TokenNftTransfers", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]etherscan.NftTransfer{
			{Hash: "0xother", TokenID: "1", ContractAddress: string(testNftContract), BlockNumber: "123"},
			{Hash: string(testTxHash), TokenID: "9", ContractAddress: string(testNftContract), BlockNumber: "123"},
		}, nil)

	attribution, err := s.uc.ResolveToken(mockCtx, testTxHash)
	s.Nil(err)
	s.Equal(domain.TokenId("9"), attribution.TokenId)

	// never reaches the raw log scan
	s.chain.AssertNotCalled(s.T(), "TransactionReceipt", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AttributionSuite) TestResolveTokenByReceiptLogs() {
	mockCtx := bCtx.Background()

	s.etherscan.On("TokenNftTransfers", mock.Anything, mock.Anything).
		Return([]etherscan.NftTransfer{}, nil)
	s.chain.On("TransactionBlockNumber", mock.Anything, testChainId, mock.Anything).
		Return(domain.BlockNumber(0), domain.ErrNotFound)

	receipt := &types.Receipt{
		Logs: []*types.Log{
			{
				// erc20 transfer, only three topics
				Address: common.HexToAddress("0xdead"),
				Topics:  []common.Hash{baseabi.Erc721TransferTopic, {}, {}},
			},
			{
				Address: common.HexToAddress(string(testNftContract)),
				Topics: []common.Hash{
					baseabi.Erc721TransferTopic,
					{},
					{},
					common.BigToHash(big.NewInt(42)),
				},
			},
		},
	}
	s.chain.On("TransactionReceipt", mock.Anything, testChainId, common.HexToHash(testTxHash.String())).
		Return(receipt, nil)

	attribution, err := s.uc.ResolveToken(mockCtx, testTxHash)
	s.Nil(err)
	s.Equal(domain.TokenId("42"), attribution.TokenId)
	s.Equal(testNftContract, attribution.TokenContract)
}

func (s *AttributionSuite) TestResolveTokenExhausted() {
	mockCtx := bCtx.Background()

	s.etherscan.On("TokenNftTransfers", mock.Anything, mock.Anything).
		Return([]etherscan.NftTransfer{}, nil)
	s.chain.On("TransactionBlockNumber", mock.Anything, testChainId, mock.Anything).
		Return(domain.BlockNumber(0), errors.New("rpc down"))
	s.chain.On("TransactionReceipt", mock.Anything, testChainId, mock.Anything).
		Return(&types.Receipt{}, nil)

	attribution, err := s.uc.ResolveToken(mockCtx, testTxHash)
	s.Nil(attribution)
	s.Equal(domain.ErrAttributionNotFound, err)
}

func (s *AttributionSuite) TestResolveCreatorByContract() {
	mockCtx := bCtx.Background()

	s.dewildNft.On("TokenArtist", mock.Anything, testChainId, testNftContract, big.NewInt(7)).
		Return(testArtist, nil)

	artist, err := s.uc.ResolveCreator(mockCtx, &domain.TokenAttribution{
		TokenId:       "7",
		TokenContract: testNftContract,
	})
	s.Nil(err)
	s.Equal(testArtist, artist)
	s.etherscan.AssertNotCalled(s.T(), "TokenNftTransfers", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AttributionSuite) TestResolveCreatorByMintTransfer() {
	mockCtx := bCtx.Background()

	// zero artist on contract means the collection never recorded one
	s.dewildNft.On("TokenArtist", mock.Anything, testChainId, testNftContract, big.NewInt(7)).
		Return(domain.EmptyAddress, nil)

	s.etherscan.On("TokenNftTransfers", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]etherscan.NftTransfer{
			{Hash: "0x02", From: string(testArtist), To: "0xbuyer", BlockNumber: "200"},
			{Hash: "0x01", From: string(domain.EmptyAddress), To: string(testArtist), BlockNumber: "100"},
		}, nil)

	artist, err := s.uc.ResolveCreator(mockCtx, &domain.TokenAttribution{
		TokenId:       "7",
		TokenContract: testNftContract,
	})
	s.Nil(err)
	s.Equal(testArtist, artist)
}

func (s *AttributionSuite) TestResolveCreatorExhausted() {
	mockCtx := bCtx.Background()

	s.dewildNft.On("TokenArtist", mock.Anything, testChainId, testNftContract, big.NewInt(7)).
		Return(domain.Address(""), errors.New("execution reverted"))
	s.etherscan.On("TokenNftTransfers", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]etherscan.NftTransfer{
			{Hash: "0x02", From: "0xseller", To: "0xbuyer", BlockNumber: "200"},
		}, nil)

	artist, err := s.uc.ResolveCreator(mockCtx, &domain.TokenAttribution{
		TokenId:       "7",
		TokenContract: testNftContract,
	})
	s.Equal(domain.ErrCreatorNotFound, err)
	s.True(artist.IsEmpty())
}
