package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/domain"
	chainmocks "github.com/OneIdeaStart/dewild-royalties/service/chain/mocks"
)

const (
	testChainId = domain.ChainId(8453)
	// throwaway key, never funded
	testSignerKey = "fad9c8855b740a0b7ed4c221dbad0f33a83a49cad6b3fe8d5817ac83d38b6a19"
	testArtist    = domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
)

type SettlementSuite struct {
	suite.Suite

	chain *chainmocks.Client
	uc    domain.SettlementUsecase
}

func TestSettlementSuite(t *testing.T) {
	suite.Run(t, new(SettlementSuite))
}

func (s *SettlementSuite) SetupTest() {
	s.chain = &chainmocks.Client{}
	uc, err := New(&SettlementCfg{
		ChainId:   testChainId,
		SignerKey: testSignerKey,
		Chain:     s.chain,
	})
	s.Require().Nil(err)
	s.uc = uc
}

func (s *SettlementSuite) TestNewRejectsMalformedKey() {
	_, err := New(&SettlementCfg{
		ChainId:   testChainId,
		SignerKey: "not a key",
		Chain:     s.chain,
	})
	s.True(xerrors.Is(err, domain.ErrConfiguration))
}

func (s *SettlementSuite) TestSettleConservation() {
	mockCtx := bCtx.Background()

	valueWei := new(big.Int).Mul(big.NewInt(1), domain.WeiPerEth) // 1 ETH royalty
	gasPrice := big.NewInt(20000000000)                           // 20 gwei

	var sentTx *types.Transaction
	s.chain.On("SuggestGasPrice", mock.Anything, testChainId).Return(gasPrice, nil)
	s.chain.On("PendingNonceAt", mock.Anything, testChainId, mock.Anything).Return(uint64(3), nil)
	s.chain.On("SendTransaction", mock.Anything, testChainId, mock.Anything).
		Run(func(args mock.Arguments) {
			sentTx = args.Get(2).(*types.Transaction)
		}).Return(nil)
	s.chain.On("WaitMined", mock.Anything, testChainId, mock.Anything, defaultConfirmTimeout).
		Return(&types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			BlockNumber: big.NewInt(555),
		}, nil)

	result, err := s.uc.Settle(mockCtx, testArtist, valueWei)
	s.Require().Nil(err)

	wantShare := new(big.Int).Div(valueWei, domain.Big2)
	wantGasCost := new(big.Int).Mul(gasPrice, big.NewInt(21000))
	s.Equal(wantShare, result.ArtistShare)
	s.Equal(wantGasCost, result.GasCost)
	// the payment plus the gas it buys is exactly the artist share
	s.Equal(wantShare, new(big.Int).Add(result.Payment, result.GasCost))
	s.Equal(domain.BlockNumber(555), result.BlockNumber)

	s.Require().NotNil(sentTx)
	s.Equal(uint64(3), sentTx.Nonce())
	s.Equal(uint64(21000), sentTx.Gas())
	s.Equal(gasPrice, sentTx.GasPrice())
	s.Equal(result.Payment, sentTx.Value())
	s.Equal(testArtist, domain.Address(sentTx.To().Hex()).ToLower())
	s.Equal(result.PaymentTxHash, domain.TxHash(sentTx.Hash().Hex()).ToLower())
}

func (s *SettlementSuite) TestSettleUnviable() {
	mockCtx := bCtx.Background()

	// a 1000 wei royalty cannot cover 20 gwei gas
	s.chain.On("SuggestGasPrice", mock.Anything, testChainId).Return(big.NewInt(20000000000), nil)

	result, err := s.uc.Settle(mockCtx, testArtist, big.NewInt(1000))
	s.Nil(result)
	s.Equal(domain.ErrEconomicallyUnviable, err)
	s.chain.AssertNotCalled(s.T(), "SendTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SettlementSuite) TestSettleBroadcastFailure() {
	mockCtx := bCtx.Background()

	broadcastErr := xerrors.Errorf("send: %v: %w", errors.New("nonce too low"), domain.ErrBroadcastFailed)
	s.chain.On("SuggestGasPrice", mock.Anything, testChainId).Return(big.NewInt(1000000000), nil)
	s.chain.On("PendingNonceAt", mock.Anything, testChainId, mock.Anything).Return(uint64(0), nil)
	s.chain.On("SendTransaction", mock.Anything, testChainId, mock.Anything).Return(broadcastErr)

	result, err := s.uc.Settle(mockCtx, testArtist, new(big.Int).Mul(big.NewInt(1), domain.WeiPerEth))
	s.Nil(result)
	s.True(xerrors.Is(err, domain.ErrBroadcastFailed))
	s.chain.AssertNotCalled(s.T(), "WaitMined", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SettlementSuite) TestSettleReverted() {
	mockCtx := bCtx.Background()

	s.chain.On("SuggestGasPrice", mock.Anything, testChainId).Return(big.NewInt(1000000000), nil)
	s.chain.On("PendingNonceAt", mock.Anything, testChainId, mock.Anything).Return(uint64(1), nil)
	s.chain.On("SendTransaction", mock.Anything, testChainId, mock.Anything).Return(nil)
	s.chain.On("WaitMined", mock.Anything, testChainId, mock.Anything, mock.Anything).
		Return(&types.Receipt{
			Status:      types.ReceiptStatusFailed,
			BlockNumber: big.NewInt(556),
		}, nil)

	result, err := s.uc.Settle(mockCtx, testArtist, new(big.Int).Mul(big.NewInt(1), domain.WeiPerEth))
	s.Nil(result)
	s.True(xerrors.Is(err, domain.ErrSettlementReverted))
}

func (s *SettlementSuite) TestConfirmTimeoutOverride() {
	s.chain = &chainmocks.Client{}
	uc, err := New(&SettlementCfg{
		ChainId:        testChainId,
		SignerKey:      testSignerKey,
		Chain:          s.chain,
		ConfirmTimeout: 30 * time.Second,
	})
	s.Require().Nil(err)

	mockCtx := bCtx.Background()
	s.chain.On("SuggestGasPrice", mock.Anything, testChainId).Return(big.NewInt(1000000000), nil)
	s.chain.On("PendingNonceAt", mock.Anything, testChainId, mock.Anything).Return(uint64(0), nil)
	s.chain.On("SendTransaction", mock.Anything, testChainId, mock.Anything).Return(nil)
	s.chain.On("WaitMined", mock.Anything, testChainId, mock.Anything, 30*time.Second).
		Return(nil, xerrors.Errorf("wait mined: %w", domain.ErrConfirmationTimeout))

	result, err := uc.Settle(mockCtx, testArtist, new(big.Int).Mul(big.NewInt(1), domain.WeiPerEth))
	s.Nil(result)
	s.True(xerrors.Is(err, domain.ErrConfirmationTimeout))
	s.chain.AssertExpectations(s.T())
}
