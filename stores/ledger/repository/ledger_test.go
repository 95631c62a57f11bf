package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/domain"
	"github.com/OneIdeaStart/dewild-royalties/service/redis"
	"github.com/OneIdeaStart/dewild-royalties/service/redis/mocks"
)

type LedgerSuite struct {
	suite.Suite

	redis *mocks.Service
	repo  domain.LedgerRepo
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) SetupTest() {
	s.redis = &mocks.Service{}
	s.repo = New(s.redis)
}

func (s *LedgerSuite) TestHasProcessedLowercasesHash() {
	mockCtx := bCtx.Background()

	s.redis.On("SIsMember", mock.Anything, "royalty:processed", "0xabcdef").Return(true, nil)

	processed, err := s.repo.HasProcessed(mockCtx, domain.TxHash("0xABCDEF"))
	s.Nil(err)
	s.True(processed)
	s.redis.AssertExpectations(s.T())
}

func (s *LedgerSuite) TestMarkProcessed() {
	mockCtx := bCtx.Background()

	s.redis.On("SAdd", mock.Anything, "royalty:processed", "0xabcdef").Return(nil)

	s.Nil(s.repo.MarkProcessed(mockCtx, domain.TxHash("0xAbCdEf")))
	s.redis.AssertExpectations(s.T())
}

func (s *LedgerSuite) TestProcessedCount() {
	mockCtx := bCtx.Background()

	s.redis.On("SCard", mock.Anything, "royalty:processed").Return(42, nil)

	count, err := s.repo.ProcessedCount(mockCtx)
	s.Nil(err)
	s.Equal(42, count)
}

func (s *LedgerSuite) TestGetLastRunTime() {
	mockCtx := bCtx.Background()

	s.redis.On("Get", mock.Anything, "royalty:lastRunTime").Return([]byte("1700000000"), nil)

	last, err := s.repo.GetLastRunTime(mockCtx)
	s.Nil(err)
	s.Equal(time.Unix(1700000000, 0), last)
}

func (s *LedgerSuite) TestGetLastRunTimeNeverRan() {
	mockCtx := bCtx.Background()

	s.redis.On("Get", mock.Anything, "royalty:lastRunTime").Return(nil, redis.ErrNotFound)

	last, err := s.repo.GetLastRunTime(mockCtx)
	s.Nil(err)
	s.True(last.IsZero())
}

func (s *LedgerSuite) TestSetLastRunTime() {
	mockCtx := bCtx.Background()

	s.redis.On("Set", mock.Anything, "royalty:lastRunTime", []byte("1700000000"), redis.Forever).Return(nil)

	s.Nil(s.repo.SetLastRunTime(mockCtx, time.Unix(1700000000, 0)))
	s.redis.AssertExpectations(s.T())
}

func (s *LedgerSuite) TestAppendLogTrimsToCap() {
	mockCtx := bCtx.Background()

	s.redis.On("LPush", mock.Anything, "royalty:runLog", mock.MatchedBy(func(val []byte) bool {
		return strings.HasSuffix(string(val), " payout done")
	})).Return(nil)
	s.redis.On("LTrim", mock.Anything, "royalty:runLog", 0, runLogCap-1).Return(nil)

	s.Nil(s.repo.AppendLog(mockCtx, "payout done"))
	s.redis.AssertExpectations(s.T())
}

func (s *LedgerSuite) TestRecentLogsClampsLimit() {
	mockCtx := bCtx.Background()

	s.redis.On("LRange", mock.Anything, "royalty:runLog", 0, runLogCap).
		Return([][]byte{[]byte("b"), []byte("a")}, nil)

	logs, err := s.repo.RecentLogs(mockCtx, -1)
	s.Nil(err)
	s.Equal([]string{"b", "a"}, logs)
}

func (s *LedgerSuite) TestRecentLogs() {
	mockCtx := bCtx.Background()

	s.redis.On("LRange", mock.Anything, "royalty:runLog", 0, 5).
		Return([][]byte{[]byte("newest")}, nil)

	logs, err := s.repo.RecentLogs(mockCtx, 5)
	s.Nil(err)
	s.Equal([]string{"newest"}, logs)
}
