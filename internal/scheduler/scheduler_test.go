package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/mocks"
	"github.com/brewops/cafe-service/internal/service"
)

type stubReports struct {
	closedDay time.Time
	calls     int
}

func (s *stubReports) Daily(ctx context.Context, t time.Time) (*model.DailySummary, error) {
	return &model.DailySummary{}, nil
}

func (s *stubReports) CloseDay(ctx context.Context, t time.Time) (*model.DailySummary, error) {
	s.closedDay = t
	s.calls++
	return &model.DailySummary{}, nil
}

func (s *stubReports) History(ctx context.Context, limit int) ([]model.DailySummary, error) {
	return nil, nil
}

type stubPriceFeed struct {
	calls int
}

func (s *stubPriceFeed) Import(ctx context.Context) (*service.ImportResult, error) {
	s.calls++
	return &service.ImportResult{}, nil
}

func TestNew_DefaultsJobTimeout(t *testing.T) {
	s := New(Config{}, &stubReports{})
	assert.Equal(t, 2*time.Minute, s.cfg.JobTimeout)
}

func TestScheduler_StartRegistersConfiguredJobs(t *testing.T) {
	tokensRepo := new(mocks.MockTokensRepositoryInterface)
	s := New(DefaultConfig(), &stubReports{}, WithTokenCleanup(tokensRepo))

	assert.NoError(t, s.Start())
	defer s.Stop()

	// Daily close and token cleanup; the price feed spec is empty.
	assert.Len(t, s.cron.Entries(), 2)
}

func TestScheduler_StartWithPriceFeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PriceFeedSpec = "0 6 * * 1"
	s := New(cfg, &stubReports{}, WithPriceFeed(&stubPriceFeed{}))

	assert.NoError(t, s.Start())
	defer s.Stop()

	assert.Len(t, s.cron.Entries(), 2)
}

func TestScheduler_StartInvalidSpec(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DailyCloseSpec = "not a cron spec"
	s := New(cfg, &stubReports{})

	assert.Error(t, s.Start())
}

func TestScheduler_SkipsJobsWithoutDependencies(t *testing.T) {
	// Token cleanup and price feed specs are set but their dependencies are
	// not wired, so only the daily close is registered.
	cfg := DefaultConfig()
	cfg.PriceFeedSpec = "0 6 * * 1"
	s := New(cfg, &stubReports{})

	assert.NoError(t, s.Start())
	defer s.Stop()

	assert.Len(t, s.cron.Entries(), 1)
}

func TestRunDailyClose_ClosesYesterday(t *testing.T) {
	reports := &stubReports{}
	s := New(DefaultConfig(), reports)

	s.runDailyClose()

	assert.Equal(t, 1, reports.calls)
	yesterday := time.Now().AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Year(), reports.closedDay.Year())
	assert.Equal(t, yesterday.YearDay(), reports.closedDay.YearDay())
}

func TestRunTokenCleanup(t *testing.T) {
	tokensRepo := new(mocks.MockTokensRepositoryInterface)
	tokensRepo.On("CleanupExpired", mock.Anything).Return(nil)

	s := New(DefaultConfig(), &stubReports{}, WithTokenCleanup(tokensRepo))
	s.runTokenCleanup()

	tokensRepo.AssertExpectations(t)
}

func TestRunPriceFeedImport(t *testing.T) {
	priceFeed := &stubPriceFeed{}
	s := New(DefaultConfig(), &stubReports{}, WithPriceFeed(priceFeed))

	s.runPriceFeedImport()

	assert.Equal(t, 1, priceFeed.calls)
}
