package service_test

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

func daySales() []model.Sale {
	return []model.Sale{
		{ProductName: "Cafe latte", Quantity: 2, UnitPrice: 25000, Total: 50000, UnitCost: 2645},
		{ProductName: "Americano", Quantity: 1, UnitPrice: 18000, Total: 18000, UnitCost: 2160},
	}
}

func TestReportsService_Daily_OpenDay(t *testing.T) {
	day := time.Date(2026, 8, 20, 15, 30, 0, 0, time.Local)

	mockSales := new(mocks.MockSalesRepositoryInterface)
	mockSales.On("FindSummary", mock.Anything, day).Return(nil, nil)
	mockSales.On("ListByDay", mock.Anything, day).Return(daySales(), nil)

	svc := service.NewReportsService(mockSales)
	summary, err := svc.Daily(context.Background(), day)

	assert.NoError(t, err)
	assert.Equal(t, 68000.0, summary.Revenue)
	// COGS: 2*2645 + 1*2160.
	assert.Equal(t, 7450.0, summary.COGS)
	assert.Equal(t, 60550.0, summary.GrossMargin)
	assert.Equal(t, 2, summary.SalesCount)
	assert.Equal(t, 3, summary.CupsSold)
	// Date truncated to midnight.
	assert.Equal(t, 0, summary.Date.Hour())
	assert.Equal(t, day.Day(), summary.Date.Day())
}

func TestReportsService_Daily_ClosedDayFromStorage(t *testing.T) {
	day := time.Date(2026, 8, 19, 9, 0, 0, 0, time.Local)
	stored := &model.DailySummary{Date: day, Revenue: 500000, COGS: 120000}

	mockSales := new(mocks.MockSalesRepositoryInterface)
	mockSales.On("FindSummary", mock.Anything, day).Return(stored, nil)

	svc := service.NewReportsService(mockSales)
	summary, err := svc.Daily(context.Background(), day)

	assert.NoError(t, err)
	assert.Equal(t, stored, summary)
	mockSales.AssertNotCalled(t, "ListByDay", mock.Anything, mock.Anything)
}

func TestReportsService_CloseDay(t *testing.T) {
	day := time.Date(2026, 8, 20, 22, 0, 0, 0, time.Local)

	mockSales := new(mocks.MockSalesRepositoryInterface)
	mockSales.On("ListByDay", mock.Anything, day).Return(daySales(), nil)
	mockSales.On("UpsertSummary", mock.Anything, mock.MatchedBy(func(s *model.DailySummary) bool {
		return s.Revenue == 68000 && s.SalesCount == 2
	})).Return(nil)

	svc := service.NewReportsService(mockSales)
	summary, err := svc.CloseDay(context.Background(), day)

	assert.NoError(t, err)
	assert.Equal(t, 68000.0, summary.Revenue)
	mockSales.AssertExpectations(t)
}

func TestReportsService_CloseDay_EmptyDay(t *testing.T) {
	day := time.Date(2026, 8, 21, 22, 0, 0, 0, time.Local)

	mockSales := new(mocks.MockSalesRepositoryInterface)
	mockSales.On("ListByDay", mock.Anything, day).Return([]model.Sale{}, nil)
	mockSales.On("UpsertSummary", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewReportsService(mockSales)
	summary, err := svc.CloseDay(context.Background(), day)

	assert.NoError(t, err)
	assert.Zero(t, summary.Revenue)
	assert.Zero(t, summary.SalesCount)
}

func TestReportsService_History(t *testing.T) {
	mockSales := new(mocks.MockSalesRepositoryInterface)
	mockSales.On("ListSummaries", mock.Anything, 7).Return([]model.DailySummary{
		{Revenue: 68000}, {Revenue: 120000},
	}, nil)

	svc := service.NewReportsService(mockSales)
	history, err := svc.History(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestReportsService_NoRepository(t *testing.T) {
	svc := service.NewReportsService(nil)

	_, err := svc.Daily(context.Background(), time.Now())
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
}
