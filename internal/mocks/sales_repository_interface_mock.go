// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/brewops/cafe-service/internal/domain/model"
)

type MockSalesRepositoryInterface struct {
	mock.Mock
}

func (m *MockSalesRepositoryInterface) Create(ctx context.Context, s *model.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSalesRepositoryInterface) ListByDay(ctx context.Context, t time.Time) ([]model.Sale, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sale), args.Error(1)
}

func (m *MockSalesRepositoryInterface) UpsertSummary(ctx context.Context, s *model.DailySummary) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSalesRepositoryInterface) FindSummary(ctx context.Context, t time.Time) (*model.DailySummary, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DailySummary), args.Error(1)
}

func (m *MockSalesRepositoryInterface) ListSummaries(ctx context.Context, limit int) ([]model.DailySummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DailySummary), args.Error(1)
}
