// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/model"
)

type MockStockRepositoryInterface struct {
	mock.Mock
}

func (m *MockStockRepositoryInterface) Create(ctx context.Context, movement *model.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockRepositoryInterface) ListByIngredient(ctx context.Context, ingredientID primitive.ObjectID) ([]model.StockMovement, error) {
	args := m.Called(ctx, ingredientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StockMovement), args.Error(1)
}

func (m *MockStockRepositoryInterface) ListAll(ctx context.Context) ([]model.StockMovement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StockMovement), args.Error(1)
}
