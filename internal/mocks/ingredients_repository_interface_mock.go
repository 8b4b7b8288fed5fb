// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/model"
)

type MockIngredientsRepositoryInterface struct {
	mock.Mock
}

func (m *MockIngredientsRepositoryInterface) Create(ctx context.Context, ing *model.Ingredient) error {
	args := m.Called(ctx, ing)
	return args.Error(0)
}

func (m *MockIngredientsRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

func (m *MockIngredientsRepositoryInterface) FindByName(ctx context.Context, name string) (*model.Ingredient, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

func (m *MockIngredientsRepositoryInterface) List(ctx context.Context) ([]model.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

func (m *MockIngredientsRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, ing *model.Ingredient) (*model.Ingredient, error) {
	args := m.Called(ctx, id, ing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

func (m *MockIngredientsRepositoryInterface) UpdateCost(ctx context.Context, id primitive.ObjectID, unitCost, unitQuantity, costPerCup float64) error {
	args := m.Called(ctx, id, unitCost, unitQuantity, costPerCup)
	return args.Error(0)
}

func (m *MockIngredientsRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
