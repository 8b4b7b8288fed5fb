package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/mocks"
	"github.com/brewops/cafe-service/internal/service"
)

func TestStockService_RecordMovement(t *testing.T) {
	milkID := primitive.NewObjectID()

	tests := []struct {
		name      string
		req       dto.StockMovementRequest
		setupMock func(*mocks.MockStockRepositoryInterface, *mocks.MockIngredientsRepositoryInterface)
		wantErr   string
	}{
		{
			name: "successful in movement",
			req:  dto.StockMovementRequest{IngredientID: milkID.Hex(), Type: "in", Quantity: 1000},
			setupMock: func(s *mocks.MockStockRepositoryInterface, i *mocks.MockIngredientsRepositoryInterface) {
				i.On("FindByID", mock.Anything, milkID).Return(&model.Ingredient{ID: milkID}, nil)
				s.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:      "malformed ingredient id",
			req:       dto.StockMovementRequest{IngredientID: "bad", Type: "in", Quantity: 10},
			setupMock: func(s *mocks.MockStockRepositoryInterface, i *mocks.MockIngredientsRepositoryInterface) {},
			wantErr:   "ingredient_id: invalid ingredient id",
		},
		{
			name:      "unknown movement type",
			req:       dto.StockMovementRequest{IngredientID: milkID.Hex(), Type: "transfer", Quantity: 10},
			setupMock: func(s *mocks.MockStockRepositoryInterface, i *mocks.MockIngredientsRepositoryInterface) {},
			wantErr:   "type: type must be in, out or adjust",
		},
		{
			name:      "negative quantity",
			req:       dto.StockMovementRequest{IngredientID: milkID.Hex(), Type: "in", Quantity: -5},
			setupMock: func(s *mocks.MockStockRepositoryInterface, i *mocks.MockIngredientsRepositoryInterface) {},
			wantErr:   "quantity: quantity must not be negative",
		},
		{
			name: "unknown ingredient",
			req:  dto.StockMovementRequest{IngredientID: milkID.Hex(), Type: "in", Quantity: 10},
			setupMock: func(s *mocks.MockStockRepositoryInterface, i *mocks.MockIngredientsRepositoryInterface) {
				i.On("FindByID", mock.Anything, milkID).Return(nil, nil)
			},
			wantErr: service.ErrNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStock := new(mocks.MockStockRepositoryInterface)
			mockIngredients := new(mocks.MockIngredientsRepositoryInterface)
			tt.setupMock(mockStock, mockIngredients)

			svc := service.NewStockService(mockStock, mockIngredients)
			movement, err := svc.RecordMovement(context.Background(), tt.req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.req.Type, movement.Type)
			assert.Equal(t, tt.req.Quantity, movement.Quantity)
			mockStock.AssertExpectations(t)
		})
	}
}

func TestStockService_Levels(t *testing.T) {
	milkID := primitive.NewObjectID()
	beansID := primitive.NewObjectID()

	mockStock := new(mocks.MockStockRepositoryInterface)
	mockStock.On("ListAll", mock.Anything).Return([]model.StockMovement{
		{IngredientID: milkID, Type: model.MovementIn, Quantity: 1000},
		{IngredientID: beansID, Type: model.MovementIn, Quantity: 500},
		{IngredientID: milkID, Type: model.MovementOut, Quantity: 300},
		{IngredientID: beansID, Type: model.MovementAdjust, Quantity: 450},
	}, nil)

	mockIngredients := new(mocks.MockIngredientsRepositoryInterface)
	mockIngredients.On("FindByID", mock.Anything, milkID).
		Return(&model.Ingredient{ID: milkID, Name: "Fresh milk", Unit: "ml"}, nil)
	mockIngredients.On("FindByID", mock.Anything, beansID).
		Return(&model.Ingredient{ID: beansID, Name: "Arabica beans", Unit: "g"}, nil)

	svc := service.NewStockService(mockStock, mockIngredients)
	levels, err := svc.Levels(context.Background())

	assert.NoError(t, err)
	assert.Len(t, levels, 2)
	assert.Equal(t, "Fresh milk", levels[0].Name)
	assert.Equal(t, 700.0, levels[0].OnHand)
	assert.Equal(t, "Arabica beans", levels[1].Name)
	assert.Equal(t, 450.0, levels[1].OnHand)
}

func TestStockService_LowStock(t *testing.T) {
	milkID := primitive.NewObjectID()
	beansID := primitive.NewObjectID()

	mockIngredients := new(mocks.MockIngredientsRepositoryInterface)
	mockIngredients.On("List", mock.Anything).Return([]model.Ingredient{
		{ID: milkID, Name: "Fresh milk", Unit: "ml", UsagePerCup: 10},
		{ID: beansID, Name: "Arabica beans", Unit: "g", UsagePerCup: 18},
	}, nil)
	mockIngredients.On("FindByID", mock.Anything, milkID).
		Return(&model.Ingredient{ID: milkID, Name: "Fresh milk", Unit: "ml"}, nil)

	// Only milk has ledger entries; beans count as zero stock.
	mockStock := new(mocks.MockStockRepositoryInterface)
	mockStock.On("ListAll", mock.Anything).Return([]model.StockMovement{
		{IngredientID: milkID, Type: model.MovementIn, Quantity: 1000},
	}, nil)

	svc := service.NewStockService(mockStock, mockIngredients)
	items, err := svc.LowStock(context.Background(), 60)

	assert.NoError(t, err)
	// Milk: 600 needed, 1000 on hand, covered. Beans: 1080 needed, 0 on hand.
	assert.Len(t, items, 1)
	assert.Equal(t, "Arabica beans", items[0].Name)
	assert.Equal(t, 1080.0, items[0].Needed)
	assert.Equal(t, 1080.0, items[0].Deficit)
	assert.Zero(t, items[0].OnHand)
}

func TestStockService_LowStock_InvalidTarget(t *testing.T) {
	svc := service.NewStockService(new(mocks.MockStockRepositoryInterface), new(mocks.MockIngredientsRepositoryInterface))

	_, err := svc.LowStock(context.Background(), 0)
	assert.ErrorIs(t, err, dto.ErrInvalidDailyTarget)
}
