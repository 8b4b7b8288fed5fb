package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/mocks"
	"github.com/brewops/cafe-service/internal/service"
)

func catalogFixture() []model.Ingredient {
	return []model.Ingredient{
		{
			ID:           primitive.NewObjectID(),
			Name:         "Arabica beans",
			UnitCost:     120000,
			UnitQuantity: 1000,
			Unit:         "g",
			UsagePerCup:  18,
		},
		{
			ID:           primitive.NewObjectID(),
			Name:         "Fresh milk",
			UnitCost:     48500,
			UnitQuantity: 1000,
			Unit:         "ml",
			UsagePerCup:  10,
		},
	}
}

func TestShoppingService_ShoppingList_Inline(t *testing.T) {
	svc := service.NewShoppingService(nil, nil)
	defer svc.Stop()

	req := dto.ShoppingListRequest{
		DailyTarget: 60,
		Ingredients: []dto.IngredientInput{
			{Name: "Fresh milk", UnitCost: 48500, UnitQuantity: 1000, Unit: "ml", UsagePerCup: 10},
		},
	}

	list, err := svc.ShoppingList(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 60, list.DailyTarget)
	assert.Equal(t, 1, list.ItemCount)
	assert.Equal(t, "Fresh milk", list.Items[0].Name)
	assert.Equal(t, 600.0, list.Items[0].TotalNeeded)
	assert.Equal(t, "600 ml", list.Items[0].Display)
	assert.Equal(t, 29100.0, list.Items[0].TotalCost)
	assert.Equal(t, 29100.0, list.GrandTotal)
}

func TestShoppingService_ShoppingList_InvalidTarget(t *testing.T) {
	svc := service.NewShoppingService(nil, nil)
	defer svc.Stop()

	_, err := svc.ShoppingList(context.Background(), dto.ShoppingListRequest{DailyTarget: 0})
	assert.ErrorIs(t, err, dto.ErrInvalidDailyTarget)
}

func TestShoppingService_ShoppingList_NoRepository(t *testing.T) {
	svc := service.NewShoppingService(nil, nil)
	defer svc.Stop()

	// Catalog-backed request without a configured repository.
	_, err := svc.ShoppingList(context.Background(), dto.ShoppingListRequest{DailyTarget: 60})
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
}

func TestShoppingService_ShoppingList_FromCatalog(t *testing.T) {
	mockRepo := new(mocks.MockIngredientsRepositoryInterface)
	mockRepo.On("List", mock.Anything).Return(catalogFixture(), nil)

	svc := service.NewShoppingService(mockRepo, nil)
	defer svc.Stop()

	list, err := svc.ShoppingList(context.Background(), dto.ShoppingListRequest{DailyTarget: 60})

	assert.NoError(t, err)
	assert.Equal(t, 2, list.ItemCount)
	// Sorted by descending line total: beans cost more than milk.
	assert.Equal(t, "Arabica beans", list.Items[0].Name)
	assert.Equal(t, 129600.0, list.Items[0].TotalCost)
	assert.Equal(t, "Fresh milk", list.Items[1].Name)
	assert.Equal(t, 29100.0, list.Items[1].TotalCost)
	assert.Equal(t, 158700.0, list.GrandTotal)
}

func TestShoppingService_ShoppingList_CachesPerTarget(t *testing.T) {
	mockRepo := new(mocks.MockIngredientsRepositoryInterface)
	mockRepo.On("List", mock.Anything).Return(catalogFixture(), nil)

	svc := service.NewShoppingService(mockRepo, nil)
	defer svc.Stop()

	req := dto.ShoppingListRequest{DailyTarget: 60}

	first, err := svc.ShoppingList(context.Background(), req)
	assert.NoError(t, err)
	second, err := svc.ShoppingList(context.Background(), req)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	mockRepo.AssertNumberOfCalls(t, "List", 1)

	// Invalidation forces a reload.
	svc.InvalidateCache()
	_, err = svc.ShoppingList(context.Background(), req)
	assert.NoError(t, err)
	mockRepo.AssertNumberOfCalls(t, "List", 2)
}

func TestShoppingService_ShoppingList_RepositoryError(t *testing.T) {
	mockRepo := new(mocks.MockIngredientsRepositoryInterface)
	mockRepo.On("List", mock.Anything).Return(nil, errors.New("database error"))

	svc := service.NewShoppingService(mockRepo, nil)
	defer svc.Stop()

	_, err := svc.ShoppingList(context.Background(), dto.ShoppingListRequest{DailyTarget: 60})
	assert.EqualError(t, err, "database error")
}

func TestShoppingService_PurchasePlan_WithOverrides(t *testing.T) {
	catalog := catalogFixture()
	mockRepo := new(mocks.MockIngredientsRepositoryInterface)
	mockRepo.On("List", mock.Anything).Return(catalog, nil)

	svc := service.NewShoppingService(mockRepo, nil)
	defer svc.Stop()

	milkID := catalog[1].ID.Hex()
	req := dto.PurchasePlanRequest{
		DailyTarget: 60,
		OnHand:      map[string]float64{milkID: 200},
	}

	plan, err := svc.PurchasePlan(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 2, plan.ItemCount)

	// Beans: 1080 g needed, nothing on hand, two 1000 g bags.
	assert.Equal(t, "Arabica beans", plan.Items[0].Name)
	assert.Equal(t, 1080.0, plan.Items[0].Deficit)
	assert.Equal(t, 2, plan.Items[0].Units)
	assert.Equal(t, 2000.0, plan.Items[0].BuyQuantity)
	assert.Equal(t, 240000.0, plan.Items[0].BuyCost)

	// Milk: 600 ml needed, 200 on hand, one 1000 ml bottle covers the rest.
	assert.Equal(t, "Fresh milk", plan.Items[1].Name)
	assert.Equal(t, 200.0, plan.Items[1].OnHand)
	assert.Equal(t, 400.0, plan.Items[1].Deficit)
	assert.Equal(t, 1, plan.Items[1].Units)
	assert.Equal(t, 48500.0, plan.Items[1].BuyCost)

	assert.Equal(t, 288500.0, plan.GrandTotal)
}

func TestShoppingService_PurchasePlan_FromLedger(t *testing.T) {
	catalog := catalogFixture()
	mockRepo := new(mocks.MockIngredientsRepositoryInterface)
	mockRepo.On("List", mock.Anything).Return(catalog, nil)

	milkID := catalog[1].ID
	mockStock := new(mocks.MockStockRepositoryInterface)
	mockStock.On("ListAll", mock.Anything).Return([]model.StockMovement{
		{IngredientID: milkID, Type: model.MovementIn, Quantity: 1000},
		{IngredientID: milkID, Type: model.MovementOut, Quantity: 800},
	}, nil)

	svc := service.NewShoppingService(mockRepo, mockStock)
	defer svc.Stop()

	plan, err := svc.PurchasePlan(context.Background(), dto.PurchasePlanRequest{DailyTarget: 60})

	assert.NoError(t, err)
	mockStock.AssertCalled(t, "ListAll", mock.Anything)

	var milk *model.PurchaseItem
	for i := range plan.Items {
		if plan.Items[i].Name == "Fresh milk" {
			milk = &plan.Items[i]
		}
	}
	assert.NotNil(t, milk)
	assert.Equal(t, 200.0, milk.OnHand)
	assert.Equal(t, 400.0, milk.Deficit)
}

func TestShoppingService_PurchasePlan_InvalidTarget(t *testing.T) {
	svc := service.NewShoppingService(nil, nil)
	defer svc.Stop()

	_, err := svc.PurchasePlan(context.Background(), dto.PurchasePlanRequest{DailyTarget: -1})
	assert.ErrorIs(t, err, dto.ErrInvalidDailyTarget)
}
