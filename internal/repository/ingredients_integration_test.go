//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/model"
)

func TestIngredientsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewIngredientsRepository(db)

	milk := &model.Ingredient{
		Name:         "Fresh milk",
		UnitCost:     48500,
		UnitQuantity: 1000,
		Unit:         "ml",
		UsagePerCup:  10,
		CostPerCup:   485,
	}

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, milk))
		assert.False(t, milk.ID.IsZero())
		assert.False(t, milk.CreatedAt.IsZero())
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, milk.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Fresh milk", found.Name)
		assert.Equal(t, float64(48500), found.UnitCost)
	})

	t.Run("find by id when absent", func(t *testing.T) {
		found, err := repo.FindByID(ctx, primitive.NewObjectID())
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("find by name", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "Fresh milk")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, milk.ID, found.ID)

		found, err = repo.FindByName(ctx, "Oat milk")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("list sorted by name", func(t *testing.T) {
		beans := &model.Ingredient{
			Name:         "Arabica beans",
			UnitCost:     120000,
			UnitQuantity: 1000,
			Unit:         "g",
			UsagePerCup:  18,
		}
		require.NoError(t, repo.Create(ctx, beans))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Arabica beans", list[0].Name)
		assert.Equal(t, "Fresh milk", list[1].Name)
	})

	t.Run("update replaces mutable fields", func(t *testing.T) {
		milk.UnitCost = 52000
		milk.CostPerCup = 520

		updated, err := repo.Update(ctx, milk.ID, milk)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, float64(52000), updated.UnitCost)
	})

	t.Run("update unknown id returns nil", func(t *testing.T) {
		updated, err := repo.Update(ctx, primitive.NewObjectID(), milk)
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("update cost only touches pricing", func(t *testing.T) {
		require.NoError(t, repo.UpdateCost(ctx, milk.ID, 50000, 1000, 500))

		found, err := repo.FindByID(ctx, milk.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(50000), found.UnitCost)
		assert.Equal(t, float64(500), found.CostPerCup)
		assert.Equal(t, float64(10), found.UsagePerCup)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, milk.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, milk.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
