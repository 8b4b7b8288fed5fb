package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/circuitbreaker"
	"github.com/brewops/cafe-service/internal/domain/model"
)

// openBreaker returns a circuit breaker forced into the open state.
func openBreaker(t *testing.T) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test",
	})
	_ = cb.Execute(context.Background(), func() error {
		return errors.New("forced failure")
	})
	assert.True(t, cb.IsOpen())
	return cb
}

func TestIngredientsWrapper_OpenCircuitDegradesReads(t *testing.T) {
	// With an open circuit the wrapped repository is never touched, so a nil
	// repository is safe here.
	repo := NewIngredientsRepositoryWithCircuitBreaker(nil, openBreaker(t))
	ctx := context.Background()

	ing, err := repo.FindByID(ctx, primitive.NewObjectID())
	assert.NoError(t, err)
	assert.Nil(t, ing)

	ing, err = repo.FindByName(ctx, "Fresh milk")
	assert.NoError(t, err)
	assert.Nil(t, ing)
}

func TestIngredientsWrapper_OpenCircuitRejectsWrites(t *testing.T) {
	repo := NewIngredientsRepositoryWithCircuitBreaker(nil, openBreaker(t))
	ctx := context.Background()

	err := repo.Create(ctx, &model.Ingredient{Name: "Fresh milk"})
	assert.Equal(t, circuitbreaker.ErrCircuitOpen, err)

	_, err = repo.List(ctx)
	assert.Equal(t, circuitbreaker.ErrCircuitOpen, err)

	err = repo.UpdateCost(ctx, primitive.NewObjectID(), 52000, 1000, 520)
	assert.Equal(t, circuitbreaker.ErrCircuitOpen, err)
}

func TestLogsWrapper_OpenCircuitDropsWrites(t *testing.T) {
	repo := NewLogsRepositoryWithCircuitBreaker(nil, openBreaker(t))
	ctx := context.Background()

	// Log writes are non-critical and fail silently.
	assert.NoError(t, repo.Create(ctx, &model.LogEntry{Message: "HTTP request"}))
	assert.NoError(t, repo.CreateMany(ctx, []*model.LogEntry{{Message: "HTTP request"}}))
}

func TestLogsWrapper_OpenCircuitRejectsReads(t *testing.T) {
	repo := NewLogsRepositoryWithCircuitBreaker(nil, openBreaker(t))
	ctx := context.Background()

	_, err := repo.Query(ctx, model.LogQueryOptions{})
	assert.Equal(t, circuitbreaker.ErrCircuitOpen, err)

	_, err = repo.Count(ctx, model.LogQueryOptions{})
	assert.Equal(t, circuitbreaker.ErrCircuitOpen, err)
}

func TestWrappers_ExposeCircuitBreaker(t *testing.T) {
	cb := openBreaker(t)

	ingredients := NewIngredientsRepositoryWithCircuitBreaker(nil, cb)
	logs := NewLogsRepositoryWithCircuitBreaker(nil, cb)

	assert.Same(t, cb, ingredients.GetCircuitBreaker())
	assert.Same(t, cb, logs.GetCircuitBreaker())
}
