package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/circuitbreaker"
	"github.com/brewops/cafe-service/internal/domain/model"
)

// IngredientsRepositoryWithCircuitBreaker wraps IngredientsRepository with
// circuit breaker protection. Read paths degrade to (nil, nil) when the
// circuit is open so costing endpoints can fall back to request-supplied
// ingredient data.
type IngredientsRepositoryWithCircuitBreaker struct {
	repo           *IngredientsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewIngredientsRepositoryWithCircuitBreaker creates a new repository wrapper.
func NewIngredientsRepositoryWithCircuitBreaker(repo *IngredientsRepository, cb *circuitbreaker.CircuitBreaker) *IngredientsRepositoryWithCircuitBreaker {
	return &IngredientsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts an ingredient with circuit breaker protection.
func (r *IngredientsRepositoryWithCircuitBreaker) Create(ctx context.Context, ing *model.Ingredient) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, ing)
	})
}

// FindByID finds an ingredient with circuit breaker protection.
func (r *IngredientsRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error) {
	var result *model.Ingredient
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// FindByName finds an ingredient by name with circuit breaker protection.
func (r *IngredientsRepositoryWithCircuitBreaker) FindByName(ctx context.Context, name string) (*model.Ingredient, error) {
	var result *model.Ingredient
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByName(ctx, name)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// List returns all ingredients with circuit breaker protection.
func (r *IngredientsRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Ingredient, error) {
	var result []model.Ingredient
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// Update updates an ingredient with circuit breaker protection.
func (r *IngredientsRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, ing *model.Ingredient) (*model.Ingredient, error) {
	var result *model.Ingredient
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, ing)
		return cbErr
	})
	return result, err
}

// UpdateCost updates pricing fields with circuit breaker protection.
func (r *IngredientsRepositoryWithCircuitBreaker) UpdateCost(ctx context.Context, id primitive.ObjectID, unitCost, unitQuantity, costPerCup float64) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.UpdateCost(ctx, id, unitCost, unitQuantity, costPerCup)
	})
}

// Delete removes an ingredient with circuit breaker protection.
func (r *IngredientsRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	var result bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Delete(ctx, id)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *IngredientsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker
// protection. Writes fail silently when the circuit is open since logging is
// non-critical.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	var result []*model.LogEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

var _ IngredientsRepositoryInterface = (*IngredientsRepositoryWithCircuitBreaker)(nil)
var _ LogsRepositoryInterface = (*LogsRepositoryWithCircuitBreaker)(nil)
