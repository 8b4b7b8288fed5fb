package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/repository"
)

// ReportsService aggregates sales into daily accounting summaries.
type ReportsService interface {
	// Daily returns the summary for the calendar day of t. Closed days come
	// from storage; open days are computed from the live sales.
	Daily(ctx context.Context, t time.Time) (*model.DailySummary, error)
	// CloseDay computes and persists the summary for the calendar day of t.
	// Re-closing a day overwrites the stored summary, so late corrections
	// are safe.
	CloseDay(ctx context.Context, t time.Time) (*model.DailySummary, error)
	// History returns the most recent stored summaries, newest first.
	History(ctx context.Context, limit int) ([]model.DailySummary, error)
}

// ReportsServiceImpl implements ReportsService.
type ReportsServiceImpl struct {
	salesRepo repository.SalesRepositoryInterface
}

// NewReportsService creates a new reports service.
func NewReportsService(salesRepo repository.SalesRepositoryInterface) ReportsService {
	return &ReportsServiceImpl{salesRepo: salesRepo}
}

// Daily returns the summary for the calendar day of t.
func (s *ReportsServiceImpl) Daily(ctx context.Context, t time.Time) (*model.DailySummary, error) {
	if s.salesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	stored, err := s.salesRepo.FindSummary(ctx, t)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return stored, nil
	}

	return s.summarize(ctx, t)
}

// CloseDay computes and persists the summary for the calendar day of t.
func (s *ReportsServiceImpl) CloseDay(ctx context.Context, t time.Time) (*model.DailySummary, error) {
	if s.salesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	summary, err := s.summarize(ctx, t)
	if err != nil {
		return nil, err
	}
	if err := s.salesRepo.UpsertSummary(ctx, summary); err != nil {
		return nil, err
	}

	log.Info().
		Time("date", summary.Date).
		Float64("revenue", summary.Revenue).
		Float64("cogs", summary.COGS).
		Int("sales", summary.SalesCount).
		Msg("Daily close completed")
	return summary, nil
}

// History returns the most recent stored summaries.
func (s *ReportsServiceImpl) History(ctx context.Context, limit int) ([]model.DailySummary, error) {
	if s.salesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.salesRepo.ListSummaries(ctx, limit)
}

// summarize folds one day of sales into a summary. Revenue and COGS stay in
// whole rupiah since every line total already is.
func (s *ReportsServiceImpl) summarize(ctx context.Context, t time.Time) (*model.DailySummary, error) {
	sales, err := s.salesRepo.ListByDay(ctx, t)
	if err != nil {
		return nil, err
	}

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	summary := &model.DailySummary{
		Date:       day,
		SalesCount: len(sales),
	}
	for _, sale := range sales {
		summary.Revenue += sale.Total
		summary.COGS += math.Round(sale.UnitCost * float64(sale.Quantity))
		summary.CupsSold += sale.Quantity
	}
	summary.GrossMargin = summary.Revenue - summary.COGS
	return summary, nil
}
