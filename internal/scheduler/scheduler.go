// Package scheduler runs recurring background jobs: the nightly daily close,
// token cleanup and optional price feed imports.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/brewops/cafe-service/internal/repository"
	"github.com/brewops/cafe-service/internal/service"
)

// Config holds cron expressions for the background jobs. Empty expressions
// disable the corresponding job.
type Config struct {
	// DailyCloseSpec closes the previous day's books, e.g. "5 0 * * *"
	// (00:05 local time).
	DailyCloseSpec string
	// TokenCleanupSpec purges expired tokens, e.g. "0 3 * * *".
	TokenCleanupSpec string
	// PriceFeedSpec imports supplier prices, e.g. "0 6 * * 1".
	PriceFeedSpec string
	// JobTimeout bounds each job run.
	JobTimeout time.Duration
}

// DefaultConfig returns the standard job schedule.
func DefaultConfig() Config {
	return Config{
		DailyCloseSpec:   "5 0 * * *",
		TokenCleanupSpec: "0 3 * * *",
		PriceFeedSpec:    "",
		JobTimeout:       2 * time.Minute,
	}
}

// Scheduler wires services into cron jobs.
type Scheduler struct {
	cron      *cron.Cron
	cfg       Config
	reports   service.ReportsService
	priceFeed service.PriceFeedService
	tokens    repository.TokensRepositoryInterface
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithPriceFeed enables the recurring price feed import.
func WithPriceFeed(priceFeed service.PriceFeedService) Option {
	return func(s *Scheduler) {
		s.priceFeed = priceFeed
	}
}

// WithTokenCleanup enables the expired token purge.
func WithTokenCleanup(tokens repository.TokensRepositoryInterface) Option {
	return func(s *Scheduler) {
		s.tokens = tokens
	}
}

// New creates a scheduler. Jobs are registered in Start.
func New(cfg Config, reports service.ReportsService, opts ...Option) *Scheduler {
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 2 * time.Minute
	}
	s := &Scheduler{
		cron:    cron.New(),
		cfg:     cfg,
		reports: reports,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start registers the configured jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if s.cfg.DailyCloseSpec != "" && s.reports != nil {
		if _, err := s.cron.AddFunc(s.cfg.DailyCloseSpec, s.runDailyClose); err != nil {
			return err
		}
	}
	if s.cfg.TokenCleanupSpec != "" && s.tokens != nil {
		if _, err := s.cron.AddFunc(s.cfg.TokenCleanupSpec, s.runTokenCleanup); err != nil {
			return err
		}
	}
	if s.cfg.PriceFeedSpec != "" && s.priceFeed != nil {
		if _, err := s.cron.AddFunc(s.cfg.PriceFeedSpec, s.runPriceFeedImport); err != nil {
			return err
		}
	}

	s.cron.Start()
	log.Info().Msg("Scheduler started")
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("Scheduler stopped")
}

// runDailyClose persists yesterday's summary.
func (s *Scheduler) runDailyClose() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.JobTimeout)
	defer cancel()

	yesterday := time.Now().AddDate(0, 0, -1)
	if _, err := s.reports.CloseDay(ctx, yesterday); err != nil {
		log.Error().Err(err).Msg("Daily close failed")
	}
}

func (s *Scheduler) runTokenCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.JobTimeout)
	defer cancel()

	if err := s.tokens.CleanupExpired(ctx); err != nil {
		log.Error().Err(err).Msg("Token cleanup failed")
	}
}

func (s *Scheduler) runPriceFeedImport() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.JobTimeout)
	defer cancel()

	if _, err := s.priceFeed.Import(ctx); err != nil {
		log.Error().Err(err).Msg("Price feed import failed")
	}
}
