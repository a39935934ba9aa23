// Package report builds screen time reports from the Knowledge store.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/j-veylop/screentime/internal/db"
	"github.com/j-veylop/screentime/internal/logger"
	"github.com/j-veylop/screentime/internal/models"
	"github.com/j-veylop/screentime/internal/services/usage"
)

// IntervalStore is an open connection that can list usage intervals.
type IntervalStore interface {
	UsageIntervals(ctx context.Context, r models.DateRange) ([]models.UsageInterval, error)
	Close() error
}

// OpenFunc opens a store for a single reporting call.
type OpenFunc func(ctx context.Context) (IntervalStore, error)

// OpenKnowledgeStore returns an OpenFunc for the Knowledge store at path.
func OpenKnowledgeStore(path string) OpenFunc {
	return func(ctx context.Context) (IntervalStore, error) {
		store, err := db.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

// NameResolver maps an app identifier to a display name.
type NameResolver interface {
	Resolve(ctx context.Context, identifier string) string
}

// Builder assembles reports.
type Builder struct {
	open  OpenFunc
	names NameResolver
	now   func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock overrides the clock used to resolve relative date filters.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder creates a report builder.
func NewBuilder(open OpenFunc, names NameResolver, opts ...Option) *Builder {
	b := &Builder{
		open:  open,
		names: names,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build produces the report for a date filter token. A positive limit keeps
// only the top apps; totals cover the apps that are kept.
func (b *Builder) Build(ctx context.Context, token string, limit int) (*models.Report, error) {
	if limit < 0 {
		return nil, fmt.Errorf("limit must not be negative, got %d", limit)
	}

	now := b.now()
	dateRange, err := models.ResolveDateRange(token, now)
	if err != nil {
		return nil, err
	}

	intervals, err := b.loadIntervals(ctx, dateRange)
	if err != nil {
		return nil, err
	}

	apps := usage.Aggregate(intervals, limit)
	for i := range apps {
		if b.names != nil {
			apps[i].DisplayName = b.names.Resolve(ctx, apps[i].AppIdentifier)
		}
	}

	report := &models.Report{
		DateFilter:  dateRange.Token,
		Range:       dateRange,
		GeneratedAt: now,
		Totals:      models.ComputeTotals(apps),
		Apps:        apps,
		Hourly:      usage.HourlyProfile(usage.KeepApps(intervals, apps)),
	}

	logger.Debug("built report",
		"filter", report.DateFilter,
		"range", dateRange.String(),
		"intervals", len(intervals),
		"apps", len(apps),
		"total", report.Totals.FormattedDuration)

	return report, nil
}

// loadIntervals opens the store, reads the range and always closes the store.
func (b *Builder) loadIntervals(ctx context.Context, r models.DateRange) (intervals []models.UsageInterval, err error) {
	store, err := b.open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("failed to close database", "error", closeErr)
		}
	}()

	return store.UsageIntervals(ctx, r)
}
