package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/j-veylop/screentime/internal/logger"
	"github.com/j-veylop/screentime/internal/models"
)

// UsageIntervals returns the app usage intervals whose start lies inside r,
// in store insertion order.
func (db *DB) UsageIntervals(ctx context.Context, r models.DateRange) ([]models.UsageInterval, error) {
	lo, hi := r.Bounds()

	rows, err := db.QueryContext(ctx, sqlUsageIntervals, usageStream, lo, hi)
	if err != nil {
		return nil, queryError("query usage intervals", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("failed to close rows", "error", err)
		}
	}()

	var intervals []models.UsageInterval
	for rows.Next() {
		var u models.UsageInterval
		var end sql.NullFloat64
		if err := rows.Scan(&u.AppIdentifier, &u.StartRaw, &end); err != nil {
			return nil, queryError("scan usage interval", err)
		}
		// Open intervals have no end yet and contribute nothing.
		u.EndRaw = u.StartRaw
		if end.Valid {
			u.EndRaw = end.Float64
		}
		intervals = append(intervals, u)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("read usage intervals", err)
	}

	logger.Debug("loaded usage intervals",
		"range", r.String(), "count", len(intervals), "path", db.path)

	return intervals, nil
}

// UsageSpan describes how much app usage history the store holds.
type UsageSpan struct {
	First   time.Time
	Last    time.Time
	Records int
}

// UsageSpan returns the first and last recorded app usage starts.
// ok is false when the store holds no usage events.
func (db *DB) UsageSpan(ctx context.Context) (span UsageSpan, ok bool, err error) {
	var first, last sql.NullFloat64
	if err := db.QueryRowContext(ctx, sqlUsageSpan, usageStream).Scan(&first, &last, &span.Records); err != nil {
		return UsageSpan{}, false, queryError("query usage span", err)
	}
	if !first.Valid || !last.Valid {
		return UsageSpan{}, false, nil
	}

	span.First = models.FromKnowledgeTime(first.Float64)
	span.Last = models.FromKnowledgeTime(last.Float64)
	return span, true, nil
}
