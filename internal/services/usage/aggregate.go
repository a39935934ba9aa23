// Package usage aggregates raw app usage intervals into per-app summaries.
package usage

import (
	"math"
	"sort"
	"time"

	"github.com/j-veylop/screentime/internal/models"
)

// group accumulates the intervals of one app identifier.
type group struct {
	id       string
	total    float64
	sessions int
	firstRaw float64
	lastRaw  float64
}

// Aggregate groups intervals by app identifier and returns one summary per
// app with a positive total, sorted by total duration descending. Apps with
// equal totals keep the order in which they were first seen. When limit is
// positive only the first limit summaries are returned.
func Aggregate(intervals []models.UsageInterval, limit int) []models.AppUsageSummary {
	index := make(map[string]int)
	var groups []*group

	for _, u := range intervals {
		if u.AppIdentifier == "" {
			continue
		}
		i, ok := index[u.AppIdentifier]
		if !ok {
			i = len(groups)
			index[u.AppIdentifier] = i
			groups = append(groups, &group{
				id:       u.AppIdentifier,
				firstRaw: u.StartRaw,
				lastRaw:  u.EndRaw,
			})
		}
		g := groups[i]
		g.total += u.Seconds()
		g.sessions++
		g.firstRaw = math.Min(g.firstRaw, u.StartRaw)
		g.lastRaw = math.Max(g.lastRaw, u.EndRaw)
	}

	summaries := make([]models.AppUsageSummary, 0, len(groups))
	for _, g := range groups {
		total := int64(g.total)
		if total <= 0 {
			continue
		}
		summaries = append(summaries, models.AppUsageSummary{
			AppIdentifier:     g.id,
			DisplayName:       g.id,
			TotalSeconds:      total,
			SessionCount:      g.sessions,
			FirstUse:          models.FromKnowledgeTime(g.firstRaw),
			LastUse:           models.FromKnowledgeTime(g.lastRaw),
			FormattedDuration: models.FormatDuration(total),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalSeconds > summaries[j].TotalSeconds
	})

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries
}

// KeepApps returns the intervals that belong to one of apps, in input order.
func KeepApps(intervals []models.UsageInterval, apps []models.AppUsageSummary) []models.UsageInterval {
	kept := make(map[string]struct{}, len(apps))
	for _, app := range apps {
		kept[app.AppIdentifier] = struct{}{}
	}

	out := make([]models.UsageInterval, 0, len(intervals))
	for _, u := range intervals {
		if _, ok := kept[u.AppIdentifier]; ok {
			out = append(out, u)
		}
	}
	return out
}

// HourlyProfile distributes interval time over the 24 local hours of the day
// and returns minutes per hour, rounded to two decimals.
func HourlyProfile(intervals []models.UsageInterval) [24]float64 {
	var seconds [24]float64

	for _, u := range intervals {
		if u.AppIdentifier == "" || u.EndRaw <= u.StartRaw {
			continue
		}
		cur := models.FromKnowledgeTime(u.StartRaw)
		end := models.FromKnowledgeTime(u.EndRaw)
		for cur.Before(end) {
			next := nextHour(cur)
			if next.After(end) {
				next = end
			}
			seconds[cur.Hour()] += next.Sub(cur).Seconds()
			cur = next
		}
	}

	var minutes [24]float64
	for h, s := range seconds {
		minutes[h] = math.Round(s/60*100) / 100
	}
	return minutes
}

// PeakHour returns the hour with the most usage. ok is false when the
// profile is empty.
func PeakHour(profile [24]float64) (hour int, ok bool) {
	best := 0.0
	for h, m := range profile {
		if m > best {
			best = m
			hour = h
		}
	}
	return hour, best > 0
}

func nextHour(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour()+1, 0, 0, 0, t.Location())
}
