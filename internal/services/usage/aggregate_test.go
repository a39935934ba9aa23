package usage

import (
	"math/rand"
	"testing"
	"time"

	"github.com/j-veylop/screentime/internal/models"
)

func interval(id string, start, seconds float64) models.UsageInterval {
	return models.UsageInterval{AppIdentifier: id, StartRaw: start, EndRaw: start + seconds}
}

func TestAggregate_Sums(t *testing.T) {
	intervals := []models.UsageInterval{
		interval("com.apple.Safari", 1000, 600),
		interval("com.apple.mail", 1200, 120),
		interval("com.apple.Safari", 2000, 300),
		interval("com.apple.Safari", 500, 60),
	}

	got := Aggregate(intervals, 0)
	if len(got) != 2 {
		t.Fatalf("Aggregate() returned %d summaries, want 2", len(got))
	}

	safari := got[0]
	if safari.AppIdentifier != "com.apple.Safari" {
		t.Fatalf("first summary = %q, want Safari", safari.AppIdentifier)
	}
	if safari.TotalSeconds != 960 {
		t.Errorf("TotalSeconds = %d, want 960", safari.TotalSeconds)
	}
	if safari.SessionCount != 3 {
		t.Errorf("SessionCount = %d, want 3", safari.SessionCount)
	}
	if !safari.FirstUse.Equal(models.FromKnowledgeTime(500)) {
		t.Errorf("FirstUse = %v, want raw 500", safari.FirstUse)
	}
	if !safari.LastUse.Equal(models.FromKnowledgeTime(2300)) {
		t.Errorf("LastUse = %v, want raw 2300", safari.LastUse)
	}
	if safari.FormattedDuration != "16m 0s" {
		t.Errorf("FormattedDuration = %q, want %q", safari.FormattedDuration, "16m 0s")
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	var intervals []models.UsageInterval
	want := map[string]int64{}
	for i := 0; i < 50; i++ {
		id := []string{"a", "b", "c"}[i%3]
		secs := float64(10 + i*7)
		intervals = append(intervals, interval(id, float64(i*1000), secs))
		want[id] += int64(secs)
	}

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]models.UsageInterval(nil), intervals...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := Aggregate(shuffled, 0)
		if len(got) != len(want) {
			t.Fatalf("trial %d: %d summaries, want %d", trial, len(got), len(want))
		}
		for _, s := range got {
			if s.TotalSeconds != want[s.AppIdentifier] {
				t.Errorf("trial %d: %s total = %d, want %d", trial, s.AppIdentifier, s.TotalSeconds, want[s.AppIdentifier])
			}
		}
	}
}

func TestAggregate_StableDescending(t *testing.T) {
	intervals := []models.UsageInterval{
		interval("hundred", 0, 100),
		interval("first300", 0, 300),
		interval("second300", 0, 300),
		interval("fifty", 0, 50),
	}

	got := Aggregate(intervals, 0)
	want := []string{"first300", "second300", "hundred", "fifty"}
	if len(got) != len(want) {
		t.Fatalf("Aggregate() returned %d summaries, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].AppIdentifier != id {
			t.Errorf("position %d = %q, want %q", i, got[i].AppIdentifier, id)
		}
	}
}

func TestAggregate_Limit(t *testing.T) {
	intervals := []models.UsageInterval{
		interval("a", 0, 100),
		interval("b", 0, 300),
		interval("c", 0, 300),
		interval("d", 0, 50),
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"NoLimit", 0, []string{"b", "c", "a", "d"}},
		{"TieAtCut", 1, []string{"b"}},
		{"Two", 2, []string{"b", "c"}},
		{"Larger", 10, []string{"b", "c", "a", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(intervals, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].AppIdentifier != id {
					t.Errorf("position %d = %q, want %q", i, got[i].AppIdentifier, id)
				}
			}
		})
	}
}

func TestAggregate_DropsNonPositive(t *testing.T) {
	intervals := []models.UsageInterval{
		interval("zero", 100, 0),
		interval("negative", 100, -50),
		{AppIdentifier: "mixed", StartRaw: 100, EndRaw: 50},
		interval("mixed", 200, 20),
		interval("subsecond", 100, 0.4),
		interval("", 0, 500),
		interval("ok", 0, 1),
	}

	got := Aggregate(intervals, 0)
	if len(got) != 1 || got[0].AppIdentifier != "ok" {
		t.Fatalf("Aggregate() = %+v, want only 'ok'", got)
	}
}

func TestAggregate_FractionalSeconds(t *testing.T) {
	intervals := []models.UsageInterval{
		interval("a", 0, 0.6),
		interval("a", 10, 0.6),
	}
	got := Aggregate(intervals, 0)
	if len(got) != 1 || got[0].TotalSeconds != 1 {
		t.Fatalf("Aggregate() = %+v, want a single 1s summary", got)
	}
}

func TestAggregate_Empty(t *testing.T) {
	if got := Aggregate(nil, 5); len(got) != 0 {
		t.Errorf("Aggregate(nil) = %+v, want empty", got)
	}
}

func TestHourlyProfile(t *testing.T) {
	base := time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)
	raw := models.ToKnowledgeTime(base)

	intervals := []models.UsageInterval{
		// 09:30 - 10:15 spans two hours.
		interval("a", raw, 45*60),
		// 09:40 - 09:50
		interval("b", raw+600, 600),
		// Ignored.
		interval("", raw, 3600),
		interval("c", raw, -10),
	}

	got := HourlyProfile(intervals)
	if got[9] != 40 {
		t.Errorf("hour 9 = %v minutes, want 40", got[9])
	}
	if got[10] != 15 {
		t.Errorf("hour 10 = %v minutes, want 15", got[10])
	}

	hour, ok := PeakHour(got)
	if !ok || hour != 9 {
		t.Errorf("PeakHour() = %d, %v; want 9, true", hour, ok)
	}
}

func TestPeakHour_Empty(t *testing.T) {
	if _, ok := PeakHour([24]float64{}); ok {
		t.Error("PeakHour() on an empty profile should not be ok")
	}
}

func TestKeepApps(t *testing.T) {
	intervals := []models.UsageInterval{
		interval("a", 0, 60),
		interval("b", 100, 60),
		interval("a", 200, 60),
		interval("c", 300, 60),
	}
	apps := Aggregate(intervals, 1)

	got := KeepApps(intervals, apps)
	if len(got) != 2 {
		t.Fatalf("len(KeepApps()) = %d, want 2", len(got))
	}
	for _, u := range got {
		if u.AppIdentifier != "a" {
			t.Errorf("unexpected interval for %q", u.AppIdentifier)
		}
	}

	if got := KeepApps(intervals, nil); len(got) != 0 {
		t.Errorf("KeepApps(nil apps) = %d intervals, want 0", len(got))
	}
}
