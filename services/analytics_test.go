package services

import (
	"testing"
	"time"

	"github.com/Rabsxd/water-reminder-app-sub001/models"
)

func histDay(y int, m time.Month, d, total, target int) models.HistorySummary {
	return models.HistorySummary{
		Date:          time.Date(y, m, d, 0, 0, 0, 0, time.Local),
		TotalIntakeMl: total,
		TargetMl:      target,
		Completed:     total >= target,
	}
}

func TestCompletionRatio(t *testing.T) {
	tests := []struct {
		name           string
		intake, target int
		want           float64
	}{
		{"zero intake", 0, 2000, 0},
		{"partial", 750, 2000, 0.375},
		{"exact", 2000, 2000, 1},
		{"over target caps at 1", 2600, 2000, 1},
		{"zero target", 500, 0, 0},
		{"negative target", 500, -100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionRatio(tt.intake, tt.target); got != tt.want {
				t.Errorf("CompletionRatio(%d, %d) = %v, want %v", tt.intake, tt.target, got, tt.want)
			}
		})
	}
}

func TestGoalCompleted(t *testing.T) {
	if GoalCompleted(1999, 2000) {
		t.Error("1999/2000 should not be completed")
	}
	if !GoalCompleted(2000, 2000) {
		t.Error("2000/2000 should be completed")
	}
	if !GoalCompleted(2050, 2000) {
		t.Error("intake over target should be completed")
	}
}

func TestPeriodStats(t *testing.T) {
	mon := time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local) // Monday

	history := []models.HistorySummary{
		histDay(2025, 3, 6, 2100, 2000), // in window, completed
		histDay(2025, 3, 5, 1500, 2000), // in window, not completed
		histDay(2025, 3, 4, 2000, 2000), // in window, completed
		histDay(2025, 3, 1, 3000, 2000), // before window, ignored
	}

	got := PeriodStats(history, mon)
	want := PeriodSummary{
		AverageMl:      1867, // round(5600/3)
		TotalMl:        5600,
		DaysCompleted:  2,
		DaysTotal:      3,
		CompletionRate: 67, // round(100*2/3)
	}
	if got != want {
		t.Errorf("PeriodStats = %+v, want %+v", got, want)
	}
}

func TestPeriodStatsEmptyWindow(t *testing.T) {
	history := []models.HistorySummary{
		histDay(2025, 2, 1, 2000, 2000),
	}
	got := PeriodStats(history, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local))
	if got != (PeriodSummary{}) {
		t.Errorf("empty window should yield the zero summary, got %+v", got)
	}

	if got := PeriodStats(nil, time.Now()); got != (PeriodSummary{}) {
		t.Errorf("nil history should yield the zero summary, got %+v", got)
	}
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name    string
		history []models.HistorySummary
		want    int
	}{
		{"empty history", nil, 0},
		{
			"most recent day not completed",
			[]models.HistorySummary{
				histDay(2025, 3, 3, 1000, 2000),
				histDay(2025, 3, 2, 2000, 2000),
				histDay(2025, 3, 1, 2000, 2000),
			},
			0,
		},
		{
			"two consecutive completed days",
			[]models.HistorySummary{
				histDay(2025, 3, 2, 2000, 2000),
				histDay(2025, 3, 1, 2200, 2000),
			},
			2,
		},
		{
			"gap breaks the chain",
			[]models.HistorySummary{
				histDay(2025, 3, 5, 2000, 2000),
				histDay(2025, 3, 4, 2000, 2000),
				// March 3rd missing
				histDay(2025, 3, 2, 2000, 2000),
				histDay(2025, 3, 1, 2000, 2000),
			},
			2,
		},
		{
			"uncompleted day in the middle stops the walk",
			[]models.HistorySummary{
				histDay(2025, 3, 4, 2000, 2000),
				histDay(2025, 3, 3, 500, 2000),
				histDay(2025, 3, 2, 2000, 2000),
			},
			1,
		},
		{
			"unsorted input is handled",
			[]models.HistorySummary{
				histDay(2025, 3, 1, 2000, 2000),
				histDay(2025, 3, 3, 2000, 2000),
				histDay(2025, 3, 2, 2000, 2000),
			},
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreak(tt.history); got != tt.want {
				t.Errorf("CurrentStreak = %d, want %d", got, tt.want)
			}
		})
	}
}
