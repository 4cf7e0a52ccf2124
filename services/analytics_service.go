package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/Rabsxd/water-reminder-app-sub001/models"
	"github.com/Rabsxd/water-reminder-app-sub001/utils"

	"gorm.io/gorm"
)

// ---------- Pure helpers ----------

// CompletionRatio is intake/target capped at 1, exact (no rounding — callers
// that want a percentage multiply and round at the presentation boundary).
// A non-positive target yields 0.
func CompletionRatio(intakeMl, targetMl int) float64 {
	if targetMl <= 0 {
		return 0
	}
	r := float64(intakeMl) / float64(targetMl)
	if r > 1 {
		return 1
	}
	return r
}

// GoalCompleted is the single completion predicate used everywhere:
// the full target, not a fraction of it.
func GoalCompleted(intakeMl, targetMl int) bool {
	return intakeMl >= targetMl
}

// PeriodSummary aggregates finalized days from a period start onwards.
type PeriodSummary struct {
	AverageMl      int `json:"average_ml"`
	TotalMl        int `json:"total_ml"`
	DaysCompleted  int `json:"days_completed"`
	DaysTotal      int `json:"days_total"`
	CompletionRate int `json:"completion_rate"` // percent, rounded
}

// PeriodStats filters history to days on or after periodStart and averages
// them. An empty window returns the zero summary rather than dividing by
// zero. periodStart comes from the caller (start of week, start of month);
// no calendar knowledge lives here.
func PeriodStats(history []models.HistorySummary, periodStart time.Time) PeriodSummary {
	start := utils.DayStart(periodStart)

	var out PeriodSummary
	for _, h := range history {
		if utils.DayStart(h.Date).Before(start) {
			continue
		}
		out.DaysTotal++
		out.TotalMl += h.TotalIntakeMl
		if h.Completed {
			out.DaysCompleted++
		}
	}
	if out.DaysTotal == 0 {
		return out
	}
	out.AverageMl = int(math.Round(float64(out.TotalMl) / float64(out.DaysTotal)))
	out.CompletionRate = int(math.Round(100 * float64(out.DaysCompleted) / float64(out.DaysTotal)))
	return out
}

// CurrentStreak counts consecutive completed days walking backwards from the
// most recent finalized summary. A missing date breaks the chain, as does
// the first uncompleted day. The live "today" record never counts; only
// archived days can extend a streak.
func CurrentStreak(history []models.HistorySummary) int {
	if len(history) == 0 {
		return 0
	}

	sorted := make([]models.HistorySummary, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	streak := 0
	for i, h := range sorted {
		if !h.Completed {
			break
		}
		if i > 0 && utils.DaysElapsed(h.Date, sorted[i-1].Date) != 1 {
			break // gap: a skipped day ends the chain
		}
		streak++
	}
	return streak
}

// ---------- DB-backed service ----------

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// History returns finalized summaries newest-first for display.
func (s *AnalyticsService) History(userID uint) ([]models.HistorySummary, error) {
	var history []models.HistorySummary
	err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&history).Error
	return history, err
}

type SummaryResponse struct {
	Period      string        `json:"period"`
	PeriodStart string        `json:"period_start"`
	Stats       PeriodSummary `json:"stats"`
}

// Summary computes week or month aggregates ending at now. The week starts
// on Monday, the month on its first day — the calendar choice is made here,
// at the call boundary, so PeriodStats stays calendar-free.
func (s *AnalyticsService) Summary(userID uint, period string, now time.Time) (*SummaryResponse, error) {
	var start time.Time
	switch period {
	case "week":
		day := utils.DayStart(now)
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		start = day.AddDate(0, 0, -offset)
	case "month":
		d := utils.DayStart(now)
		start = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	default:
		return nil, errors.New("period must be 'week' or 'month'")
	}

	history, err := s.History(userID)
	if err != nil {
		return nil, err
	}

	return &SummaryResponse{
		Period:      period,
		PeriodStart: start.Format("2006-01-02"),
		Stats:       PeriodStats(history, start),
	}, nil
}

// Streak returns the user's current completed-day streak.
func (s *AnalyticsService) Streak(userID uint) (int, error) {
	history, err := s.History(userID)
	if err != nil {
		return 0, err
	}
	return CurrentStreak(history), nil
}

// ExportCSV renders the full history as CSV for the S3 export endpoint.
func (s *AnalyticsService) ExportCSV(userID uint) ([]byte, error) {
	history, err := s.History(userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"date", "total_intake_ml", "target_ml", "completed"})
	for _, h := range history {
		_ = w.Write([]string{
			h.Date.Format("2006-01-02"),
			strconv.Itoa(h.TotalIntakeMl),
			strconv.Itoa(h.TargetMl),
			strconv.FormatBool(h.Completed),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WeeklyReport builds the plain-text body for the SES weekly mail.
func (s *AnalyticsService) WeeklyReport(userID uint, now time.Time) (string, error) {
	summary, err := s.Summary(userID, "week", now)
	if err != nil {
		return "", err
	}
	streak, err := s.Streak(userID)
	if err != nil {
		return "", err
	}

	st := summary.Stats
	return fmt.Sprintf(
		"Week of %s\n\nDays logged: %d\nDays completed: %d (%d%%)\nAverage intake: %dml\nTotal intake: %dml\nCurrent streak: %d day(s)\n\nKeep drinking! 💧",
		summary.PeriodStart, st.DaysTotal, st.DaysCompleted, st.CompletionRate, st.AverageMl, st.TotalMl, streak,
	), nil
}
