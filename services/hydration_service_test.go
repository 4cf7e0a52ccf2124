package services

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Rabsxd/water-reminder-app-sub001/config"
	"github.com/Rabsxd/water-reminder-app-sub001/models"
	"github.com/Rabsxd/water-reminder-app-sub001/utils"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testUserID uint = 1

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "hydration.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.HydrationSettings{},
		&models.DailyRecord{},
		&models.IntakeEntry{},
		&models.HistorySummary{},
	)
	if err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	return db
}

func newTestService(t *testing.T) *HydrationService {
	t.Helper()
	return NewHydrationService(openTestDB(t), config.HydrationConfig{
		DailyMaxMl:   5000,
		QuickAmounts: []int{150, 250, 330, 500, 750},
	})
}

func wantRejection(t *testing.T, err error, reason utils.RejectReason) {
	t.Helper()
	var rej *utils.Rejection
	if !errors.As(err, &rej) {
		t.Fatalf("got error %v, want rejection %s", err, reason)
	}
	if rej.Reason != reason {
		t.Fatalf("rejection reason = %s, want %s", rej.Reason, reason)
	}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func noon(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestAddEntryCustom(t *testing.T) {
	svc := newTestService(t)
	now := noon(2025, 3, 10)

	snap, err := svc.AddEntry(testUserID, 300, models.EntryKindCustom, now)
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if snap.IntakeMl != 300 {
		t.Errorf("IntakeMl = %d, want 300", snap.IntakeMl)
	}
	if len(snap.Entries) != 1 || snap.Entries[0].Kind != models.EntryKindCustom {
		t.Errorf("unexpected entries: %+v", snap.Entries)
	}
	if snap.Entries[0].ID == uuid.Nil {
		t.Error("entry id was not generated")
	}

	snap, err = svc.AddEntry(testUserID, 450, models.EntryKindCustom, now)
	if err != nil {
		t.Fatalf("second AddEntry: %v", err)
	}
	if snap.IntakeMl != 750 {
		t.Errorf("IntakeMl = %d, want sum of entries 750", snap.IntakeMl)
	}
}

func TestAddEntryRejectionLeavesStateUnchanged(t *testing.T) {
	svc := newTestService(t)
	now := noon(2025, 3, 10)

	if _, err := svc.AddEntry(testUserID, 500, models.EntryKindCustom, now); err != nil {
		t.Fatalf("setup AddEntry: %v", err)
	}

	tests := []struct {
		name   string
		amount int
		kind   string
		reason utils.RejectReason
	}{
		{"too low", 30, models.EntryKindCustom, utils.ReasonAmountTooLow},
		{"too high", 1300, models.EntryKindCustom, utils.ReasonAmountTooHigh},
		{"not a quick amount", 400, models.EntryKindQuick, utils.ReasonNotAQuickAmount},
		{"unknown kind", 300, "sip", utils.ReasonOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddEntry(testUserID, tt.amount, tt.kind, now)
			wantRejection(t, err, tt.reason)

			snap, err := svc.Today(testUserID, now)
			if err != nil {
				t.Fatalf("Today: %v", err)
			}
			if snap.IntakeMl != 500 || len(snap.Entries) != 1 {
				t.Errorf("state changed after rejection: intake=%d entries=%d", snap.IntakeMl, len(snap.Entries))
			}
		})
	}
}

func TestAddEntryDailyLimit(t *testing.T) {
	svc := newTestService(t)
	now := noon(2025, 3, 10)

	for i := 0; i < 4; i++ {
		if _, err := svc.AddEntry(testUserID, 1000, models.EntryKindCustom, now); err != nil {
			t.Fatalf("AddEntry #%d: %v", i, err)
		}
	}
	if _, err := svc.AddEntry(testUserID, 900, models.EntryKindCustom, now); err != nil {
		t.Fatalf("AddEntry to 4900: %v", err)
	}

	_, err := svc.AddEntry(testUserID, 200, models.EntryKindCustom, now)
	wantRejection(t, err, utils.ReasonDailyLimitExceeded)

	// exactly reaching the ceiling is allowed
	snap, err := svc.AddEntry(testUserID, 100, models.EntryKindCustom, now)
	if err != nil {
		t.Fatalf("AddEntry reaching ceiling: %v", err)
	}
	if snap.IntakeMl != 5000 {
		t.Errorf("IntakeMl = %d, want 5000", snap.IntakeMl)
	}

	// quick amounts respect the ceiling too
	_, err = svc.AddEntry(testUserID, 150, models.EntryKindQuick, now)
	wantRejection(t, err, utils.ReasonDailyLimitExceeded)
}

// Mirrors the canonical client walkthrough: three quick glasses, an oversized
// custom attempt, then finishing the goal with custom entries.
func TestGoalScenario(t *testing.T) {
	svc := newTestService(t)
	now := noon(2025, 3, 10)

	for i := 0; i < 3; i++ {
		if _, err := svc.AddEntry(testUserID, 250, models.EntryKindQuick, now); err != nil {
			t.Fatalf("quick AddEntry #%d: %v", i, err)
		}
	}

	snap, err := svc.Today(testUserID, now)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if snap.IntakeMl != 750 {
		t.Errorf("IntakeMl = %d, want 750", snap.IntakeMl)
	}
	if snap.CompletionRatio != 0.375 {
		t.Errorf("CompletionRatio = %v, want 0.375", snap.CompletionRatio)
	}
	if snap.Completed {
		t.Error("goal should not be completed at 750/2000")
	}

	_, err = svc.AddEntry(testUserID, 1300, models.EntryKindCustom, now)
	wantRejection(t, err, utils.ReasonAmountTooHigh)

	if _, err := svc.AddEntry(testUserID, 1000, models.EntryKindCustom, now); err != nil {
		t.Fatalf("AddEntry 1000: %v", err)
	}
	snap, err = svc.AddEntry(testUserID, 300, models.EntryKindCustom, now)
	if err != nil {
		t.Fatalf("AddEntry 300: %v", err)
	}
	if snap.IntakeMl != 2050 {
		t.Errorf("IntakeMl = %d, want 2050", snap.IntakeMl)
	}
	if !snap.Completed {
		t.Error("goal should be completed at 2050/2000")
	}
	if snap.CompletionRatio != 1 {
		t.Errorf("CompletionRatio = %v, want capped at 1", snap.CompletionRatio)
	}
}

func TestRemoveEntry(t *testing.T) {
	svc := newTestService(t)
	now := noon(2025, 3, 10)

	first, err := svc.AddEntry(testUserID, 300, models.EntryKindCustom, now)
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if _, err := svc.AddEntry(testUserID, 500, models.EntryKindCustom, now); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	snap, err := svc.RemoveEntry(testUserID, first.Entries[0].ID, now)
	if err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}
	if snap.IntakeMl != 500 || len(snap.Entries) != 1 {
		t.Errorf("after removal: intake=%d entries=%d, want 500/1", snap.IntakeMl, len(snap.Entries))
	}

	_, err = svc.RemoveEntry(testUserID, uuid.New(), now)
	wantRejection(t, err, utils.ReasonNotFound)
}

func TestRolloverArchivesDay(t *testing.T) {
	svc := newTestService(t)
	yesterday := noon(2025, 3, 10)
	today := noon(2025, 3, 11)

	// raise the target first so the summary freezes it
	if _, err := svc.UpdateSettings(testUserID, SettingsUpdate{DailyTargetMl: intPtr(3000)}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	if _, err := svc.AddEntry(testUserID, 1000, models.EntryKindCustom, yesterday); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if _, err := svc.AddEntry(testUserID, 750, models.EntryKindQuick, yesterday); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	snap, err := svc.Today(testUserID, today)
	if err != nil {
		t.Fatalf("Today after midnight: %v", err)
	}
	if snap.IntakeMl != 0 || len(snap.Entries) != 0 {
		t.Errorf("fresh day should be empty, got intake=%d entries=%d", snap.IntakeMl, len(snap.Entries))
	}
	if snap.Date != "2025-03-11" {
		t.Errorf("snapshot date = %s, want 2025-03-11", snap.Date)
	}

	var summaries []models.HistorySummary
	if err := svc.db.Where("user_id = ?", testUserID).Find(&summaries).Error; err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("history has %d summaries, want 1", len(summaries))
	}
	s := summaries[0]
	if !utils.SameCalendarDay(s.Date, yesterday) {
		t.Errorf("summary date = %v, want the archived day", s.Date)
	}
	if s.TotalIntakeMl != 1750 {
		t.Errorf("summary total = %d, want 1750", s.TotalIntakeMl)
	}
	if s.TargetMl != 3000 {
		t.Errorf("summary target = %d, want the frozen 3000", s.TargetMl)
	}
	if s.Completed {
		t.Error("1750/3000 should not be completed")
	}
}

func TestRolloverIdempotent(t *testing.T) {
	svc := newTestService(t)
	yesterday := noon(2025, 3, 10)
	today := noon(2025, 3, 11)

	for i := 0; i < 2; i++ {
		if _, err := svc.AddEntry(testUserID, 1000, models.EntryKindCustom, yesterday); err != nil {
			t.Fatalf("AddEntry #%d: %v", i, err)
		}
	}

	if _, err := svc.RollDayOver(testUserID, today); err != nil {
		t.Fatalf("first RollDayOver: %v", err)
	}
	if _, err := svc.RollDayOver(testUserID, today); err != nil {
		t.Fatalf("second RollDayOver: %v", err)
	}

	var count int64
	svc.db.Model(&models.HistorySummary{}).Where("user_id = ?", testUserID).Count(&count)
	if count != 1 {
		t.Errorf("history has %d summaries after double rollover, want 1", count)
	}
}

func TestRolloverSkippedDaysAreAbsent(t *testing.T) {
	svc := newTestService(t)
	logged := noon(2025, 3, 10)
	later := noon(2025, 3, 14) // three whole days never seen

	for i := 0; i < 2; i++ {
		if _, err := svc.AddEntry(testUserID, 1000, models.EntryKindCustom, logged); err != nil {
			t.Fatalf("AddEntry #%d: %v", i, err)
		}
	}

	if _, err := svc.Today(testUserID, later); err != nil {
		t.Fatalf("Today: %v", err)
	}

	var summaries []models.HistorySummary
	if err := svc.db.Find(&summaries).Error; err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("history has %d summaries, want only the day that was actually logged", len(summaries))
	}
	if !utils.SameCalendarDay(summaries[0].Date, logged) {
		t.Errorf("summary date = %v, want %v", summaries[0].Date, logged)
	}
}

func TestGetSettingsSeedsDefaults(t *testing.T) {
	svc := newTestService(t)

	settings, err := svc.GetSettings(testUserID)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}

	want := models.DefaultSettings(testUserID)
	if settings.DailyTargetMl != want.DailyTargetMl ||
		settings.ReminderIntervalMinutes != want.ReminderIntervalMinutes ||
		settings.WakeStartHour != want.WakeStartHour ||
		settings.WakeEndHour != want.WakeEndHour ||
		!settings.ReminderEnabled || !settings.SoundEnabled || !settings.VibrationEnabled {
		t.Errorf("seeded settings = %+v, want defaults %+v", settings, want)
	}
}

func TestUpdateSettingsAllOrNothing(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.UpdateSettings(testUserID, SettingsUpdate{DailyTargetMl: intPtr(1500)}); err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}

	// one bad field poisons the whole call, including valid siblings
	_, err := svc.UpdateSettings(testUserID, SettingsUpdate{
		DailyTargetMl:           intPtr(1550),
		ReminderIntervalMinutes: intPtr(30),
		SoundEnabled:            boolPtr(false),
	})
	wantRejection(t, err, utils.ReasonNotAMultipleOf100)

	settings, err := svc.GetSettings(testUserID)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.DailyTargetMl != 1500 {
		t.Errorf("DailyTargetMl = %d, want untouched 1500", settings.DailyTargetMl)
	}
	if settings.ReminderIntervalMinutes != 60 {
		t.Errorf("ReminderIntervalMinutes = %d, want untouched 60", settings.ReminderIntervalMinutes)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled flipped despite the rejected call")
	}
}

func TestUpdateSettingsWakeWindow(t *testing.T) {
	svc := newTestService(t)

	// overnight wrap is legal
	settings, err := svc.UpdateSettings(testUserID, SettingsUpdate{
		WakeStartHour: intPtr(22),
		WakeEndHour:   intPtr(6),
	})
	if err != nil {
		t.Fatalf("wrap window rejected: %v", err)
	}
	if settings.WakeStartHour != 22 || settings.WakeEndHour != 6 {
		t.Errorf("wake window = %d..%d, want 22..6", settings.WakeStartHour, settings.WakeEndHour)
	}

	// a lone field is validated against the stored counterpart
	_, err = svc.UpdateSettings(testUserID, SettingsUpdate{WakeStartHour: intPtr(25)})
	wantRejection(t, err, utils.ReasonOutOfRange)

	_, err = svc.UpdateSettings(testUserID, SettingsUpdate{ReminderIntervalMinutes: intPtr(10)})
	wantRejection(t, err, utils.ReasonOutOfRange)
}

func TestResetAll(t *testing.T) {
	svc := newTestService(t)
	day1 := noon(2025, 3, 10)
	day2 := noon(2025, 3, 11)

	if _, err := svc.UpdateSettings(testUserID, SettingsUpdate{DailyTargetMl: intPtr(3500)}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := svc.AddEntry(testUserID, 1000, models.EntryKindCustom, day1); err != nil {
			t.Fatalf("AddEntry #%d: %v", i, err)
		}
	}
	if _, err := svc.AddEntry(testUserID, 500, models.EntryKindQuick, day2); err != nil {
		t.Fatalf("AddEntry day2: %v", err)
	}

	if err := svc.ResetAll(testUserID); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}

	var count int64
	svc.db.Model(&models.HistorySummary{}).Count(&count)
	if count != 0 {
		t.Errorf("history not cleared, %d rows remain", count)
	}
	svc.db.Model(&models.IntakeEntry{}).Count(&count)
	if count != 0 {
		t.Errorf("entries not cleared, %d rows remain", count)
	}

	settings, err := svc.GetSettings(testUserID)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.DailyTargetMl != 2000 {
		t.Errorf("DailyTargetMl = %d, want default 2000 after reset", settings.DailyTargetMl)
	}

	snap, err := svc.Today(testUserID, day2)
	if err != nil {
		t.Fatalf("Today after reset: %v", err)
	}
	if snap.IntakeMl != 0 || len(snap.Entries) != 0 {
		t.Errorf("today not empty after reset: %+v", snap)
	}
}
