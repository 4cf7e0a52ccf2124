package services

import (
	"errors"
	"time"

	"github.com/Rabsxd/water-reminder-app-sub001/config"
	"github.com/Rabsxd/water-reminder-app-sub001/models"
	"github.com/Rabsxd/water-reminder-app-sub001/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HydrationService owns a user's daily intake record, its history, and the
// rules for mutating them. Every operation that touches "today" first runs
// the lazy day-rollover check, so a client that sat in memory across
// midnight still lands on the right day.
type HydrationService struct {
	db  *gorm.DB
	cfg config.HydrationConfig
	log *logrus.Logger
}

func NewHydrationService(db *gorm.DB, cfg config.HydrationConfig) *HydrationService {
	return &HydrationService{db: db, cfg: cfg, log: config.GetLogger()}
}

// TodaySnapshot is the read-only view of the live day handed to the client.
type TodaySnapshot struct {
	Date            string               `json:"date"`
	Entries         []models.IntakeEntry `json:"entries"`
	IntakeMl        int                  `json:"intake_ml"`
	TargetMl        int                  `json:"target_ml"`
	CompletionRatio float64              `json:"completion_ratio"`
	Completed       bool                 `json:"completed"`
}

// RollDayOver archives the stale daily record (if any) into a history
// summary and starts a fresh record dated now. Idempotent: on the same
// calendar day it does nothing. The summary freezes the target active at the
// moment of rollover; days the app never saw produce no summary at all.
func (s *HydrationService) RollDayOver(userID uint, now time.Time) (*models.DailyRecord, error) {
	today := utils.DayStart(now)

	var rec models.DailyRecord
	err := s.db.Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.DailyRecord{UserID: userID, Date: today}
		if err := s.db.Create(&rec).Error; err != nil {
			return nil, err
		}
		return &rec, nil
	}
	if err != nil {
		return nil, err
	}

	if utils.DaysElapsed(rec.Date, now) == 0 {
		return &rec, nil
	}

	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		total, err := sumEntries(tx, rec.ID)
		if err != nil {
			return err
		}

		summary := models.HistorySummary{
			UserID:        userID,
			Date:          rec.Date,
			TotalIntakeMl: total,
			TargetMl:      settings.DailyTargetMl,
			Completed:     GoalCompleted(total, settings.DailyTargetMl),
		}
		if err := tx.Create(&summary).Error; err != nil {
			return err
		}

		if err := tx.Where("record_id = ?", rec.ID).Delete(&models.IntakeEntry{}).Error; err != nil {
			return err
		}

		rec.Date = today
		return tx.Save(&rec).Error
	})
	if err != nil {
		config.LogError(s.log, "hydration_service.go", "RollDayOver", "archiving stale record", userID, err)
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"date":    today.Format("2006-01-02"),
	}).Info("day rolled over")

	rec.Entries = nil
	return &rec, nil
}

// AddEntry logs a drink against today. kind is "quick" or "custom"; quick
// amounts must belong to the configured set, and both kinds must fall in the
// 50..1000 range and respect the fixed daily ceiling. On rejection nothing is
// written.
func (s *HydrationService) AddEntry(userID uint, amountMl int, kind string, now time.Time) (*TodaySnapshot, error) {
	rec, err := s.RollDayOver(userID, now)
	if err != nil {
		return nil, err
	}

	current, err := sumEntries(s.db, rec.ID)
	if err != nil {
		return nil, err
	}

	var rej *utils.Rejection
	switch kind {
	case models.EntryKindQuick:
		rej = utils.ValidateQuickAmount(amountMl, current, s.cfg.DailyMaxMl, s.cfg.QuickAmounts)
	case models.EntryKindCustom:
		rej = utils.ValidateCustomAmount(amountMl, current, s.cfg.DailyMaxMl)
	default:
		rej = &utils.Rejection{Reason: utils.ReasonOutOfRange, Field: "kind", Message: "kind must be quick or custom"}
	}
	if rej != nil {
		return nil, rej
	}

	entry := models.IntakeEntry{
		RecordID: rec.ID,
		UserID:   userID,
		AmountMl: amountMl,
		Kind:     kind,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	snap, err := s.snapshot(userID, rec)
	if err != nil {
		return nil, err
	}

	// Crossing the goal line emits one alert for the hub/push fan-out.
	if snap.Completed && !GoalCompleted(current, snap.TargetMl) {
		EmitAlert(userID, "goal", "Daily hydration goal reached 🎉")
	}

	return snap, nil
}

// RemoveEntry deletes one of today's entries by id. History is never
// individually mutable, so an id from an archived day comes back NotFound.
func (s *HydrationService) RemoveEntry(userID uint, entryID uuid.UUID, now time.Time) (*TodaySnapshot, error) {
	rec, err := s.RollDayOver(userID, now)
	if err != nil {
		return nil, err
	}

	res := s.db.Where("id = ? AND record_id = ? AND user_id = ?", entryID, rec.ID, userID).
		Delete(&models.IntakeEntry{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &utils.Rejection{Reason: utils.ReasonNotFound, Field: "id", Message: "no such entry in today's log"}
	}

	return s.snapshot(userID, rec)
}

// Today returns the current snapshot, rolling the day over first if needed.
func (s *HydrationService) Today(userID uint, now time.Time) (*TodaySnapshot, error) {
	rec, err := s.RollDayOver(userID, now)
	if err != nil {
		return nil, err
	}
	return s.snapshot(userID, rec)
}

// ResetAll wipes history and today's entries and restores default settings.
// Destructive by contract; any confirmation dialog lives in the client.
func (s *HydrationService) ResetAll(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.IntakeEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.HistorySummary{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.DailyRecord{}).Error; err != nil {
			return err
		}

		defaults := models.DefaultSettings(userID)
		var settings models.HydrationSettings
		err := tx.Where("user_id = ?", userID).First(&settings).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&defaults).Error
		}
		if err != nil {
			return err
		}
		defaults.ID = settings.ID
		return tx.Save(&defaults).Error
	})
}

func (s *HydrationService) snapshot(userID uint, rec *models.DailyRecord) (*TodaySnapshot, error) {
	var entries []models.IntakeEntry
	if err := s.db.Where("record_id = ?", rec.ID).Order("created_at ASC").Find(&entries).Error; err != nil {
		return nil, err
	}

	// Intake is always the sum of the entries, never a stored counter.
	total := 0
	for _, e := range entries {
		total += e.AmountMl
	}

	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	return &TodaySnapshot{
		Date:            rec.Date.Format("2006-01-02"),
		Entries:         entries,
		IntakeMl:        total,
		TargetMl:        settings.DailyTargetMl,
		CompletionRatio: CompletionRatio(total, settings.DailyTargetMl),
		Completed:       GoalCompleted(total, settings.DailyTargetMl),
	}, nil
}

func sumEntries(db *gorm.DB, recordID uint) (int, error) {
	var total int64
	err := db.Model(&models.IntakeEntry{}).
		Where("record_id = ?", recordID).
		Select("COALESCE(SUM(amount_ml), 0)").
		Scan(&total).Error
	return int(total), err
}
