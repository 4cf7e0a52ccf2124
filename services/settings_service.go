package services

import (
	"errors"

	"github.com/Rabsxd/water-reminder-app-sub001/models"
	"github.com/Rabsxd/water-reminder-app-sub001/utils"

	"gorm.io/gorm"
)

// SettingsUpdate is a partial settings change. Pointer fields distinguish
// "not touched" from "explicitly set to the current value" — a nil field is
// simply left alone.
type SettingsUpdate struct {
	DailyTargetMl           *int  `json:"daily_target_ml"`
	ReminderEnabled         *bool `json:"reminder_enabled"`
	ReminderIntervalMinutes *int  `json:"reminder_interval_minutes"`
	SoundEnabled            *bool `json:"sound_enabled"`
	VibrationEnabled        *bool `json:"vibration_enabled"`
	WakeStartHour           *int  `json:"wake_start_hour"`
	WakeEndHour             *int  `json:"wake_end_hour"`
}

// GetSettings returns the user's settings, seeding the documented defaults on
// first access.
func (s *HydrationService) GetSettings(userID uint) (*models.HydrationSettings, error) {
	var settings models.HydrationSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultSettings(userID)
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings validates every provided field independently and applies the
// update all-or-nothing: a single rejected field aborts the whole call with
// that field's reason, leaving every setting as it was.
func (s *HydrationService) UpdateSettings(userID uint, upd SettingsUpdate) (*models.HydrationSettings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	next := *settings
	if upd.DailyTargetMl != nil {
		if rej := utils.ValidateDailyTarget(*upd.DailyTargetMl); rej != nil {
			return nil, rej
		}
		next.DailyTargetMl = *upd.DailyTargetMl
	}
	if upd.ReminderIntervalMinutes != nil {
		if rej := utils.ValidateReminderInterval(*upd.ReminderIntervalMinutes); rej != nil {
			return nil, rej
		}
		next.ReminderIntervalMinutes = *upd.ReminderIntervalMinutes
	}
	if upd.WakeStartHour != nil {
		next.WakeStartHour = *upd.WakeStartHour
	}
	if upd.WakeEndHour != nil {
		next.WakeEndHour = *upd.WakeEndHour
	}
	if upd.WakeStartHour != nil || upd.WakeEndHour != nil {
		// Validate the effective pair; a lone start or end combines with the
		// hour already stored.
		if rej := utils.ValidateWakeHours(next.WakeStartHour, next.WakeEndHour); rej != nil {
			return nil, rej
		}
	}
	if upd.ReminderEnabled != nil {
		next.ReminderEnabled = *upd.ReminderEnabled
	}
	if upd.SoundEnabled != nil {
		next.SoundEnabled = *upd.SoundEnabled
	}
	if upd.VibrationEnabled != nil {
		next.VibrationEnabled = *upd.VibrationEnabled
	}

	if err := s.db.Save(&next).Error; err != nil {
		return nil, err
	}
	return &next, nil
}
