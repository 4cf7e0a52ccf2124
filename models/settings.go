package models

import (
	"gorm.io/gorm"
)

// HydrationSettings holds each user's hydration preferences. Exactly one row
// per user; mutated only through the settings update flow so every field has
// passed validation before it lands here.
type HydrationSettings struct {
	gorm.Model
	UserID                  uint `gorm:"uniqueIndex;not null" json:"-"`
	DailyTargetMl           int  `json:"daily_target_ml"`            // 1000..4000, multiple of 100
	ReminderEnabled         bool `json:"reminder_enabled"`
	ReminderIntervalMinutes int  `json:"reminder_interval_minutes"` // 15..240
	SoundEnabled            bool `json:"sound_enabled"`
	VibrationEnabled        bool `json:"vibration_enabled"`
	WakeStartHour           int  `json:"wake_start_hour"` // 0..23
	WakeEndHour             int  `json:"wake_end_hour"`   // 1..24; start >= end wraps past midnight
}

// DefaultSettings are the documented defaults restored by a full reset and
// seeded for users who have never touched their settings.
func DefaultSettings(userID uint) HydrationSettings {
	return HydrationSettings{
		UserID:                  userID,
		DailyTargetMl:           2000,
		ReminderEnabled:         true,
		ReminderIntervalMinutes: 60,
		SoundEnabled:            true,
		VibrationEnabled:        true,
		WakeStartHour:           7,
		WakeEndHour:             22,
	}
}
