package services

import (
	"time"

	"github.com/Rabsxd/water-reminder-app-sub001/models"
	"github.com/Rabsxd/water-reminder-app-sub001/utils"
)

// ReminderStatus is what the mobile scheduler reads to decide whether and
// how to deliver the next reminder. The backend never schedules anything
// itself; it only answers "would a reminder be permitted right now".
type ReminderStatus struct {
	Enabled          bool `json:"enabled"`
	WithinWakeWindow bool `json:"within_wake_window"`
	Permitted        bool `json:"permitted"`
	IntervalMinutes  int  `json:"interval_minutes"`
	SoundEnabled     bool `json:"sound_enabled"`
	VibrationEnabled bool `json:"vibration_enabled"`
	WakeStartHour    int  `json:"wake_start_hour"`
	WakeEndHour      int  `json:"wake_end_hour"`
}

// EvaluateReminder derives the delivery decision from settings and the
// current wall clock. Pure: the hour check is the only time dependence.
func EvaluateReminder(settings models.HydrationSettings, now time.Time) ReminderStatus {
	awake := utils.IsHourActive(now.In(time.Local).Hour(), settings.WakeStartHour, settings.WakeEndHour)
	return ReminderStatus{
		Enabled:          settings.ReminderEnabled,
		WithinWakeWindow: awake,
		Permitted:        settings.ReminderEnabled && awake,
		IntervalMinutes:  settings.ReminderIntervalMinutes,
		SoundEnabled:     settings.SoundEnabled,
		VibrationEnabled: settings.VibrationEnabled,
		WakeStartHour:    settings.WakeStartHour,
		WakeEndHour:      settings.WakeEndHour,
	}
}

type ReminderService struct {
	hydration *HydrationService
	push      *PushService
}

func NewReminderService(h *HydrationService, p *PushService) *ReminderService {
	return &ReminderService{hydration: h, push: p}
}

// Status evaluates the reminder decision for a user right now.
func (r *ReminderService) Status(userID uint, now time.Time) (*ReminderStatus, error) {
	settings, err := r.hydration.GetSettings(userID)
	if err != nil {
		return nil, err
	}
	status := EvaluateReminder(*settings, now)
	return &status, nil
}

// SendReminder pushes a drink reminder if the wake window and toggle permit
// it. Returns whether anything was sent.
func (r *ReminderService) SendReminder(userID uint, now time.Time) (bool, error) {
	status, err := r.Status(userID, now)
	if err != nil {
		return false, err
	}
	if !status.Permitted {
		return false, nil
	}

	snap, err := r.hydration.Today(userID, now)
	if err != nil {
		return false, err
	}
	if snap.Completed {
		return false, nil // goal already reached, let them rest
	}

	msg := "Time for a glass of water 💧"
	if r.push != nil {
		r.push.PushToUser(userID, "Hydration reminder", msg, map[string]string{
			"type":      "reminder",
			"sound":     boolFlag(status.SoundEnabled),
			"vibration": boolFlag(status.VibrationEnabled),
		})
	}
	EmitAlert(userID, "reminder", msg)
	return true, nil
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
