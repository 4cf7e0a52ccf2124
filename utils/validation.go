package utils

import "fmt"

// RejectReason is the closed set of validation rejection codes the mobile
// client switches on. These are contract values; do not rename.
type RejectReason string

const (
	ReasonAmountTooLow       RejectReason = "AMOUNT_TOO_LOW"
	ReasonAmountTooHigh      RejectReason = "AMOUNT_TOO_HIGH"
	ReasonDailyLimitExceeded RejectReason = "DAILY_LIMIT_EXCEEDED"
	ReasonNotAQuickAmount    RejectReason = "NOT_A_QUICK_AMOUNT"
	ReasonOutOfRange         RejectReason = "OUT_OF_RANGE"
	ReasonNotAMultipleOf100  RejectReason = "NOT_A_MULTIPLE_OF_100"
	ReasonNotANumber         RejectReason = "NOT_A_NUMBER"
	ReasonNotFound           RejectReason = "NOT_FOUND"
)

// Rejection is a recoverable validation failure. It is an error so services
// can return it through normal error paths, but controllers unwrap it and
// answer 422 instead of 500.
type Rejection struct {
	Reason  RejectReason `json:"reason"`
	Field   string       `json:"field,omitempty"`
	Message string       `json:"message"`
}

func (r *Rejection) Error() string {
	if r.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", r.Field, r.Message, r.Reason)
	}
	return fmt.Sprintf("%s (%s)", r.Message, r.Reason)
}

func reject(reason RejectReason, field, format string, args ...any) *Rejection {
	return &Rejection{Reason: reason, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Bounds for a single user-entered drink. The daily ceiling is configuration
// (see config.HydrationConfig), these two are not.
const (
	MinEntryMl = 50
	MaxEntryMl = 1000
)

// ValidateCustomAmount checks a free-form amount against the entry bounds and
// the fixed daily ceiling. currentIntake is today's total before this entry.
func ValidateCustomAmount(amount, currentIntake, dailyMax int) *Rejection {
	if amount < MinEntryMl {
		return reject(ReasonAmountTooLow, "amount_ml", "amount must be at least %dml", MinEntryMl)
	}
	if amount > MaxEntryMl {
		return reject(ReasonAmountTooHigh, "amount_ml", "amount must be at most %dml", MaxEntryMl)
	}
	if currentIntake+amount > dailyMax {
		return reject(ReasonDailyLimitExceeded, "amount_ml", "daily limit of %dml would be exceeded", dailyMax)
	}
	return nil
}

// ValidateQuickAmount checks a one-tap amount: it must be a member of the
// configured quick set, then the custom-amount rules apply unchanged, so a
// misconfigured quick set cannot smuggle in an out-of-range entry.
func ValidateQuickAmount(amount, currentIntake, dailyMax int, allowed []int) *Rejection {
	member := false
	for _, a := range allowed {
		if a == amount {
			member = true
			break
		}
	}
	if !member {
		return reject(ReasonNotAQuickAmount, "amount_ml", "%dml is not a quick amount", amount)
	}
	return ValidateCustomAmount(amount, currentIntake, dailyMax)
}

// ValidateDailyTarget checks a daily intake target: 1000..4000ml in 100ml steps.
func ValidateDailyTarget(target int) *Rejection {
	if target < 1000 || target > 4000 {
		return reject(ReasonOutOfRange, "daily_target_ml", "target must be between 1000 and 4000ml")
	}
	if target%100 != 0 {
		return reject(ReasonNotAMultipleOf100, "daily_target_ml", "target must be a multiple of 100ml")
	}
	return nil
}

// ValidateReminderInterval checks the minutes between reminders: 15..240.
func ValidateReminderInterval(minutes int) *Rejection {
	if minutes < 15 || minutes > 240 {
		return reject(ReasonOutOfRange, "reminder_interval_minutes", "interval must be between 15 and 240 minutes")
	}
	return nil
}

// ValidateWakeHours checks the wake window bounds. start >= end is NOT an
// error: that is an overnight window wrapping past midnight.
func ValidateWakeHours(start, end int) *Rejection {
	if start < 0 || start > 23 {
		return reject(ReasonOutOfRange, "wake_start_hour", "start hour must be between 0 and 23")
	}
	if end < 1 || end > 24 {
		return reject(ReasonOutOfRange, "wake_end_hour", "end hour must be between 1 and 24")
	}
	return nil
}
