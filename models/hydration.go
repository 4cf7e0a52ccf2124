package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EntryKindQuick  = "quick"
	EntryKindCustom = "custom"
)

// DailyRecord is the live intake log for the current calendar day. There is
// exactly one per user at any time; day rollover archives it into a
// HistorySummary and starts a fresh one.
type DailyRecord struct {
	ID        uint          `gorm:"primaryKey" json:"-"`
	UserID    uint          `gorm:"index;not null" json:"-"`
	Date      time.Time     `gorm:"index;not null" json:"date"` // local midnight
	Entries   []IntakeEntry `gorm:"foreignKey:RecordID" json:"entries"`
	CreatedAt time.Time     `json:"-"`
	UpdatedAt time.Time     `json:"-"`
}

// IntakeEntry is a single drink logged against a DailyRecord. Immutable once
// created; removable by id only while its record is still the live day.
type IntakeEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecordID  uint      `gorm:"index;not null" json:"-"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	AmountMl  int       `gorm:"not null" json:"amount_ml"`
	Kind      string    `gorm:"size:8;not null" json:"kind"` // quick | custom
	CreatedAt time.Time `json:"created_at"`
}

func (e *IntakeEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// HistorySummary is the frozen aggregate of one finished day. Appended once
// per rollover, never edited afterwards; days with the app closed simply have
// no row.
type HistorySummary struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	UserID        uint      `gorm:"uniqueIndex:idx_history_user_date;not null" json:"-"`
	Date          time.Time `gorm:"uniqueIndex:idx_history_user_date;not null" json:"date"`
	TotalIntakeMl int       `json:"total_intake_ml"`
	TargetMl      int       `json:"target_ml"` // target active at the moment of rollover
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"-"`
}
