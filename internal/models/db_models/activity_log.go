package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LogTypeDeparture = "departure"
	LogTypeReturn    = "return"
	LogTypeChange    = "change"
)

// ActivityLog is an append-only fact about a participant transition.
// Entries are never edited; the sequence ordered by Timestamp is the
// sole source of truth for a participant's location history.
type ActivityLog struct {
	BaseModel
	EventID       uuid.UUID `gorm:"index"`
	ParticipantID uuid.UUID `gorm:"index"`
	// ActivityID is the destination for departure/change, and the
	// activity being left for return. It may dangle after an activity
	// delete; readers must tolerate that.
	ActivityID *uuid.UUID `gorm:"index"`
	// FromActivityID is set only for change entries.
	FromActivityID *uuid.UUID
	LeaderID       uuid.UUID
	Type           string
	// Timestamp is server-assigned at append time. BaseModel.CreatedAt
	// only has second resolution, not enough to order back-to-back scans.
	Timestamp time.Time `gorm:"index"`
}
