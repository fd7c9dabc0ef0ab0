package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	ParticipantTypeStudent = "student"
	ParticipantTypeLeader  = "leader"
)

// LocationCamp is the default location value; anything else in
// CurrentLocation is an activity id.
const LocationCamp = "camp"

type Participant struct {
	BaseModel
	EventID         uuid.UUID `gorm:"index"`
	Name            string
	Church          string
	Type            string         // student | leader
	AssignedLeaders pq.StringArray `gorm:"type:text[]"`
	QrCode          string         `gorm:"index"`
	// CurrentLocation is a denormalized projection of the activity log.
	// The log is the source of truth; this column exists for fast reads
	// and is rebuilt by the backfill routine.
	CurrentLocation string `gorm:"default:camp"`

	Logs []ActivityLog `gorm:"foreignKey:ParticipantID"`
}

func (p *Participant) AtCamp() bool {
	return p.CurrentLocation == "" || p.CurrentLocation == LocationCamp
}
