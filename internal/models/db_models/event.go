package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	BaseModel
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	CreatedBy   uuid.UUID
	// Active is exclusive: SetActive deactivates every other event in the
	// same transaction.
	Active bool

	Activities   []Activity    `gorm:"foreignKey:EventID"`
	Participants []Participant `gorm:"foreignKey:EventID"`
}
