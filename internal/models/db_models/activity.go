package db_models

import "github.com/google/uuid"

// Activity is a named program participants can depart to from camp.
// Name is unique per event, enforced at the service layer.
type Activity struct {
	BaseModel
	EventID     uuid.UUID `gorm:"index"`
	Name        string
	Description string
	Location    string
}
