package request_models

import "time"

type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required,min=2,max=100"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}
