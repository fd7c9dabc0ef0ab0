package request_models

type CreateActivityRequest struct {
	EventID     string `json:"event_id" binding:"required"`
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type UpdateActivityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
}
