package request_models

type CreateParticipantRequest struct {
	EventID         string   `json:"event_id" binding:"required"`
	Name            string   `json:"name" binding:"required,min=2,max=100"`
	Church          string   `json:"church" binding:"required"`
	Type            string   `json:"type" binding:"required,oneof=student leader"`
	AssignedLeaders []string `json:"assigned_leaders"`
}

type UpdateParticipantRequest struct {
	Type            string   `json:"type" binding:"omitempty,oneof=student leader"`
	AssignedLeaders []string `json:"assigned_leaders"`
}
