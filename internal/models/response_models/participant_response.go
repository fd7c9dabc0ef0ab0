package response_models

import "time"

type ParticipantResponse struct {
	ID              string   `json:"id"`
	EventID         string   `json:"event_id"`
	Name            string   `json:"name"`
	Church          string   `json:"church"`
	Type            string   `json:"type"`
	AssignedLeaders []string `json:"assigned_leaders"`
	QrCode          string   `json:"qr_code"`
	CurrentLocation string   `json:"current_location"` // "camp" or activity id
}

// ActivityLogResponse is a log entry enriched with the display names the
// detail screens need. Names stay empty when the referenced activity or
// leader no longer exists.
type ActivityLogResponse struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	ActivityID       string    `json:"activity_id,omitempty"`
	ActivityName     string    `json:"activity_name,omitempty"`
	FromActivityID   string    `json:"from_activity_id,omitempty"`
	FromActivityName string    `json:"from_activity_name,omitempty"`
	LeaderID         string    `json:"leader_id"`
	LeaderName       string    `json:"leader_name,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

type ParticipantDetailResponse struct {
	Participant ParticipantResponse   `json:"participant"`
	Logs        []ActivityLogResponse `json:"logs"`
}
