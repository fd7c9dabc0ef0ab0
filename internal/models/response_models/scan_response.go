package response_models

type ScanResult struct {
	ParticipantID   string `json:"participant_id"`
	ParticipantName string `json:"participant_name"`
	Church          string `json:"church"`
	LogType         string `json:"log_type"` // departure | return | change
	FromActivityID  string `json:"from_activity_id,omitempty"`
	ActivityID      string `json:"activity_id,omitempty"`
	CurrentLocation string `json:"current_location"`
}

// CurrentActivityResponse backs the scanner's pre-scan lookup. Activity
// fields are empty when the participant is at camp.
type CurrentActivityResponse struct {
	AtCamp       bool   `json:"at_camp"`
	ActivityID   string `json:"activity_id,omitempty"`
	ActivityName string `json:"activity_name,omitempty"`
}
