package request_models

// ScanRequest carries one decoded QR payload plus the leader's scan
// settings. ActivityID is required for departures and ignored for returns.
type ScanRequest struct {
	EventID    string `json:"event_id" binding:"required"`
	QrCode     string `json:"qr_code" binding:"required"`
	ScanType   string `json:"scan_type" binding:"required,oneof=departure return"`
	ActivityID string `json:"activity_id"`
}
