package response_models

type ActivityOccupancy struct {
	ActivityID   string   `json:"activity_id"`
	ActivityName string   `json:"activity_name"`
	Count        int      `json:"count"`
	Participants []string `json:"participants,omitempty"` // participant ids
}

type ActivityEngagement struct {
	ActivityID   string `json:"activity_id"`
	ActivityName string `json:"activity_name"`
	Count        int    `json:"count"`
}

// LocationBreakdown partitions an event's participants by current location.
type LocationBreakdown struct {
	AtCamp     []string            `json:"at_camp"` // participant ids
	ByActivity []ActivityOccupancy `json:"by_activity"`
}

type EventReport struct {
	EventID           string               `json:"event_id"`
	EventName         string               `json:"event_name"`
	TotalParticipants int                  `json:"total_participants"`
	Students          int                  `json:"students"`
	Leaders           int                  `json:"leaders"`
	ByChurch          map[string]int       `json:"by_church"`
	AtCampCount       int                  `json:"at_camp_count"`
	Occupancy         []ActivityOccupancy  `json:"occupancy"`
	Engagement        []ActivityEngagement `json:"engagement"`
}
