package utils

import "strings"

// DeterministicQrCode builds the stable scan payload for a participant.
// Same event + name + church always yields the same code, so re-printed
// badges keep working after a re-import.
func DeterministicQrCode(eventID, name, church string) string {
	input := eventID + "-" + strings.ToLower(strings.TrimSpace(name)) + "-" + strings.ToLower(strings.TrimSpace(church))
	return strings.Join(strings.Fields(input), "-")
}
