package services

import (
	"context"
	"sort"

	dbm "campscan/internal/models/db_models"
	resp "campscan/internal/models/response_models"
	"campscan/internal/repositories"
	"campscan/pkg/utils"
)

// LocationServiceInterface derives participant locations purely from the
// activity log. The cached current_location column is an optimization;
// everything here can rebuild it.
type LocationServiceInterface interface {
	// CurrentLocation returns db_models.LocationCamp or an activity id.
	CurrentLocation(ctx context.Context, participantID string) (string, error)
	PartitionByLocation(ctx context.Context, eventID string) (*resp.LocationBreakdown, error)
	EngagementCounts(ctx context.Context, eventID string) (map[string]int, error)
	// BackfillLocations recomputes every cached location of the event
	// from the log. Idempotent; running it twice changes nothing.
	BackfillLocations(ctx context.Context, eventID string) error
}

type LocationService struct {
	logRepo         repositories.ActivityLogRepository
	participantRepo repositories.ParticipantRepository
	activityRepo    repositories.ActivityRepository
}

func NewLocationService(
	logRepo repositories.ActivityLogRepository,
	participantRepo repositories.ParticipantRepository,
	activityRepo repositories.ActivityRepository,
) LocationServiceInterface {
	return &LocationService{
		logRepo:         logRepo,
		participantRepo: participantRepo,
		activityRepo:    activityRepo,
	}
}

// latestEntry picks the most recent entry of an unordered log slice.
func latestEntry(logs []dbm.ActivityLog) *dbm.ActivityLog {
	if len(logs) == 0 {
		return nil
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return &logs[0]
}

// locationFromLogs applies the transition rules to an unordered history:
// empty or latest return means camp, latest departure/change means its
// destination. known filters out dangling activity ids; pass nil to skip
// the existence check.
func locationFromLogs(logs []dbm.ActivityLog, known map[string]bool) string {
	latest := latestEntry(logs)
	if latest == nil || latest.Type == dbm.LogTypeReturn {
		return dbm.LocationCamp
	}
	if latest.ActivityID == nil {
		return dbm.LocationCamp
	}
	id := latest.ActivityID.String()
	if known != nil && !known[id] {
		// Activity was deleted out from under the log; treat as camp.
		return dbm.LocationCamp
	}
	return id
}

func (s *LocationService) CurrentLocation(ctx context.Context, participantID string) (string, error) {
	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if participant == nil {
		return "", utils.ErrParticipantNotFound
	}

	logs, err := s.logRepo.ListByParticipant(ctx, participantID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	known, err := s.knownActivities(ctx, participant.EventID.String())
	if err != nil {
		return "", err
	}

	return locationFromLogs(logs, known), nil
}

func (s *LocationService) PartitionByLocation(ctx context.Context, eventID string) (*resp.LocationBreakdown, error) {
	participants, err := s.participantRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	activities, err := s.activityRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byActivity := make(map[string][]string, len(activities))
	breakdown := &resp.LocationBreakdown{AtCamp: []string{}}

	// Fast path: the cached column. BackfillLocations is the repair tool
	// when this drifts from the log.
	for _, p := range participants {
		if p.AtCamp() {
			breakdown.AtCamp = append(breakdown.AtCamp, p.ID.String())
			continue
		}
		byActivity[p.CurrentLocation] = append(byActivity[p.CurrentLocation], p.ID.String())
	}

	for _, a := range activities {
		id := a.ID.String()
		breakdown.ByActivity = append(breakdown.ByActivity, resp.ActivityOccupancy{
			ActivityID:   id,
			ActivityName: a.Name,
			Count:        len(byActivity[id]),
			Participants: byActivity[id],
		})
	}

	// A cached location pointing at a deleted activity counts as camp.
	for loc, ids := range byActivity {
		if !containsActivity(activities, loc) {
			breakdown.AtCamp = append(breakdown.AtCamp, ids...)
		}
	}

	return breakdown, nil
}

func (s *LocationService) EngagementCounts(ctx context.Context, eventID string) (map[string]int, error) {
	participants, err := s.participantRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	known, err := s.knownActivities(ctx, eventID)
	if err != nil {
		return nil, err
	}
	logs, err := s.logRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byParticipant := make(map[string][]dbm.ActivityLog)
	for _, l := range logs {
		pid := l.ParticipantID.String()
		byParticipant[pid] = append(byParticipant[pid], l)
	}

	counts := make(map[string]int, len(known))
	for id := range known {
		counts[id] = 0
	}

	// "Last activity engaged with": the most recent departure/change,
	// regardless of whether the participant has since returned. Each
	// participant counts toward at most one activity.
	for _, p := range participants {
		history := byParticipant[p.ID.String()]
		sort.Slice(history, func(i, j int) bool {
			return history[i].Timestamp.After(history[j].Timestamp)
		})
		for _, l := range history {
			if l.Type != dbm.LogTypeDeparture && l.Type != dbm.LogTypeChange {
				continue
			}
			if l.ActivityID != nil && known[l.ActivityID.String()] {
				counts[l.ActivityID.String()]++
			}
			break
		}
	}

	return counts, nil
}

func (s *LocationService) BackfillLocations(ctx context.Context, eventID string) error {
	participants, err := s.participantRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	known, err := s.knownActivities(ctx, eventID)
	if err != nil {
		return err
	}

	for _, p := range participants {
		logs, err := s.logRepo.ListByParticipant(ctx, p.ID.String())
		if err != nil {
			return utils.ErrDatabaseError
		}
		derived := locationFromLogs(logs, known)
		if derived == p.CurrentLocation {
			continue
		}
		if err := s.participantRepo.SetLocation(ctx, p.ID.String(), derived); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return nil
}

func (s *LocationService) knownActivities(ctx context.Context, eventID string) (map[string]bool, error) {
	activities, err := s.activityRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	known := make(map[string]bool, len(activities))
	for _, a := range activities {
		known[a.ID.String()] = true
	}
	return known, nil
}

func containsActivity(activities []dbm.Activity, id string) bool {
	for _, a := range activities {
		if a.ID.String() == id {
			return true
		}
	}
	return false
}
