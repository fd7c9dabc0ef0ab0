package services

import (
	"context"
	"sort"

	dbm "campscan/internal/models/db_models"
	resp "campscan/internal/models/response_models"
	"campscan/internal/repositories"
	"campscan/pkg/utils"
)

type ReportServiceInterface interface {
	// BuildEventReport is read-only and returns a point-in-time snapshot;
	// scans landing mid-aggregation may or may not be reflected.
	BuildEventReport(ctx context.Context, eventID string) (*resp.EventReport, error)
}

type ReportService struct {
	eventRepo       repositories.EventRepository
	participantRepo repositories.ParticipantRepository
	activityRepo    repositories.ActivityRepository
	locations       LocationServiceInterface
}

func NewReportService(
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	activityRepo repositories.ActivityRepository,
	locations LocationServiceInterface,
) ReportServiceInterface {
	return &ReportService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		activityRepo:    activityRepo,
		locations:       locations,
	}
}

func (s *ReportService) BuildEventReport(ctx context.Context, eventID string) (*resp.EventReport, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	participants, err := s.participantRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	activities, err := s.activityRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	report := &resp.EventReport{
		EventID:           eventID,
		EventName:         event.Name,
		TotalParticipants: len(participants),
		ByChurch:          map[string]int{},
	}

	for _, p := range participants {
		switch p.Type {
		case dbm.ParticipantTypeStudent:
			report.Students++
		case dbm.ParticipantTypeLeader:
			report.Leaders++
		}
		report.ByChurch[p.Church]++
	}

	breakdown, err := s.locations.PartitionByLocation(ctx, eventID)
	if err != nil {
		return nil, err
	}
	report.AtCampCount = len(breakdown.AtCamp)
	report.Occupancy = breakdown.ByActivity

	engagement, err := s.locations.EngagementCounts(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for _, a := range activities {
		report.Engagement = append(report.Engagement, resp.ActivityEngagement{
			ActivityID:   a.ID.String(),
			ActivityName: a.Name,
			Count:        engagement[a.ID.String()],
		})
	}
	sort.Slice(report.Engagement, func(i, j int) bool {
		return report.Engagement[i].Count > report.Engagement[j].Count
	})

	return report, nil
}
