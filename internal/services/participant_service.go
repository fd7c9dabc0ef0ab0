package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"

	dbm "campscan/internal/models/db_models"
	reqm "campscan/internal/models/request_models"
	resp "campscan/internal/models/response_models"
	"campscan/internal/repositories"
	"campscan/pkg/utils"
)

type ParticipantServiceInterface interface {
	CreateParticipant(ctx context.Context, req reqm.CreateParticipantRequest) (*resp.ParticipantResponse, error)
	ListParticipants(ctx context.Context, eventID string) ([]resp.ParticipantResponse, error)
	ListParticipantsByChurch(ctx context.Context, eventID, church string) ([]resp.ParticipantResponse, error)
	// ListParticipantsByLocation filters on the cached location column;
	// pass db_models.LocationCamp for the camp roster.
	ListParticipantsByLocation(ctx context.Context, eventID, location string) ([]resp.ParticipantResponse, error)
	// GetParticipantDetail returns the participant with their full log
	// history, activity and leader names resolved where they still exist.
	GetParticipantDetail(ctx context.Context, participantID string) (*resp.ParticipantDetailResponse, error)
	UpdateParticipant(ctx context.Context, participantID string, req reqm.UpdateParticipantRequest) (*resp.ParticipantResponse, error)
	DeleteParticipant(ctx context.Context, participantID string) error
	// ImportCsv ingests a name,church,type,assignedleaders csv. Rows that
	// fail validation or duplicate an existing participant are skipped
	// and reported, not fatal.
	ImportCsv(ctx context.Context, eventID string, r io.Reader) (*resp.ImportResult, error)
}

type ParticipantService struct {
	participantRepo repositories.ParticipantRepository
	eventRepo       repositories.EventRepository
	activityRepo    repositories.ActivityRepository
	accountRepo     repositories.AccountRepository
	logRepo         repositories.ActivityLogRepository
}

func NewParticipantService(
	participantRepo repositories.ParticipantRepository,
	eventRepo repositories.EventRepository,
	activityRepo repositories.ActivityRepository,
	accountRepo repositories.AccountRepository,
	logRepo repositories.ActivityLogRepository,
) ParticipantServiceInterface {
	return &ParticipantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		activityRepo:    activityRepo,
		accountRepo:     accountRepo,
		logRepo:         logRepo,
	}
}

func (s *ParticipantService) CreateParticipant(ctx context.Context, req reqm.CreateParticipantRequest) (*resp.ParticipantResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, req.EventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	participant, err := s.insertOne(ctx, event.ID, req.Name, req.Church, req.Type, req.AssignedLeaders)
	if err != nil {
		return nil, err
	}

	out := toParticipantResponse(participant)
	return &out, nil
}

func (s *ParticipantService) insertOne(
	ctx context.Context,
	eventID uuid.UUID,
	name, church, participantType string,
	assignedLeaders []string,
) (*dbm.Participant, error) {
	name = strings.TrimSpace(name)
	church = strings.TrimSpace(church)

	existing, err := s.participantRepo.FindByNameAndChurch(ctx, eventID.String(), name, church)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateParticipant
	}

	participant := &dbm.Participant{
		EventID:         eventID,
		Name:            name,
		Church:          church,
		Type:            participantType,
		AssignedLeaders: assignedLeaders,
		QrCode:          utils.DeterministicQrCode(eventID.String(), name, church),
		CurrentLocation: dbm.LocationCamp,
	}
	if err := s.participantRepo.Insert(ctx, participant); err != nil {
		log.Printf("Error creating participant: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return participant, nil
}

func (s *ParticipantService) ListParticipants(ctx context.Context, eventID string) ([]resp.ParticipantResponse, error) {
	participants, err := s.participantRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toParticipantResponses(participants), nil
}

func (s *ParticipantService) ListParticipantsByChurch(ctx context.Context, eventID, church string) ([]resp.ParticipantResponse, error) {
	participants, err := s.participantRepo.ListByChurch(ctx, eventID, church)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toParticipantResponses(participants), nil
}

func (s *ParticipantService) ListParticipantsByLocation(ctx context.Context, eventID, location string) ([]resp.ParticipantResponse, error) {
	participants, err := s.participantRepo.ListByLocation(ctx, eventID, location)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toParticipantResponses(participants), nil
}

func (s *ParticipantService) GetParticipantDetail(ctx context.Context, participantID string) (*resp.ParticipantDetailResponse, error) {
	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if participant == nil {
		return nil, utils.ErrParticipantNotFound
	}

	logs, err := s.logRepo.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	activityNames, err := s.activityNames(ctx, participant.EventID.String())
	if err != nil {
		return nil, err
	}
	leaderNames := map[string]string{}

	entries := make([]resp.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		entry := resp.ActivityLogResponse{
			ID:        l.ID.String(),
			Type:      l.Type,
			LeaderID:  l.LeaderID.String(),
			Timestamp: l.Timestamp,
		}
		if l.ActivityID != nil {
			entry.ActivityID = l.ActivityID.String()
			entry.ActivityName = activityNames[entry.ActivityID]
		}
		if l.FromActivityID != nil {
			entry.FromActivityID = l.FromActivityID.String()
			entry.FromActivityName = activityNames[entry.FromActivityID]
		}
		if name, ok := leaderNames[entry.LeaderID]; ok {
			entry.LeaderName = name
		} else if leader, err := s.accountRepo.FindByID(ctx, entry.LeaderID); err == nil && leader != nil {
			// Deleted leaders just lose their display name.
			leaderNames[entry.LeaderID] = leader.Name
			entry.LeaderName = leader.Name
		}
		entries = append(entries, entry)
	}

	// newest first, the order the detail screen shows them
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	return &resp.ParticipantDetailResponse{
		Participant: toParticipantResponse(participant),
		Logs:        entries,
	}, nil
}

func (s *ParticipantService) UpdateParticipant(ctx context.Context, participantID string, req reqm.UpdateParticipantRequest) (*resp.ParticipantResponse, error) {
	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if participant == nil {
		return nil, utils.ErrParticipantNotFound
	}

	// Name, church, event and qr code are fixed at creation.
	if req.Type != "" {
		participant.Type = req.Type
	}
	if req.AssignedLeaders != nil {
		participant.AssignedLeaders = req.AssignedLeaders
	}

	if err := s.participantRepo.Update(ctx, participant); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := toParticipantResponse(participant)
	return &out, nil
}

func (s *ParticipantService) DeleteParticipant(ctx context.Context, participantID string) error {
	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if participant == nil {
		return utils.ErrParticipantNotFound
	}

	if err := s.participantRepo.DeleteWithLogs(ctx, participantID); err != nil {
		log.Printf("Error deleting participant %s: %v", participantID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ParticipantService) ImportCsv(ctx context.Context, eventID string, r io.Reader) (*resp.ImportResult, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, utils.ErrInvalidCsv
	}

	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "church", "type"} {
		if _, ok := col[required]; !ok {
			return nil, utils.ErrInvalidCsv
		}
	}

	result := &resp.ImportResult{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: malformed row", line))
			continue
		}

		name := field(record, col, "name")
		church := field(record, col, "church")
		participantType := strings.ToLower(field(record, col, "type"))
		if name == "" || church == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: missing name or church", line))
			continue
		}
		if participantType != dbm.ParticipantTypeStudent && participantType != dbm.ParticipantTypeLeader {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: invalid type %q", line, participantType))
			continue
		}

		var leaders []string
		if raw := field(record, col, "assignedleaders"); raw != "" {
			for _, l := range strings.Split(raw, ",") {
				if trimmed := strings.TrimSpace(l); trimmed != "" {
					leaders = append(leaders, trimmed)
				}
			}
		}

		if _, err := s.insertOne(ctx, event.ID, name, church, participantType, leaders); err != nil {
			result.Skipped++
			if errors.Is(err, utils.ErrDuplicateParticipant) {
				result.Errors = append(result.Errors, fmt.Sprintf("line %d: duplicate %s (%s)", line, name, church))
				continue
			}
			return nil, err
		}
		result.Imported++
	}

	return result, nil
}

func field(record []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func toParticipantResponse(p *dbm.Participant) resp.ParticipantResponse {
	location := p.CurrentLocation
	if location == "" {
		location = dbm.LocationCamp
	}
	return resp.ParticipantResponse{
		ID:              p.ID.String(),
		EventID:         p.EventID.String(),
		Name:            p.Name,
		Church:          p.Church,
		Type:            p.Type,
		AssignedLeaders: p.AssignedLeaders,
		QrCode:          p.QrCode,
		CurrentLocation: location,
	}
}

func toParticipantResponses(participants []dbm.Participant) []resp.ParticipantResponse {
	out := make([]resp.ParticipantResponse, 0, len(participants))
	for i := range participants {
		out = append(out, toParticipantResponse(&participants[i]))
	}
	return out
}

func (s *ParticipantService) activityNames(ctx context.Context, eventID string) (map[string]string, error) {
	activities, err := s.activityRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	names := make(map[string]string, len(activities))
	for _, a := range activities {
		names[a.ID.String()] = a.Name
	}
	return names, nil
}
