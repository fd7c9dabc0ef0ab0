package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	dbm "campscan/internal/models/db_models"
	reqm "campscan/internal/models/request_models"
	resp "campscan/internal/models/response_models"
	"campscan/internal/repositories"
	"campscan/pkg/utils"
)

// ScanServiceInterface is the transition state machine behind the scanner.
// Every accepted scan appends exactly one log entry and moves the cached
// location in the same transaction; rejected scans write nothing.
type ScanServiceInterface interface {
	RecordScan(ctx context.Context, leaderID string, req reqm.ScanRequest) (*resp.ScanResult, error)
	// LookupParticipant backs the scanner's pre-scan display.
	LookupParticipant(ctx context.Context, eventID, qrCode string) (*resp.ParticipantResponse, error)
	CurrentActivity(ctx context.Context, participantID string) (*resp.CurrentActivityResponse, error)
}

type ScanService struct {
	participantRepo repositories.ParticipantRepository
	activityRepo    repositories.ActivityRepository
	logRepo         repositories.ActivityLogRepository
	locations       LocationServiceInterface
}

func NewScanService(
	participantRepo repositories.ParticipantRepository,
	activityRepo repositories.ActivityRepository,
	logRepo repositories.ActivityLogRepository,
	locations LocationServiceInterface,
) ScanServiceInterface {
	return &ScanService{
		participantRepo: participantRepo,
		activityRepo:    activityRepo,
		logRepo:         logRepo,
		locations:       locations,
	}
}

func (s *ScanService) RecordScan(ctx context.Context, leaderID string, req reqm.ScanRequest) (*resp.ScanResult, error) {
	qr := strings.TrimSpace(req.QrCode)
	if qr == "" {
		return nil, utils.ErrInvalidQrCode
	}

	participant, err := s.participantRepo.FindByQrCode(ctx, req.EventID, qr)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if participant == nil {
		return nil, utils.ErrInvalidQrCode
	}

	leaderUUID, err := uuid.Parse(leaderID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	// The log is the source of truth, not the cached column.
	current, err := s.locations.CurrentLocation(ctx, participant.ID.String())
	if err != nil {
		return nil, err
	}

	switch req.ScanType {
	case dbm.LogTypeDeparture:
		return s.recordDeparture(ctx, participant, leaderUUID, current, req.ActivityID)
	case dbm.LogTypeReturn:
		return s.recordReturn(ctx, participant, leaderUUID, current)
	default:
		return nil, utils.ErrInvalidScanType
	}
}

func (s *ScanService) recordDeparture(
	ctx context.Context,
	participant *dbm.Participant,
	leaderID uuid.UUID,
	current, targetID string,
) (*resp.ScanResult, error) {
	if targetID == "" {
		return nil, utils.ErrMissingActivity
	}

	target, err := s.activityRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if target == nil || target.EventID != participant.EventID {
		return nil, utils.ErrActivityNotFound
	}

	// Same activity: reject, no log. Scanning twice in a row lands here
	// on the second pass, which is the whole dedup mechanism.
	if current == targetID {
		return nil, utils.ErrAlreadyAtActivity
	}

	entry := &dbm.ActivityLog{
		EventID:       participant.EventID,
		ParticipantID: participant.ID,
		ActivityID:    &target.ID,
		LeaderID:      leaderID,
		Type:          dbm.LogTypeDeparture,
	}

	if current != dbm.LocationCamp {
		fromUUID, err := uuid.Parse(current)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		entry.Type = dbm.LogTypeChange
		entry.FromActivityID = &fromUUID
	}

	if err := s.logRepo.AppendWithLocationUpdate(ctx, entry, s.observedColumn(participant), targetID); err != nil {
		if errors.Is(err, utils.ErrScanConflict) {
			return nil, err
		}
		log.Printf("Error recording departure scan: %v", err)
		return nil, utils.ErrDatabaseError
	}

	result := &resp.ScanResult{
		ParticipantID:   participant.ID.String(),
		ParticipantName: participant.Name,
		Church:          participant.Church,
		LogType:         entry.Type,
		ActivityID:      targetID,
		CurrentLocation: targetID,
	}
	if entry.FromActivityID != nil {
		result.FromActivityID = entry.FromActivityID.String()
	}
	return result, nil
}

func (s *ScanService) recordReturn(
	ctx context.Context,
	participant *dbm.Participant,
	leaderID uuid.UUID,
	current string,
) (*resp.ScanResult, error) {
	if current == dbm.LocationCamp {
		return nil, utils.ErrAlreadyAtCamp
	}

	leftUUID, err := uuid.Parse(current)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entry := &dbm.ActivityLog{
		EventID:       participant.EventID,
		ParticipantID: participant.ID,
		ActivityID:    &leftUUID, // the activity being left
		LeaderID:      leaderID,
		Type:          dbm.LogTypeReturn,
	}

	if err := s.logRepo.AppendWithLocationUpdate(ctx, entry, s.observedColumn(participant), dbm.LocationCamp); err != nil {
		if errors.Is(err, utils.ErrScanConflict) {
			return nil, err
		}
		log.Printf("Error recording return scan: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &resp.ScanResult{
		ParticipantID:   participant.ID.String(),
		ParticipantName: participant.Name,
		Church:          participant.Church,
		LogType:         dbm.LogTypeReturn,
		ActivityID:      current,
		CurrentLocation: dbm.LocationCamp,
	}, nil
}

// observedColumn is the value the conditional location write must match.
// The cached column can lag the log after a partial failure; the derived
// location drives the state machine, but the conditional write has to
// match what is actually stored.
func (s *ScanService) observedColumn(participant *dbm.Participant) string {
	if participant.CurrentLocation == "" {
		return dbm.LocationCamp
	}
	return participant.CurrentLocation
}

func (s *ScanService) LookupParticipant(ctx context.Context, eventID, qrCode string) (*resp.ParticipantResponse, error) {
	qr := strings.TrimSpace(qrCode)
	if qr == "" {
		return nil, utils.ErrInvalidQrCode
	}

	participant, err := s.participantRepo.FindByQrCode(ctx, eventID, qr)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if participant == nil {
		return nil, utils.ErrInvalidQrCode
	}

	out := toParticipantResponse(participant)
	return &out, nil
}

func (s *ScanService) CurrentActivity(ctx context.Context, participantID string) (*resp.CurrentActivityResponse, error) {
	current, err := s.locations.CurrentLocation(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if current == dbm.LocationCamp {
		return &resp.CurrentActivityResponse{AtCamp: true}, nil
	}

	activity, err := s.activityRepo.FindByID(ctx, current)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return &resp.CurrentActivityResponse{AtCamp: true}, nil
	}

	return &resp.CurrentActivityResponse{
		ActivityID:   activity.ID.String(),
		ActivityName: activity.Name,
	}, nil
}
