package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	dbm "campscan/internal/models/db_models"
	reqm "campscan/internal/models/request_models"
	resp "campscan/internal/models/response_models"
	"campscan/internal/repositories"
	"campscan/pkg/utils"
)

type ActivityServiceInterface interface {
	CreateActivity(ctx context.Context, req reqm.CreateActivityRequest) (*resp.ActivityResponse, error)
	ListActivities(ctx context.Context, eventID string) ([]resp.ActivityResponse, error)
	UpdateActivity(ctx context.Context, activityID string, req reqm.UpdateActivityRequest) (*resp.ActivityResponse, error)
	// DeleteActivity cascades: participants currently there revert to
	// camp and referencing log entries are removed.
	DeleteActivity(ctx context.Context, activityID string) error
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	eventRepo    repositories.EventRepository
}

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	eventRepo repositories.EventRepository,
) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		eventRepo:    eventRepo,
	}
}

func (s *ActivityService) CreateActivity(ctx context.Context, req reqm.CreateActivityRequest) (*resp.ActivityResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, req.EventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	existing, err := s.activityRepo.FindByEventAndName(ctx, req.EventID, req.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateActivity
	}

	eventUUID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, utils.ErrEventNotFound
	}

	activity := &dbm.Activity{
		EventID:     eventUUID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := s.activityRepo.Insert(ctx, activity); err != nil {
		log.Printf("Error creating activity: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := toActivityResponse(activity)
	return &out, nil
}

func (s *ActivityService) ListActivities(ctx context.Context, eventID string) ([]resp.ActivityResponse, error) {
	activities, err := s.activityRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]resp.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, toActivityResponse(&activities[i]))
	}
	return out, nil
}

func (s *ActivityService) UpdateActivity(ctx context.Context, activityID string, req reqm.UpdateActivityRequest) (*resp.ActivityResponse, error) {
	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	if req.Name != "" && req.Name != activity.Name {
		dup, err := s.activityRepo.FindByEventAndName(ctx, activity.EventID.String(), req.Name)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if dup != nil {
			return nil, utils.ErrDuplicateActivity
		}
		activity.Name = req.Name
	}
	if req.Description != "" {
		activity.Description = req.Description
	}
	if req.Location != "" {
		activity.Location = req.Location
	}

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := toActivityResponse(activity)
	return &out, nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, activityID string) error {
	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if activity == nil {
		return utils.ErrActivityNotFound
	}

	if err := s.activityRepo.DeleteCascade(ctx, activity.EventID.String(), activityID); err != nil {
		log.Printf("Error deleting activity %s: %v", activityID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toActivityResponse(activity *dbm.Activity) resp.ActivityResponse {
	return resp.ActivityResponse{
		ID:          activity.ID.String(),
		EventID:     activity.EventID.String(),
		Name:        activity.Name,
		Description: activity.Description,
		Location:    activity.Location,
	}
}
