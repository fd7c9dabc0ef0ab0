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

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, createdBy string, req reqm.CreateEventRequest) (*resp.EventResponse, error)
	ListEvents(ctx context.Context) ([]resp.EventResponse, error)
	GetEvent(ctx context.Context, eventID string) (*resp.EventResponse, error)
	SetActiveEvent(ctx context.Context, eventID string) error
	DeleteEvent(ctx context.Context, eventID string) error
	// ResetEventData wipes the event's activity logs and returns every
	// participant to camp. Participants and activities survive.
	ResetEventData(ctx context.Context, eventID string) error
}

type EventService struct {
	eventRepo       repositories.EventRepository
	participantRepo repositories.ParticipantRepository
	locations       LocationServiceInterface
}

func NewEventService(
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	locations LocationServiceInterface,
) EventServiceInterface {
	return &EventService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		locations:       locations,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, createdBy string, req reqm.CreateEventRequest) (*resp.EventResponse, error) {
	creator, err := uuid.Parse(createdBy)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	event := &dbm.Event{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedBy:   creator,
	}
	if err := s.eventRepo.Insert(ctx, event); err != nil {
		log.Printf("Error creating event: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := toEventResponse(event)
	return &out, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]resp.EventResponse, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]resp.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, toEventResponse(&events[i]))
	}
	return out, nil
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (*resp.EventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	out := toEventResponse(event)
	return &out, nil
}

func (s *EventService) SetActiveEvent(ctx context.Context, eventID string) error {
	if err := s.eventRepo.SetActive(ctx, eventID); err != nil {
		if event, findErr := s.eventRepo.FindByID(ctx, eventID); findErr == nil && event == nil {
			return utils.ErrEventNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID string) error {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if event == nil {
		return utils.ErrEventNotFound
	}
	if err := s.eventRepo.DeleteCascade(ctx, eventID); err != nil {
		log.Printf("Error deleting event %s: %v", eventID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *EventService) ResetEventData(ctx context.Context, eventID string) error {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if event == nil {
		return utils.ErrEventNotFound
	}

	if err := s.eventRepo.ResetLogs(ctx, eventID); err != nil {
		return utils.ErrDatabaseError
	}
	// With the log empty every derived location is camp; the backfill
	// makes the cached column agree.
	return s.locations.BackfillLocations(ctx, eventID)
}

func toEventResponse(event *dbm.Event) resp.EventResponse {
	return resp.EventResponse{
		ID:          event.ID.String(),
		Name:        event.Name,
		Description: event.Description,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		Active:      event.Active,
	}
}
