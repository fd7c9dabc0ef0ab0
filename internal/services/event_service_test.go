package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "campscan/internal/models/db_models"
	reqm "campscan/internal/models/request_models"
	"campscan/pkg/utils"
)

func TestSetActiveEventIsExclusive(t *testing.T) {
	env := newTestEnv(t)
	first := env.seedEvent(t, "Summer Camp")
	second := env.seedEvent(t, "Winter Camp")

	require.NoError(t, env.events.SetActiveEvent(context.Background(), first.ID.String()))
	require.NoError(t, env.events.SetActiveEvent(context.Background(), second.ID.String()))

	events, err := env.events.ListEvents(context.Background())
	require.NoError(t, err)

	active := 0
	for _, e := range events {
		if e.Active {
			active++
			assert.Equal(t, second.ID.String(), e.ID)
		}
	}
	assert.Equal(t, 1, active)

	err = env.events.SetActiveEvent(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, utils.ErrEventNotFound)
}

func TestCreateEventRejectsBadCreator(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.events.CreateEvent(context.Background(), "not-a-uuid", reqm.CreateEventRequest{
		Name:      "Summer Camp",
		StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestResetEventDataClearsLogsAndLocations(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	climbing := env.seedActivity(t, event.ID, "Climbing")
	p := env.seedParticipant(t, event.ID, "Anna", "Hope Church")

	env.seedLog(t, &dbm.ActivityLog{
		EventID: event.ID, ParticipantID: p.ID,
		ActivityID: &climbing.ID, LeaderID: p.ID, Type: dbm.LogTypeDeparture,
	}, time.Date(2026, 7, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, env.participantRepo.SetLocation(context.Background(), p.ID.String(), climbing.ID.String()))

	require.NoError(t, env.events.ResetEventData(context.Background(), event.ID.String()))

	logs, err := env.logRepo.ListByEvent(context.Background(), event.ID.String())
	require.NoError(t, err)
	assert.Empty(t, logs)

	stored, err := env.participantRepo.FindByID(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, dbm.LocationCamp, stored.CurrentLocation)

	// Participants and activities survive the reset.
	remaining, err := env.activityRepo.ListByEvent(context.Background(), event.ID.String())
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestDeleteEventCascades(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	climbing := env.seedActivity(t, event.ID, "Climbing")
	p := env.seedParticipant(t, event.ID, "Ben", "Hope Church")
	env.seedLog(t, &dbm.ActivityLog{
		EventID: event.ID, ParticipantID: p.ID,
		ActivityID: &climbing.ID, LeaderID: p.ID, Type: dbm.LogTypeDeparture,
	}, time.Date(2026, 7, 2, 10, 0, 0, 0, time.UTC))

	bystander := env.seedEvent(t, "Winter Camp")
	keep := env.seedParticipant(t, bystander.ID, "Cleo", "Grace Church")

	require.NoError(t, env.events.DeleteEvent(context.Background(), event.ID.String()))

	_, err := env.events.GetEvent(context.Background(), event.ID.String())
	assert.ErrorIs(t, err, utils.ErrEventNotFound)

	participants, err := env.participantRepo.ListByEvent(context.Background(), event.ID.String())
	require.NoError(t, err)
	assert.Empty(t, participants)

	logs, err := env.logRepo.ListByEvent(context.Background(), event.ID.String())
	require.NoError(t, err)
	assert.Empty(t, logs)

	// The other event is untouched.
	still, err := env.participantRepo.FindByID(context.Background(), keep.ID.String())
	require.NoError(t, err)
	assert.NotNil(t, still)
}
