package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "campscan/internal/models/db_models"
)

func TestCurrentLocationEmptyHistoryIsCamp(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	p := env.seedParticipant(t, event.ID, "Anna", "Hope Church")

	location, err := env.locations.CurrentLocation(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, dbm.LocationCamp, location)
}

func TestCurrentLocationFollowsLatestEntry(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	climbing := env.seedActivity(t, event.ID, "Climbing")
	kayak := env.seedActivity(t, event.ID, "Kayaking")
	p := env.seedParticipant(t, event.ID, "Ben", "Hope Church")
	leader := uuid.New()

	base := time.Date(2026, 7, 2, 10, 0, 0, 0, time.UTC)
	env.seedLog(t, &dbm.ActivityLog{
		EventID: event.ID, ParticipantID: p.ID,
		ActivityID: &climbing.ID, LeaderID: leader, Type: dbm.LogTypeDeparture,
	}, base)

	location, err := env.locations.CurrentLocation(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, climbing.ID.String(), location)

	env.seedLog(t, &dbm.ActivityLog{
		EventID: event.ID, ParticipantID: p.ID,
		ActivityID: &kayak.ID, FromActivityID: &climbing.ID,
		LeaderID: leader, Type: dbm.LogTypeChange,
	}, base.Add(time.Minute))

	location, err = env.locations.CurrentLocation(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, kayak.ID.String(), location)

	env.seedLog(t, &dbm.ActivityLog{
		EventID: event.ID, ParticipantID: p.ID,
		ActivityID: &kayak.ID, LeaderID: leader, Type: dbm.LogTypeReturn,
	}, base.Add(2*time.Minute))

	location, err = env.locations.CurrentLocation(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, dbm.LocationCamp, location)
}

func TestCurrentLocationDanglingActivityFallsBackToCamp(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	p := env.seedParticipant(t, event.ID, "Cleo", "Grace Church")

	// Departure toward an activity that no longer exists.
	ghost := uuid.New()
	env.seedLog(t, &dbm.ActivityLog{
		EventID: event.ID, ParticipantID: p.ID,
		ActivityID: &ghost, LeaderID: uuid.New(), Type: dbm.LogTypeDeparture,
	}, time.Date(2026, 7, 2, 10, 0, 0, 0, time.UTC))

	location, err := env.locations.CurrentLocation(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, dbm.LocationCamp, location)
}

func TestBackfillLocationsRepairsDrift(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	climbing := env.seedActivity(t, event.ID, "Climbing")
	p := env.seedParticipant(t, event.ID, "Dana", "Hope Church")

	env.seedLog(t, &dbm.ActivityLog{
		EventID: event.ID, ParticipantID: p.ID,
		ActivityID: &climbing.ID, LeaderID: uuid.New(), Type: dbm.LogTypeDeparture,
	}, time.Date(2026, 7, 2, 10, 0, 0, 0, time.UTC))

	// Cached column still says camp; the log disagrees.
	require.NoError(t, env.locations.BackfillLocations(context.Background(), event.ID.String()))

	stored, err := env.participantRepo.FindByID(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, climbing.ID.String(), stored.CurrentLocation)

	// Running it again changes nothing.
	require.NoError(t, env.locations.BackfillLocations(context.Background(), event.ID.String()))
	stored, err = env.participantRepo.FindByID(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, climbing.ID.String(), stored.CurrentLocation)
}

func TestPartitionByLocationCountsDanglingAsCamp(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	climbing := env.seedActivity(t, event.ID, "Climbing")

	away := env.seedParticipant(t, event.ID, "Eli", "Hope Church")
	require.NoError(t, env.participantRepo.SetLocation(context.Background(), away.ID.String(), climbing.ID.String()))

	// Cached location pointing at a deleted activity.
	stale := env.seedParticipant(t, event.ID, "Fay", "Hope Church")
	require.NoError(t, env.participantRepo.SetLocation(context.Background(), stale.ID.String(), uuid.New().String()))

	atCamp := env.seedParticipant(t, event.ID, "Gus", "Grace Church")

	breakdown, err := env.locations.PartitionByLocation(context.Background(), event.ID.String())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{stale.ID.String(), atCamp.ID.String()}, breakdown.AtCamp)
	require.Len(t, breakdown.ByActivity, 1)
	assert.Equal(t, climbing.ID.String(), breakdown.ByActivity[0].ActivityID)
	assert.Equal(t, 1, breakdown.ByActivity[0].Count)
	assert.Equal(t, []string{away.ID.String()}, breakdown.ByActivity[0].Participants)
}

func TestEngagementCountsLatestActivityOnly(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	climbing := env.seedActivity(t, event.ID, "Climbing")
	kayak := env.seedActivity(t, event.ID, "Kayaking")
	leader := uuid.New()
	base := time.Date(2026, 7, 2, 10, 0, 0, 0, time.UTC)

	// Went climbing, then changed to kayaking, then returned: counts
	// toward kayaking only.
	hopper := env.seedParticipant(t, event.ID, "Hana", "Hope Church")
	env.seedLog(t, &dbm.ActivityLog{
		EventID: event.ID, ParticipantID: hopper.ID,
		ActivityID: &climbing.ID, LeaderID: leader, Type: dbm.LogTypeDeparture,
	}, base)
	env.seedLog(t, &dbm.ActivityLog{
		EventID: event.ID, ParticipantID: hopper.ID,
		ActivityID: &kayak.ID, FromActivityID: &climbing.ID,
		LeaderID: leader, Type: dbm.LogTypeChange,
	}, base.Add(time.Minute))
	env.seedLog(t, &dbm.ActivityLog{
		EventID: event.ID, ParticipantID: hopper.ID,
		ActivityID: &kayak.ID, LeaderID: leader, Type: dbm.LogTypeReturn,
	}, base.Add(2*time.Minute))

	// Still out climbing.
	climber := env.seedParticipant(t, event.ID, "Ivan", "Grace Church")
	env.seedLog(t, &dbm.ActivityLog{
		EventID: event.ID, ParticipantID: climber.ID,
		ActivityID: &climbing.ID, LeaderID: leader, Type: dbm.LogTypeDeparture,
	}, base)

	// Never scanned anywhere.
	env.seedParticipant(t, event.ID, "Jo", "Grace Church")

	counts, err := env.locations.EngagementCounts(context.Background(), event.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, counts[kayak.ID.String()])
	assert.Equal(t, 1, counts[climbing.ID.String()])
}
