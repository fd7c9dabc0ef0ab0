package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "campscan/internal/models/db_models"
	reqm "campscan/internal/models/request_models"
	"campscan/pkg/utils"
)

func TestRecordScanDepartureAndReturn(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	climbing := env.seedActivity(t, event.ID, "Climbing")
	p := env.seedParticipant(t, event.ID, "Anna", "Hope Church")
	leader := env.seedLeader(t, "Maya")

	result, err := env.scans.RecordScan(context.Background(), leader.ID.String(), reqm.ScanRequest{
		EventID:    event.ID.String(),
		QrCode:     p.QrCode,
		ScanType:   dbm.LogTypeDeparture,
		ActivityID: climbing.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, dbm.LogTypeDeparture, result.LogType)
	assert.Equal(t, climbing.ID.String(), result.CurrentLocation)

	stored, err := env.participantRepo.FindByID(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, climbing.ID.String(), stored.CurrentLocation)

	result, err = env.scans.RecordScan(context.Background(), leader.ID.String(), reqm.ScanRequest{
		EventID:  event.ID.String(),
		QrCode:   p.QrCode,
		ScanType: dbm.LogTypeReturn,
	})
	require.NoError(t, err)
	assert.Equal(t, dbm.LogTypeReturn, result.LogType)
	assert.Equal(t, climbing.ID.String(), result.ActivityID) // the activity left
	assert.Equal(t, dbm.LocationCamp, result.CurrentLocation)

	logs, err := env.logRepo.ListByParticipant(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestRecordScanRepeatedDepartureRejected(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	climbing := env.seedActivity(t, event.ID, "Climbing")
	p := env.seedParticipant(t, event.ID, "Ben", "Hope Church")
	leader := env.seedLeader(t, "Maya")

	req := reqm.ScanRequest{
		EventID:    event.ID.String(),
		QrCode:     p.QrCode,
		ScanType:   dbm.LogTypeDeparture,
		ActivityID: climbing.ID.String(),
	}

	_, err := env.scans.RecordScan(context.Background(), leader.ID.String(), req)
	require.NoError(t, err)

	// Second pass of the same badge: rejected, and no extra entry.
	_, err = env.scans.RecordScan(context.Background(), leader.ID.String(), req)
	assert.ErrorIs(t, err, utils.ErrAlreadyAtActivity)

	logs, err := env.logRepo.ListByParticipant(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestRecordScanReturnAtCampRejected(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	p := env.seedParticipant(t, event.ID, "Cleo", "Grace Church")
	leader := env.seedLeader(t, "Maya")

	_, err := env.scans.RecordScan(context.Background(), leader.ID.String(), reqm.ScanRequest{
		EventID:  event.ID.String(),
		QrCode:   p.QrCode,
		ScanType: dbm.LogTypeReturn,
	})
	assert.ErrorIs(t, err, utils.ErrAlreadyAtCamp)

	logs, err := env.logRepo.ListByParticipant(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestRecordScanDepartureWhileAwayBecomesChange(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	climbing := env.seedActivity(t, event.ID, "Climbing")
	kayak := env.seedActivity(t, event.ID, "Kayaking")
	p := env.seedParticipant(t, event.ID, "Dana", "Hope Church")
	leader := env.seedLeader(t, "Maya")

	_, err := env.scans.RecordScan(context.Background(), leader.ID.String(), reqm.ScanRequest{
		EventID:    event.ID.String(),
		QrCode:     p.QrCode,
		ScanType:   dbm.LogTypeDeparture,
		ActivityID: climbing.ID.String(),
	})
	require.NoError(t, err)

	result, err := env.scans.RecordScan(context.Background(), leader.ID.String(), reqm.ScanRequest{
		EventID:    event.ID.String(),
		QrCode:     p.QrCode,
		ScanType:   dbm.LogTypeDeparture,
		ActivityID: kayak.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, dbm.LogTypeChange, result.LogType)
	assert.Equal(t, climbing.ID.String(), result.FromActivityID)
	assert.Equal(t, kayak.ID.String(), result.CurrentLocation)
}

func TestRecordScanValidation(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	other := env.seedEvent(t, "Winter Camp")
	foreign := env.seedActivity(t, other.ID, "Skiing")
	p := env.seedParticipant(t, event.ID, "Eli", "Hope Church")
	leader := env.seedLeader(t, "Maya")

	t.Run("unknown qr code", func(t *testing.T) {
		_, err := env.scans.RecordScan(context.Background(), leader.ID.String(), reqm.ScanRequest{
			EventID:  event.ID.String(),
			QrCode:   "no-such-badge",
			ScanType: dbm.LogTypeReturn,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidQrCode)
	})

	t.Run("unrecognized scan type", func(t *testing.T) {
		_, err := env.scans.RecordScan(context.Background(), leader.ID.String(), reqm.ScanRequest{
			EventID:  event.ID.String(),
			QrCode:   p.QrCode,
			ScanType: "checkin",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidScanType)
	})

	t.Run("departure without activity", func(t *testing.T) {
		_, err := env.scans.RecordScan(context.Background(), leader.ID.String(), reqm.ScanRequest{
			EventID:  event.ID.String(),
			QrCode:   p.QrCode,
			ScanType: dbm.LogTypeDeparture,
		})
		assert.ErrorIs(t, err, utils.ErrMissingActivity)
	})

	t.Run("activity from another event", func(t *testing.T) {
		_, err := env.scans.RecordScan(context.Background(), leader.ID.String(), reqm.ScanRequest{
			EventID:    event.ID.String(),
			QrCode:     p.QrCode,
			ScanType:   dbm.LogTypeDeparture,
			ActivityID: foreign.ID.String(),
		})
		assert.ErrorIs(t, err, utils.ErrActivityNotFound)
	})

	t.Run("unknown activity id", func(t *testing.T) {
		_, err := env.scans.RecordScan(context.Background(), leader.ID.String(), reqm.ScanRequest{
			EventID:    event.ID.String(),
			QrCode:     p.QrCode,
			ScanType:   dbm.LogTypeDeparture,
			ActivityID: uuid.New().String(),
		})
		assert.ErrorIs(t, err, utils.ErrActivityNotFound)
	})
}

func TestLookupParticipantTrimsPayload(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	p := env.seedParticipant(t, event.ID, "Fay", "Hope Church")

	found, err := env.scans.LookupParticipant(context.Background(), event.ID.String(), "  "+p.QrCode+"  ")
	require.NoError(t, err)
	assert.Equal(t, p.ID.String(), found.ID)

	_, err = env.scans.LookupParticipant(context.Background(), event.ID.String(), "   ")
	assert.ErrorIs(t, err, utils.ErrInvalidQrCode)
}

func TestCurrentActivityReportsCampForDanglingLocation(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, "Summer Camp")
	climbing := env.seedActivity(t, event.ID, "Climbing")
	p := env.seedParticipant(t, event.ID, "Gus", "Grace Church")
	leader := env.seedLeader(t, "Maya")

	_, err := env.scans.RecordScan(context.Background(), leader.ID.String(), reqm.ScanRequest{
		EventID:    event.ID.String(),
		QrCode:     p.QrCode,
		ScanType:   dbm.LogTypeDeparture,
		ActivityID: climbing.ID.String(),
	})
	require.NoError(t, err)

	current, err := env.scans.CurrentActivity(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.False(t, current.AtCamp)
	assert.Equal(t, "Climbing", current.ActivityName)

	// Delete the activity out from under the participant.
	require.NoError(t, env.activities.DeleteActivity(context.Background(), climbing.ID.String()))

	current, err = env.scans.CurrentActivity(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.True(t, current.AtCamp)
}
