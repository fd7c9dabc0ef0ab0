package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campscan/internal/infra"
	dbm "campscan/internal/models/db_models"
	"campscan/internal/repositories"
)

// testEnv wires every repository and service against one in-memory
// database, the same graph main assembles through fx.
type testEnv struct {
	db *gorm.DB

	accountRepo     repositories.AccountRepository
	eventRepo       repositories.EventRepository
	activityRepo    repositories.ActivityRepository
	participantRepo repositories.ParticipantRepository
	logRepo         repositories.ActivityLogRepository

	locations    LocationServiceInterface
	accounts     AccountServiceInterface
	scans        ScanServiceInterface
	events       EventServiceInterface
	activities   ActivityServiceInterface
	participants ParticipantServiceInterface
	reports      ReportServiceInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	env := &testEnv{
		db:              db,
		accountRepo:     repositories.NewAccountRepository(db),
		eventRepo:       repositories.NewEventRepository(db),
		activityRepo:    repositories.NewActivityRepository(db),
		participantRepo: repositories.NewParticipantRepository(db),
		logRepo:         repositories.NewActivityLogRepository(db),
	}
	env.accounts = NewAccountService(env.accountRepo)
	env.locations = NewLocationService(env.logRepo, env.participantRepo, env.activityRepo)
	env.scans = NewScanService(env.participantRepo, env.activityRepo, env.logRepo, env.locations)
	env.events = NewEventService(env.eventRepo, env.participantRepo, env.locations)
	env.activities = NewActivityService(env.activityRepo, env.eventRepo)
	env.participants = NewParticipantService(env.participantRepo, env.eventRepo, env.activityRepo, env.accountRepo, env.logRepo)
	env.reports = NewReportService(env.eventRepo, env.participantRepo, env.activityRepo, env.locations)
	return env
}

func (e *testEnv) seedEvent(t *testing.T, name string) *dbm.Event {
	t.Helper()
	event := &dbm.Event{
		Name:      name,
		StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
		CreatedBy: uuid.New(),
	}
	require.NoError(t, e.db.Create(event).Error)
	return event
}

func (e *testEnv) seedActivity(t *testing.T, eventID uuid.UUID, name string) *dbm.Activity {
	t.Helper()
	activity := &dbm.Activity{EventID: eventID, Name: name}
	require.NoError(t, e.db.Create(activity).Error)
	return activity
}

func (e *testEnv) seedParticipant(t *testing.T, eventID uuid.UUID, name, church string) *dbm.Participant {
	t.Helper()
	participant := &dbm.Participant{
		EventID:         eventID,
		Name:            name,
		Church:          church,
		Type:            dbm.ParticipantTypeStudent,
		QrCode:          name + "-" + church,
		CurrentLocation: dbm.LocationCamp,
	}
	require.NoError(t, e.db.Create(participant).Error)
	return participant
}

func (e *testEnv) seedLeader(t *testing.T, name string) *dbm.Account {
	t.Helper()
	account := &dbm.Account{
		Name:         name,
		Email:        name + "@camp.test",
		PasswordHash: "x",
		Role:         dbm.RoleLeader,
	}
	require.NoError(t, e.db.Create(account).Error)
	return account
}

// seedLog appends directly at an explicit timestamp, bypassing the scan
// service, for building histories in a known order.
func (e *testEnv) seedLog(t *testing.T, entry *dbm.ActivityLog, at time.Time) *dbm.ActivityLog {
	t.Helper()
	entry.Timestamp = at
	require.NoError(t, e.logRepo.Append(context.Background(), entry))
	return entry
}
