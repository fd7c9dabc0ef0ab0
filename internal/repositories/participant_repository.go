package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	dbm "campscan/internal/models/db_models"
)

type ParticipantRepository interface {
	Insert(ctx context.Context, participant *dbm.Participant) error
	FindByID(ctx context.Context, participantID string) (*dbm.Participant, error)
	// FindByQrCode resolves a scanned payload within one event. The payload
	// is matched exactly after trimming; anything else is the caller's
	// problem.
	FindByQrCode(ctx context.Context, eventID, qrCode string) (*dbm.Participant, error)
	FindByNameAndChurch(ctx context.Context, eventID, name, church string) (*dbm.Participant, error)
	ListByEvent(ctx context.Context, eventID string) ([]dbm.Participant, error)
	ListByChurch(ctx context.Context, eventID, church string) ([]dbm.Participant, error)
	ListByLocation(ctx context.Context, eventID, location string) ([]dbm.Participant, error)
	Update(ctx context.Context, participant *dbm.Participant) error
	// SetLocation overwrites the cached location unconditionally. Used by
	// the backfill path, which trusts the log it just replayed.
	SetLocation(ctx context.Context, participantID, location string) error
	// DeleteWithLogs removes the participant and every log entry they own
	// as one all-or-nothing batch.
	DeleteWithLogs(ctx context.Context, participantID string) error
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Insert(ctx context.Context, participant *dbm.Participant) error {
	if participant.CurrentLocation == "" {
		participant.CurrentLocation = dbm.LocationCamp
	}
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *participantRepository) FindByID(ctx context.Context, participantID string) (*dbm.Participant, error) {
	var participant dbm.Participant
	err := r.db.WithContext(ctx).First(&participant, "id = ?", participantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) FindByQrCode(ctx context.Context, eventID, qrCode string) (*dbm.Participant, error) {
	var participant dbm.Participant
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND qr_code = ?", eventID, strings.TrimSpace(qrCode)).
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) FindByNameAndChurch(ctx context.Context, eventID, name, church string) (*dbm.Participant, error) {
	var participant dbm.Participant
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND name = ? AND church = ?", eventID, name, church).
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) ListByEvent(ctx context.Context, eventID string) ([]dbm.Participant, error) {
	var participants []dbm.Participant
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepository) ListByChurch(ctx context.Context, eventID, church string) ([]dbm.Participant, error) {
	var participants []dbm.Participant
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND church = ?", eventID, church).
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepository) ListByLocation(ctx context.Context, eventID, location string) ([]dbm.Participant, error) {
	var participants []dbm.Participant
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND current_location = ?", eventID, location).
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepository) Update(ctx context.Context, participant *dbm.Participant) error {
	return r.db.WithContext(ctx).Save(participant).Error
}

func (r *participantRepository) SetLocation(ctx context.Context, participantID, location string) error {
	return r.db.WithContext(ctx).Model(&dbm.Participant{}).
		Where("id = ?", participantID).
		Update("current_location", location).Error
}

func (r *participantRepository) DeleteWithLogs(ctx context.Context, participantID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteLogsForParticipant(tx, participantID); err != nil {
			return err
		}
		return tx.Unscoped().
			Where("id = ?", participantID).
			Delete(&dbm.Participant{}).Error
	})
}

// revertLocationsForActivity sends everyone whose cached location is the
// activity back to camp. Runs inside the activity delete cascade.
func revertLocationsForActivity(db *gorm.DB, eventID, activityID string) error {
	return db.Model(&dbm.Participant{}).
		Where("event_id = ? AND current_location = ?", eventID, activityID).
		Update("current_location", dbm.LocationCamp).Error
}
