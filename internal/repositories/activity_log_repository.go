package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "campscan/internal/models/db_models"
	"campscan/pkg/utils"
)

// ActivityLogRepository is the append-only log store. Entries are never
// updated; the only deletes are the cascading ones below. Append does not
// deduplicate — a repeated scan produces a repeated entry, and the scan
// service rejects it one level up by looking at the resolved location.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *dbm.ActivityLog) error
	// AppendWithLocationUpdate appends the entry and moves the cached
	// participant location from observedLocation to newLocation in one
	// transaction. The location write is conditional on observedLocation;
	// if a concurrent scan already moved the participant, nothing is
	// written and utils.ErrScanConflict is returned.
	AppendWithLocationUpdate(ctx context.Context, entry *dbm.ActivityLog, observedLocation, newLocation string) error
	ListByParticipant(ctx context.Context, participantID string) ([]dbm.ActivityLog, error)
	ListByEvent(ctx context.Context, eventID string) ([]dbm.ActivityLog, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Append(ctx context.Context, entry *dbm.ActivityLog) error {
	stampEntry(entry)
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *activityLogRepository) AppendWithLocationUpdate(
	ctx context.Context,
	entry *dbm.ActivityLog,
	observedLocation, newLocation string,
) error {
	stampEntry(entry)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		res := tx.Model(&dbm.Participant{}).
			Where("id = ? AND current_location = ?", entry.ParticipantID, observedLocation).
			Update("current_location", newLocation)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// A racing scan won; roll the append back too.
			return utils.ErrScanConflict
		}
		return nil
	})
}

func (r *activityLogRepository) ListByParticipant(ctx context.Context, participantID string) ([]dbm.ActivityLog, error) {
	var logs []dbm.ActivityLog
	err := r.db.WithContext(ctx).
		Where("participant_id = ?", participantID).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *activityLogRepository) ListByEvent(ctx context.Context, eventID string) ([]dbm.ActivityLog, error) {
	var logs []dbm.ActivityLog
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// The delete cascades in the other repositories run these inside their own
// transactions, so each delete predicate exists exactly once. Entries whose
// activity_id points at a deleted activity go with it; change entries that
// merely left it keep their dangling from_activity_id, because their
// activity_id is the destination and deleting them would erase the location
// of participants who are elsewhere.

func deleteLogsForParticipant(db *gorm.DB, participantID string) error {
	return db.Unscoped().
		Where("participant_id = ?", participantID).
		Delete(&dbm.ActivityLog{}).Error
}

func deleteLogsForActivity(db *gorm.DB, activityID string) error {
	return db.Unscoped().
		Where("activity_id = ?", activityID).
		Delete(&dbm.ActivityLog{}).Error
}

func deleteLogsForEvent(db *gorm.DB, eventID string) error {
	return db.Unscoped().
		Where("event_id = ?", eventID).
		Delete(&dbm.ActivityLog{}).Error
}

func stampEntry(entry *dbm.ActivityLog) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
}
