package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "campscan/internal/models/db_models"
)

type EventRepository interface {
	Insert(ctx context.Context, event *dbm.Event) error
	FindByID(ctx context.Context, eventID string) (*dbm.Event, error)
	List(ctx context.Context) ([]dbm.Event, error)
	// SetActive activates one event and deactivates every other in the
	// same transaction. At most one event is active at a time.
	SetActive(ctx context.Context, eventID string) error
	// DeleteCascade removes the event with its activities, participants
	// and log entries as one batch.
	DeleteCascade(ctx context.Context, eventID string) error
	// ResetLogs deletes every log entry of the event but leaves
	// participants and activities intact. Participants conceptually
	// return to camp; the caller resets the cached locations.
	ResetLogs(ctx context.Context, eventID string) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Insert(ctx context.Context, event *dbm.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, eventID string) (*dbm.Event, error) {
	var event dbm.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]dbm.Event, error) {
	var events []dbm.Event
	err := r.db.WithContext(ctx).
		Order("start_date desc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) SetActive(ctx context.Context, eventID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&dbm.Event{}).
			Where("active = ?", true).
			Update("active", false).Error; err != nil {
			return err
		}
		res := tx.Model(&dbm.Event{}).
			Where("id = ?", eventID).
			Update("active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *eventRepository) DeleteCascade(ctx context.Context, eventID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Logs first, by event id directly: this also catches entries
		// whose activity is already gone.
		if err := deleteLogsForEvent(tx, eventID); err != nil {
			return err
		}
		if err := tx.Unscoped().
			Where("event_id = ?", eventID).
			Delete(&dbm.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().
			Where("event_id = ?", eventID).
			Delete(&dbm.Activity{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().
			Where("id = ?", eventID).
			Delete(&dbm.Event{}).Error
	})
}

func (r *eventRepository) ResetLogs(ctx context.Context, eventID string) error {
	return deleteLogsForEvent(r.db.WithContext(ctx), eventID)
}
