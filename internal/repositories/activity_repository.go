package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "campscan/internal/models/db_models"
)

type ActivityRepository interface {
	Insert(ctx context.Context, activity *dbm.Activity) error
	FindByID(ctx context.Context, activityID string) (*dbm.Activity, error)
	FindByEventAndName(ctx context.Context, eventID, name string) (*dbm.Activity, error)
	ListByEvent(ctx context.Context, eventID string) ([]dbm.Activity, error)
	Update(ctx context.Context, activity *dbm.Activity) error
	// DeleteCascade removes the activity, deletes every log entry bound
	// for it, and reverts participants currently there to camp, all in
	// one transaction. Change entries that only departed it survive with
	// a dangling from_activity_id so participants who moved on keep
	// their derived location.
	DeleteCascade(ctx context.Context, eventID, activityID string) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) FindByID(ctx context.Context, activityID string) (*dbm.Activity, error) {
	var activity dbm.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", activityID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) FindByEventAndName(ctx context.Context, eventID, name string) (*dbm.Activity, error) {
	var activity dbm.Activity
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND name = ?", eventID, name).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListByEvent(ctx context.Context, eventID string) ([]dbm.Activity, error) {
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *activityRepository) DeleteCascade(ctx context.Context, eventID, activityID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteLogsForActivity(tx, activityID); err != nil {
			return err
		}

		if err := revertLocationsForActivity(tx, eventID, activityID); err != nil {
			return err
		}

		return tx.Unscoped().
			Where("id = ?", activityID).
			Delete(&dbm.Activity{}).Error
	})
}
