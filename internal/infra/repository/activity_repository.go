package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gymsplit/notification-scheduler/internal/domain"
)

const (
	dayActivityKeyPrefix = "activity:day:"
	customPlanKeyPrefix  = "activity:custom:"

	// One-off custom plans only matter for the day they target; keep them
	// around for two days to cover timezone skew, then let them expire.
	customPlanTTL = 48 * time.Hour
)

type dayActivityRecord struct {
	Sent         bool            `json:"sent,omitempty"`
	Skipped      bool            `json:"skipped,omitempty"`
	CompletedAll bool            `json:"completed_all,omitempty"`
	Completions  map[string]bool `json:"completions,omitempty"`
}

type customPlanRecord struct {
	Title     string            `json:"title,omitempty"`
	Exercises []domain.Exercise `json:"exercises"`
}

type activityRepository struct {
	client *redis.Client
}

func NewActivityRepository(client *redis.Client) domain.ActivityRepository {
	return &activityRepository{
		client: client,
	}
}

func dayActivityKey(userID, date string) string {
	return dayActivityKeyPrefix + userID + ":" + date
}

func customPlanKey(userID, date string) string {
	return customPlanKeyPrefix + userID + ":" + date
}

func (r *activityRepository) CustomPlan(ctx context.Context, userID, date string) (*domain.CustomPlan, error) {
	data, err := r.client.Get(ctx, customPlanKey(userID, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var record customPlanRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidPlanData
	}

	return &domain.CustomPlan{
		Title:     record.Title,
		Exercises: record.Exercises,
	}, nil
}

func (r *activityRepository) SaveCustomPlan(ctx context.Context, userID, date string, plan *domain.CustomPlan) error {
	if plan == nil {
		return ErrInvalidPlanData
	}

	data, err := json.Marshal(customPlanRecord{
		Title:     plan.Title,
		Exercises: plan.Exercises,
	})
	if err != nil {
		return ErrInvalidPlanData
	}

	return r.client.Set(ctx, customPlanKey(userID, date), data, customPlanTTL).Err()
}

func (r *activityRepository) RecordCompletion(ctx context.Context, userID, date, exerciseID string) error {
	return r.updateDay(ctx, userID, date, func(rec *dayActivityRecord) {
		if rec.Completions == nil {
			rec.Completions = make(map[string]bool)
		}
		rec.Completions[exerciseID] = true
	})
}

func (r *activityRepository) RecordCompleteAll(ctx context.Context, userID, date string) error {
	return r.updateDay(ctx, userID, date, func(rec *dayActivityRecord) {
		rec.CompletedAll = true
	})
}

func (r *activityRepository) RecordSkip(ctx context.Context, userID, date string) error {
	return r.updateDay(ctx, userID, date, func(rec *dayActivityRecord) {
		rec.Skipped = true
	})
}

func (r *activityRepository) MarkSent(ctx context.Context, userID, date string) error {
	return r.updateDay(ctx, userID, date, func(rec *dayActivityRecord) {
		rec.Sent = true
	})
}

func (r *activityRepository) DayActivity(ctx context.Context, userID, date string) (*domain.DayActivity, error) {
	record, err := r.loadDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	return &domain.DayActivity{
		Sent:         record.Sent,
		Skipped:      record.Skipped,
		CompletedAll: record.CompletedAll,
		Completions:  record.Completions,
	}, nil
}

func (r *activityRepository) DeleteDay(ctx context.Context, userID, date string) error {
	return r.client.Del(ctx, dayActivityKey(userID, date), customPlanKey(userID, date)).Err()
}

// DeleteMonth removes all records for one calendar month ("2006-01").
func (r *activityRepository) DeleteMonth(ctx context.Context, userID, month string) error {
	if err := r.deleteByPattern(ctx, dayActivityKeyPrefix+userID+":"+month+"-*"); err != nil {
		return err
	}
	return r.deleteByPattern(ctx, customPlanKeyPrefix+userID+":"+month+"-*")
}

func (r *activityRepository) DeleteAll(ctx context.Context, userID string) error {
	if err := r.deleteByPattern(ctx, dayActivityKeyPrefix+userID+":*"); err != nil {
		return err
	}
	return r.deleteByPattern(ctx, customPlanKeyPrefix+userID+":*")
}

func (r *activityRepository) loadDay(ctx context.Context, userID, date string) (dayActivityRecord, error) {
	data, err := r.client.Get(ctx, dayActivityKey(userID, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return dayActivityRecord{}, nil
		}
		return dayActivityRecord{}, err
	}

	var record dayActivityRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return dayActivityRecord{}, ErrInvalidActivityData
	}

	return record, nil
}

// updateDay is read-modify-write. Submissions for one user arrive from a
// single email recipient clicking links, so lost updates are not a practical
// concern here.
func (r *activityRepository) updateDay(ctx context.Context, userID, date string, mutate func(*dayActivityRecord)) error {
	record, err := r.loadDay(ctx, userID, date)
	if err != nil {
		return err
	}

	mutate(&record)

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidActivityData
	}

	return r.client.Set(ctx, dayActivityKey(userID, date), data, 0).Err()
}

func (r *activityRepository) deleteByPattern(ctx context.Context, pattern string) error {
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
