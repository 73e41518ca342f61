package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/gymsplit/notification-scheduler/internal/domain"
)

const scheduleKeyPrefix = "schedule:"

type scheduleRecord struct {
	CurrentIndex   int    `json:"current_index"`
	LastAction     string `json:"last_action"`
	LastActionDate string `json:"last_action_date,omitempty"`
}

type scheduleRepository struct {
	client *redis.Client
}

func NewScheduleRepository(client *redis.Client) domain.ScheduleRepository {
	return &scheduleRepository{
		client: client,
	}
}

// Load returns the fresh zero state for unknown users; a missing record is
// not an error.
func (r *scheduleRepository) Load(ctx context.Context, userID string) (domain.ScheduleState, error) {
	key := scheduleKeyPrefix + userID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.NewScheduleState(), nil
		}
		return domain.ScheduleState{}, err
	}

	var record scheduleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.ScheduleState{}, ErrInvalidScheduleData
	}

	action := domain.Action(record.LastAction)
	if action == "" {
		action = domain.ActionNone
	}

	return domain.ScheduleState{
		CurrentIndex:   record.CurrentIndex,
		LastAction:     action,
		LastActionDate: record.LastActionDate,
	}, nil
}

// Save overwrites the whole record. Schedule state is permanent, so no TTL.
func (r *scheduleRepository) Save(ctx context.Context, userID string, state domain.ScheduleState) error {
	key := scheduleKeyPrefix + userID

	record := scheduleRecord{
		CurrentIndex:   state.CurrentIndex,
		LastAction:     string(state.LastAction),
		LastActionDate: state.LastActionDate,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidScheduleData
	}

	return r.client.Set(ctx, key, data, 0).Err()
}
