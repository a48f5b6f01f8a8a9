package tasks

import (
	"encoding/json"
	"time"

	"fitpulse/models"

	"github.com/hibiken/asynq"
)

// TypeWorkoutReminder is the asynq task type for workout-session reminders.
const TypeWorkoutReminder = "reminder:workout"

// NewWorkoutReminderTask builds a reminder task scheduled to fire at fireAt.
func NewWorkoutReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeWorkoutReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// NewReminderQueueClient returns an asynq client on the reminder queue Redis DB.
func NewReminderQueueClient(addr, password string, db int) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
