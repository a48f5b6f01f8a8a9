package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"fitpulse/config"
	"fitpulse/models"
	"fitpulse/services/tasks"
	"fitpulse/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeWorkoutReminder, handleWorkoutReminder)

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleWorkoutReminder fires when a scheduled session reminder becomes due.
// Delivery is a log record picked up by the notification pipeline; the app
// polls upcoming sessions on foreground.
func handleWorkoutReminder(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("reminder: invalid payload", zap.Error(err))
		return err
	}

	utils.GetLogger().Info("workout session reminder due",
		zap.String("userID", p.UserID),
		zap.String("planID", p.PlanID),
		zap.String("planTitle", p.PlanTitle),
		zap.Time("sessionAt", p.SessionAt))
	return nil
}
