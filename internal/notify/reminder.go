package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/softbarber/internal/domain/appointment"
)

// ReminderQueue is the Redis list the delivery worker consumes.
const ReminderQueue = "softbarber:reminders"

type RedisPublisher struct {
	client *redis.Client
	queue  string
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		queue:  ReminderQueue,
	}
}

func (p *RedisPublisher) PublishReminder(ctx context.Context, r appointment.Reminder) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if err := p.client.RPush(ctx, p.queue, payload).Err(); err != nil {
		return fmt.Errorf("push reminder %d: %w", r.AppointmentID, err)
	}
	return nil
}

// LogPublisher writes reminders to the application log. Used when Redis is
// not configured.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishReminder(_ context.Context, r appointment.Reminder) error {
	p.log.Info("appointment reminder",
		zap.Uint("appointment_id", r.AppointmentID),
		zap.String("client", r.Client),
		zap.String("barber", r.Barber),
		zap.String("service", r.Service),
		zap.Time("scheduled_at", r.ScheduledAt),
	)
	return nil
}

var (
	_ appointment.ReminderPublisher = (*RedisPublisher)(nil)
	_ appointment.ReminderPublisher = (*LogPublisher)(nil)
)
