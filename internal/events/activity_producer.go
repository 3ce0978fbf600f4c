package events

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type ActivityProducer struct {
	client     *redis.Client
	streamName string
}

func NewActivityProducer(client *redis.Client, streamName string) *ActivityProducer {
	return &ActivityProducer{
		client:     client,
		streamName: streamName,
	}
}

func (p *ActivityProducer) Publish(ctx context.Context, event *ActivityEvent) error {
	fields := map[string]interface{}{
		"event_id":  event.EventID,
		"task_id":   event.TaskID,
		"user_id":   event.UserID,
		"action":    event.Action,
		"timestamp": event.Timestamp,
	}

	if event.Status != "" {
		fields["status"] = event.Status
	}
	if event.IP != "" {
		fields["ip"] = event.IP
	}
	if event.UserAgent != "" {
		fields["user_agent"] = event.UserAgent
	}

	result := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.streamName,
		Values: fields,
	})

	if err := result.Err(); err != nil {
		return fmt.Errorf("failed to publish activity event: %w", err)
	}

	return nil
}

func (p *ActivityProducer) StreamLength(ctx context.Context) (int64, error) {
	result := p.client.XLen(ctx, p.streamName)
	return result.Val(), result.Err()
}
