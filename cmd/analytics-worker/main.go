package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Varun5711/taskhub/internal/clickhouse"
	"github.com/Varun5711/taskhub/internal/config"
	"github.com/Varun5711/taskhub/internal/enrichment"
	"github.com/Varun5711/taskhub/internal/logger"
	"github.com/Varun5711/taskhub/internal/redis"
	redislib "github.com/redis/go-redis/v9"
)

var (
	log           *logger.Logger
	streamName    string
	consumerGroup string
	consumerName  string
	batchSize     int
	pollInterval  time.Duration
	blockTime     time.Duration
)

func main() {
	log = logger.New("analytics-worker")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	streamName = cfg.Redis.StreamName
	consumerGroup = cfg.Analytics.ConsumerGroup
	consumerName = cfg.Analytics.ConsumerName
	batchSize = cfg.Analytics.BatchSize
	pollInterval = cfg.Analytics.PollInterval
	blockTime = cfg.Analytics.BlockTime

	ctx := context.Background()

	redisClient, err := redis.NewRedisClient(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	chClient, err := clickhouse.NewClient(cfg.ClickHouse)
	if err != nil {
		log.Fatal("Failed to connect to ClickHouse: %v", err)
	}
	defer chClient.Close()

	err = redisClient.GetClient().XGroupCreateMkStream(ctx, streamName, consumerGroup, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		log.Fatal("Failed to create consumer group: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Info("Processing task activity events")
	go processEvents(ctx, redisClient.GetClient(), chClient)

	<-sigChan
	log.Info("Shutting down")
}

func processEvents(ctx context.Context, client *redislib.Client, ch *clickhouse.Client) {
	for {
		messages, err := client.XReadGroup(ctx, &redislib.XReadGroupArgs{
			Group:    consumerGroup,
			Consumer: consumerName,
			Streams:  []string{streamName, ">"},
			Count:    int64(batchSize),
			Block:    blockTime,
		}).Result()

		if err != nil {
			if err == redislib.Nil {
				continue
			}
			log.Error("Failed to read from stream: %v", err)
			time.Sleep(pollInterval)
			continue
		}

		for _, stream := range messages {
			if len(stream.Messages) == 0 {
				continue
			}

			events := make([]clickhouse.ActivityEvent, 0, len(stream.Messages))
			messageIDs := make([]string, 0, len(stream.Messages))

			for _, msg := range stream.Messages {
				event, ok := parseEvent(msg)
				if !ok {
					log.Warn("Invalid message format: %v", msg.ID)
					continue
				}

				events = append(events, event)
				messageIDs = append(messageIDs, msg.ID)
			}

			if len(events) > 0 {
				if err := ch.InsertActivityEvents(ctx, events); err != nil {
					log.Error("Failed to insert into ClickHouse: %v", err)
					continue
				}
				log.Debug("Processed %d activity events", len(events))
			}

			if len(messageIDs) > 0 {
				if err := client.XAck(ctx, streamName, consumerGroup, messageIDs...).Err(); err != nil {
					log.Error("Failed to acknowledge messages: %v", err)
				}
			}
		}
	}
}

// parseEvent maps a stream entry to a ClickHouse row, enriching the raw
// user agent into browser, OS and device type.
func parseEvent(msg redislib.XMessage) (clickhouse.ActivityEvent, bool) {
	taskID, ok1 := msg.Values["task_id"].(string)
	userID, ok2 := msg.Values["user_id"].(string)
	action, ok3 := msg.Values["action"].(string)
	if !ok1 || !ok2 || !ok3 {
		return clickhouse.ActivityEvent{}, false
	}

	event := clickhouse.ActivityEvent{
		TaskID:     taskID,
		UserID:     userID,
		Action:     action,
		OccurredAt: time.Now(),
	}

	if eventID, ok := msg.Values["event_id"].(string); ok {
		event.EventID = eventID
	}
	if status, ok := msg.Values["status"].(string); ok {
		event.Status = status
	}
	if ts, ok := msg.Values["timestamp"].(string); ok {
		if unix, err := strconv.ParseInt(ts, 10, 64); err == nil {
			event.OccurredAt = time.Unix(unix, 0)
		}
	}
	if ip, ok := msg.Values["ip"].(string); ok {
		event.IPAddress = ip
	}
	if rawUA, ok := msg.Values["user_agent"].(string); ok {
		event.UserAgent = rawUA
		ua := enrichment.ParseUserAgent(rawUA)
		event.Browser = ua.Browser
		event.OS = ua.OS
		event.DeviceType = ua.DeviceType
	}

	return event, true
}
