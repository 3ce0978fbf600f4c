package analytics

import (
	"context"
	"time"

	"github.com/Varun5711/taskhub/internal/clickhouse"
)

// Service answers per-owner activity questions from the ClickHouse event
// store populated by the analytics worker.
type Service struct {
	ch *clickhouse.Client
}

func NewService(ch *clickhouse.Client) *Service {
	return &Service{ch: ch}
}

type ActivitySummary struct {
	Created     uint64 `json:"created"`
	Updated     uint64 `json:"updated"`
	Deleted     uint64 `json:"deleted"`
	Last24Hours uint64 `json:"last_24_hours"`
	Last7Days   uint64 `json:"last_7_days"`
}

func (s *Service) GetSummary(ctx context.Context, userID string) (*ActivitySummary, error) {
	var summary ActivitySummary

	allTime, err := s.ch.GetActionCounts(ctx, userID, time.Time{})
	if err != nil {
		return nil, err
	}
	for _, ac := range allTime {
		switch ac.Action {
		case "created":
			summary.Created = ac.Count
		case "updated":
			summary.Updated = ac.Count
		case "deleted":
			summary.Deleted = ac.Count
		}
	}

	now := time.Now()

	day, err := s.ch.GetActionCounts(ctx, userID, now.Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}
	for _, ac := range day {
		summary.Last24Hours += ac.Count
	}

	week, err := s.ch.GetActionCounts(ctx, userID, now.Add(-7*24*time.Hour))
	if err != nil {
		return nil, err
	}
	for _, ac := range week {
		summary.Last7Days += ac.Count
	}

	return &summary, nil
}

type ActivityEntry struct {
	TaskID     string    `json:"task_id"`
	Action     string    `json:"action"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	DeviceType string    `json:"device_type,omitempty"`
	Browser    string    `json:"browser,omitempty"`
}

func (s *Service) GetRecent(ctx context.Context, userID string, limit int) ([]ActivityEntry, error) {
	events, err := s.ch.GetRecentActivity(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]ActivityEntry, len(events))
	for i, event := range events {
		entries[i] = ActivityEntry{
			TaskID:     event.TaskID,
			Action:     event.Action,
			Status:     event.Status,
			OccurredAt: event.OccurredAt,
			DeviceType: event.DeviceType,
			Browser:    event.Browser,
		}
	}

	return entries, nil
}
