package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/Varun5711/taskhub/internal/config"
)

type Client struct {
	conn driver.Conn
}

func NewClient(cfg config.ClickHouseConfig) (*Client, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{cfg.Addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout:      time.Second * 30,
		MaxOpenConns:     cfg.MaxConns,
		MaxIdleConns:     cfg.MaxConns / 2,
		ConnMaxLifetime:  time.Hour,
		ConnOpenStrategy: clickhouse.ConnOpenInOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return &Client{conn: conn}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// ActivityEvent is the row shape of taskhub.task_activity.
type ActivityEvent struct {
	EventID    string
	TaskID     string
	UserID     string
	Action     string
	Status     string
	OccurredAt time.Time

	IPAddress  string
	UserAgent  string
	Browser    string
	OS         string
	DeviceType string
}

func (c *Client) InsertActivityEvents(ctx context.Context, events []ActivityEvent) error {
	if len(events) == 0 {
		return nil
	}

	batch, err := c.conn.PrepareBatch(ctx, `INSERT INTO taskhub.task_activity (
		event_id, task_id, user_id, action, status, occurred_at,
		ip_address, user_agent, browser, os, device_type
	)`)
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	for _, event := range events {
		err := batch.Append(
			event.EventID,
			event.TaskID,
			event.UserID,
			event.Action,
			event.Status,
			event.OccurredAt,
			event.IPAddress,
			event.UserAgent,
			event.Browser,
			event.OS,
			event.DeviceType,
		)
		if err != nil {
			return fmt.Errorf("failed to append event: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	return nil
}

type ActionCount struct {
	Action string
	Count  uint64
}

// GetActionCounts returns per-action event counts for one owner since the
// given time.
func (c *Client) GetActionCounts(ctx context.Context, userID string, since time.Time) ([]ActionCount, error) {
	query := `
		SELECT action, count() AS total
		FROM taskhub.task_activity
		WHERE user_id = ? AND occurred_at >= ?
		GROUP BY action
		ORDER BY total DESC
	`

	rows, err := c.conn.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query action counts: %w", err)
	}
	defer rows.Close()

	var counts []ActionCount
	for rows.Next() {
		var ac ActionCount
		if err := rows.Scan(&ac.Action, &ac.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		counts = append(counts, ac)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return counts, nil
}

// GetRecentActivity returns the owner's latest activity events.
func (c *Client) GetRecentActivity(ctx context.Context, userID string, limit int) ([]ActivityEvent, error) {
	query := `
		SELECT event_id, task_id, user_id, action, status, occurred_at,
			ip_address, user_agent, browser, os, device_type
		FROM taskhub.task_activity
		WHERE user_id = ?
		ORDER BY occurred_at DESC
		LIMIT ?
	`

	rows, err := c.conn.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}
	defer rows.Close()

	var events []ActivityEvent
	for rows.Next() {
		var event ActivityEvent
		err := rows.Scan(
			&event.EventID,
			&event.TaskID,
			&event.UserID,
			&event.Action,
			&event.Status,
			&event.OccurredAt,
			&event.IPAddress,
			&event.UserAgent,
			&event.Browser,
			&event.OS,
			&event.DeviceType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}
